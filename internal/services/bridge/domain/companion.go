package domain

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// CompanionInput represents the MCP tool input for directing the companion.
type CompanionInput struct {
	Command string `json:"command" jsonschema:"natural language instruction for your companion"`
}

// CompanionStatusInput represents the (empty) MCP tool input for companion state.
type CompanionStatusInput struct{}

// CompanionMemoryInput represents the (empty) MCP tool input for reading memory.
type CompanionMemoryInput struct{}

// CompanionMemoryWriteInput represents the MCP tool input for storing a memory.
type CompanionMemoryWriteInput struct {
	Text string `json:"text" jsonschema:"note for the companion to remember"`
	Tag  string `json:"tag,omitempty" jsonschema:"optional tag to categorize the memory"`
}

// CompanionTool defines the MCP tool schema for companion commands.
func CompanionTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "companion",
		Description: "Give your companion a natural language instruction (e.g., 'guard the door', 'fetch herbs').",
	}
}

// CompanionHandler forwards a companion command.
func CompanionHandler(deps Deps) mcp.ToolHandlerFor[CompanionInput, GameResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CompanionInput) (*mcp.CallToolResult, GameResult, error) {
		if err := requireString("command", input.Command); err != nil {
			return nil, GameResult{}, err
		}
		result, err := sendAndDrain(ctx, deps, "companion", map[string]any{"command": input.Command})
		if err != nil {
			return nil, GameResult{}, err
		}
		return nil, result, nil
	}
}

// CompanionStatusTool defines the MCP tool schema for companion state.
func CompanionStatusTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "companion_status",
		Description: "Show your companion's HP, mood, current activity, and loyalty.",
	}
}

// CompanionStatusHandler forwards a companion status request.
func CompanionStatusHandler(deps Deps) mcp.ToolHandlerFor[CompanionStatusInput, GameResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ CompanionStatusInput) (*mcp.CallToolResult, GameResult, error) {
		result, err := sendAndDrain(ctx, deps, "companion_status", nil)
		if err != nil {
			return nil, GameResult{}, err
		}
		return nil, result, nil
	}
}

// CompanionMemoryTool defines the MCP tool schema for reading companion memory.
func CompanionMemoryTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "companion_memory",
		Description: "Show everything your companion remembers.",
	}
}

// CompanionMemoryHandler forwards a memory read request.
func CompanionMemoryHandler(deps Deps) mcp.ToolHandlerFor[CompanionMemoryInput, GameResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ CompanionMemoryInput) (*mcp.CallToolResult, GameResult, error) {
		result, err := sendAndDrain(ctx, deps, "companion_memory", nil)
		if err != nil {
			return nil, GameResult{}, err
		}
		return nil, result, nil
	}
}

// CompanionMemoryWriteTool defines the MCP tool schema for storing a memory.
func CompanionMemoryWriteTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "companion_memory_write",
		Description: "Tell your companion to remember something, optionally tagged for later recall.",
	}
}

// CompanionMemoryWriteHandler forwards a memory write request.
func CompanionMemoryWriteHandler(deps Deps) mcp.ToolHandlerFor[CompanionMemoryWriteInput, GameResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CompanionMemoryWriteInput) (*mcp.CallToolResult, GameResult, error) {
		if err := requireString("text", input.Text); err != nil {
			return nil, GameResult{}, err
		}
		params := map[string]any{"text": input.Text}
		if input.Tag != "" {
			params["tag"] = input.Tag
		}
		result, err := sendAndDrain(ctx, deps, "companion_memory_write", params)
		if err != nil {
			return nil, GameResult{}, err
		}
		return nil, result, nil
	}
}
