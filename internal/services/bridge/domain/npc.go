package domain

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// TalkInput represents the MCP tool input for starting an NPC conversation.
type TalkInput struct {
	Target string `json:"target" jsonschema:"NPC to talk to"`
}

// DialogueSelectInput represents the MCP tool input for a dialogue choice.
type DialogueSelectInput struct {
	Option int    `json:"option" jsonschema:"number of the dialogue option to select"`
	NPC    string `json:"npc,omitempty" jsonschema:"optional NPC name when multiple conversations are open"`
}

// TalkTool defines the MCP tool schema for starting a conversation.
func TalkTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "talk",
		Description: "Start a conversation with an NPC. Returns their dialogue and available responses.",
	}
}

// TalkHandler forwards a talk request.
func TalkHandler(deps Deps) mcp.ToolHandlerFor[TalkInput, GameResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input TalkInput) (*mcp.CallToolResult, GameResult, error) {
		if err := requireString("target", input.Target); err != nil {
			return nil, GameResult{}, err
		}
		result, err := sendAndDrain(ctx, deps, "talk", map[string]any{"target": input.Target})
		if err != nil {
			return nil, GameResult{}, err
		}
		return nil, result, nil
	}
}

// DialogueSelectTool defines the MCP tool schema for dialogue choices.
func DialogueSelectTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "dialogue_select",
		Description: "Select a numbered dialogue option in an ongoing NPC conversation.",
	}
}

// DialogueSelectHandler forwards a dialogue selection. Whether the option
// exists in the open conversation is for the game to decide.
func DialogueSelectHandler(deps Deps) mcp.ToolHandlerFor[DialogueSelectInput, GameResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input DialogueSelectInput) (*mcp.CallToolResult, GameResult, error) {
		if err := validateOption(input.Option); err != nil {
			return nil, GameResult{}, err
		}
		params := map[string]any{"option": input.Option}
		if input.NPC != "" {
			params["npc"] = input.NPC
		}
		result, err := sendAndDrain(ctx, deps, "dialogue_select", params)
		if err != nil {
			return nil, GameResult{}, err
		}
		return nil, result, nil
	}
}
