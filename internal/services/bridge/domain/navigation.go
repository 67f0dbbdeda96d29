package domain

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// LookInput represents the MCP tool input for observing the room.
type LookInput struct {
	Target string `json:"target,omitempty" jsonschema:"optional target to examine closely"`
}

// MoveInput represents the MCP tool input for moving.
type MoveInput struct {
	Direction string `json:"direction" jsonschema:"direction to move (north, south, east, west, up, down, or a custom exit name)"`
}

// MapInput represents the (empty) MCP tool input for the area map.
type MapInput struct{}

// LookTool defines the MCP tool schema for observing the current room.
func LookTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "look",
		Description: "Look around the current room, or examine a specific target. Returns room description, exits, players, NPCs, and items.",
	}
}

// LookHandler forwards a look request.
func LookHandler(deps Deps) mcp.ToolHandlerFor[LookInput, GameResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input LookInput) (*mcp.CallToolResult, GameResult, error) {
		params := map[string]any{}
		if input.Target != "" {
			params["target"] = input.Target
		}
		result, err := sendAndDrain(ctx, deps, "look", params)
		if err != nil {
			return nil, GameResult{}, err
		}
		return nil, result, nil
	}
}

// MoveDirectionTool defines the MCP tool schema for movement.
func MoveDirectionTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "move_direction",
		Description: "Move in a direction (north, south, east, west, up, down, or custom exit name). Returns the new room state.",
	}
}

// MoveDirectionHandler forwards a move request. Exit names are
// server-authoritative, so only the field's presence is validated here.
func MoveDirectionHandler(deps Deps) mcp.ToolHandlerFor[MoveInput, GameResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input MoveInput) (*mcp.CallToolResult, GameResult, error) {
		if err := requireString("direction", input.Direction); err != nil {
			return nil, GameResult{}, err
		}
		result, err := sendAndDrain(ctx, deps, "move", map[string]any{"direction": input.Direction})
		if err != nil {
			return nil, GameResult{}, err
		}
		return nil, result, nil
	}
}

// MapTool defines the MCP tool schema for the explored-area map.
func MapTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "map",
		Description: "Display a simple ASCII map of nearby explored rooms.",
	}
}

// MapHandler forwards a map request.
func MapHandler(deps Deps) mcp.ToolHandlerFor[MapInput, GameResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ MapInput) (*mcp.CallToolResult, GameResult, error) {
		result, err := sendAndDrain(ctx, deps, "map", nil)
		if err != nil {
			return nil, GameResult{}, err
		}
		return nil, result, nil
	}
}
