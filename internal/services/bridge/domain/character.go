package domain

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// CharacterInfoInput represents the (empty) MCP tool input for the character sheet.
type CharacterInfoInput struct{}

// AbilitiesInput represents the (empty) MCP tool input for the ability list.
type AbilitiesInput struct{}

// LeaderboardInput represents the MCP tool input for server rankings.
type LeaderboardInput struct {
	Board string `json:"board,omitempty" jsonschema:"leaderboard to show (level, gold, kills); defaults to level"`
}

// SuggestDescriptionInput represents the MCP tool input for description proposals.
type SuggestDescriptionInput struct {
	Context string `json:"context" jsonschema:"what the description should cover"`
}

// CharacterInfoTool defines the MCP tool schema for the character sheet.
func CharacterInfoTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "character_info",
		Description: "Show your character sheet: class, stats, equipment, and description.",
	}
}

// CharacterInfoHandler forwards a character sheet request.
func CharacterInfoHandler(deps Deps) mcp.ToolHandlerFor[CharacterInfoInput, GameResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ CharacterInfoInput) (*mcp.CallToolResult, GameResult, error) {
		result, err := sendAndDrain(ctx, deps, "character_info", nil)
		if err != nil {
			return nil, GameResult{}, err
		}
		return nil, result, nil
	}
}

// AbilitiesTool defines the MCP tool schema for the ability list.
func AbilitiesTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "abilities",
		Description: "List your class abilities with mana costs and cooldowns.",
	}
}

// AbilitiesHandler forwards an ability list request.
func AbilitiesHandler(deps Deps) mcp.ToolHandlerFor[AbilitiesInput, GameResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ AbilitiesInput) (*mcp.CallToolResult, GameResult, error) {
		result, err := sendAndDrain(ctx, deps, "abilities", nil)
		if err != nil {
			return nil, GameResult{}, err
		}
		return nil, result, nil
	}
}

// LeaderboardTool defines the MCP tool schema for server rankings.
func LeaderboardTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "leaderboard",
		Description: "Show server rankings. Defaults to the level leaderboard.",
	}
}

// LeaderboardHandler forwards a leaderboard request.
func LeaderboardHandler(deps Deps) mcp.ToolHandlerFor[LeaderboardInput, GameResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input LeaderboardInput) (*mcp.CallToolResult, GameResult, error) {
		board := input.Board
		if board == "" {
			board = "level"
		}
		result, err := sendAndDrain(ctx, deps, "leaderboard", map[string]any{"board_type": board})
		if err != nil {
			return nil, GameResult{}, err
		}
		return nil, result, nil
	}
}

// SuggestDescriptionTool defines the MCP tool schema for description proposals.
func SuggestDescriptionTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "suggest_description",
		Description: "Propose a narrative description for review by the world builders.",
	}
}

// SuggestDescriptionHandler forwards a description proposal.
func SuggestDescriptionHandler(deps Deps) mcp.ToolHandlerFor[SuggestDescriptionInput, GameResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SuggestDescriptionInput) (*mcp.CallToolResult, GameResult, error) {
		if err := requireString("context", input.Context); err != nil {
			return nil, GameResult{}, err
		}
		result, err := sendAndDrain(ctx, deps, "suggest_description", map[string]any{"context": input.Context})
		if err != nil {
			return nil, GameResult{}, err
		}
		return nil, result, nil
	}
}
