package domain

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// GuildCreateInput represents the MCP tool input for founding a guild.
type GuildCreateInput struct {
	Name string `json:"name" jsonschema:"name of the guild to found"`
}

// GuildInviteInput represents the MCP tool input for a guild invitation.
type GuildInviteInput struct {
	Player string `json:"player" jsonschema:"player to invite to the guild"`
}

// GuildLeaveInput represents the (empty) MCP tool input for leaving the guild.
type GuildLeaveInput struct{}

// GuildInfoInput represents the (empty) MCP tool input for guild details.
type GuildInfoInput struct{}

// GuildDepositInput represents the MCP tool input for a guild bank deposit.
type GuildDepositInput struct {
	Amount int64 `json:"amount" jsonschema:"amount of gold to deposit; must be positive"`
}

// GuildCreateTool defines the MCP tool schema for founding a guild.
func GuildCreateTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "guild_create",
		Description: "Found a new guild. Costs gold and requires a unique name.",
	}
}

// GuildCreateHandler forwards a guild creation request.
func GuildCreateHandler(deps Deps) mcp.ToolHandlerFor[GuildCreateInput, GameResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GuildCreateInput) (*mcp.CallToolResult, GameResult, error) {
		if err := requireString("name", input.Name); err != nil {
			return nil, GameResult{}, err
		}
		result, err := sendAndDrain(ctx, deps, "guild_create", map[string]any{"name": input.Name})
		if err != nil {
			return nil, GameResult{}, err
		}
		return nil, result, nil
	}
}

// GuildInviteTool defines the MCP tool schema for guild invitations.
func GuildInviteTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "guild_invite",
		Description: "Invite a player to your guild. Requires officer rank or above.",
	}
}

// GuildInviteHandler forwards a guild invitation.
func GuildInviteHandler(deps Deps) mcp.ToolHandlerFor[GuildInviteInput, GameResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GuildInviteInput) (*mcp.CallToolResult, GameResult, error) {
		if err := requireString("player", input.Player); err != nil {
			return nil, GameResult{}, err
		}
		result, err := sendAndDrain(ctx, deps, "guild_invite", map[string]any{"player": input.Player})
		if err != nil {
			return nil, GameResult{}, err
		}
		return nil, result, nil
	}
}

// GuildLeaveTool defines the MCP tool schema for leaving a guild.
func GuildLeaveTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "guild_leave",
		Description: "Leave your current guild.",
	}
}

// GuildLeaveHandler forwards a guild leave.
func GuildLeaveHandler(deps Deps) mcp.ToolHandlerFor[GuildLeaveInput, GameResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ GuildLeaveInput) (*mcp.CallToolResult, GameResult, error) {
		result, err := sendAndDrain(ctx, deps, "guild_leave", nil)
		if err != nil {
			return nil, GameResult{}, err
		}
		return nil, result, nil
	}
}

// GuildInfoTool defines the MCP tool schema for guild details.
func GuildInfoTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "guild_info",
		Description: "Show your guild's members, ranks, bank balance, and level.",
	}
}

// GuildInfoHandler forwards a guild info request.
func GuildInfoHandler(deps Deps) mcp.ToolHandlerFor[GuildInfoInput, GameResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ GuildInfoInput) (*mcp.CallToolResult, GameResult, error) {
		result, err := sendAndDrain(ctx, deps, "guild_info", nil)
		if err != nil {
			return nil, GameResult{}, err
		}
		return nil, result, nil
	}
}

// GuildDepositTool defines the MCP tool schema for guild bank deposits.
func GuildDepositTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "guild_deposit",
		Description: "Deposit gold into the guild bank.",
	}
}

// GuildDepositHandler rejects non-positive amounts locally before forwarding.
func GuildDepositHandler(deps Deps) mcp.ToolHandlerFor[GuildDepositInput, GameResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GuildDepositInput) (*mcp.CallToolResult, GameResult, error) {
		if err := validateAmount(input.Amount); err != nil {
			return nil, GameResult{}, err
		}
		result, err := sendAndDrain(ctx, deps, "guild_deposit", map[string]any{"amount": input.Amount})
		if err != nil {
			return nil, GameResult{}, err
		}
		return nil, result, nil
	}
}
