package domain

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// PartyInviteInput represents the MCP tool input for a party invitation.
type PartyInviteInput struct {
	Player string `json:"player" jsonschema:"player to invite"`
}

// PartyAcceptInput represents the (empty) MCP tool input for accepting an invite.
type PartyAcceptInput struct{}

// PartyLeaveInput represents the (empty) MCP tool input for leaving the party.
type PartyLeaveInput struct{}

// PartyKickInput represents the MCP tool input for kicking a party member.
type PartyKickInput struct {
	Player string `json:"player" jsonschema:"player to kick from the party"`
}

// PartyListInput represents the (empty) MCP tool input for the party roster.
type PartyListInput struct{}

// MatchmakeInput represents the MCP tool input for auto-matchmaking.
type MatchmakeInput struct {
	Role string `json:"role,omitempty" jsonschema:"preferred role for matchmaking"`
	Zone string `json:"zone,omitempty" jsonschema:"preferred zone for matchmaking"`
}

// PartyInviteTool defines the MCP tool schema for party invitations.
func PartyInviteTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "party_invite",
		Description: "Invite another player to join your party.",
	}
}

// PartyInviteHandler forwards a party invitation.
func PartyInviteHandler(deps Deps) mcp.ToolHandlerFor[PartyInviteInput, GameResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input PartyInviteInput) (*mcp.CallToolResult, GameResult, error) {
		if err := requireString("player", input.Player); err != nil {
			return nil, GameResult{}, err
		}
		result, err := sendAndDrain(ctx, deps, "party_invite", map[string]any{"player": input.Player})
		if err != nil {
			return nil, GameResult{}, err
		}
		return nil, result, nil
	}
}

// PartyAcceptTool defines the MCP tool schema for accepting an invitation.
func PartyAcceptTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "party_accept",
		Description: "Accept a pending party invitation.",
	}
}

// PartyAcceptHandler forwards a party accept.
func PartyAcceptHandler(deps Deps) mcp.ToolHandlerFor[PartyAcceptInput, GameResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ PartyAcceptInput) (*mcp.CallToolResult, GameResult, error) {
		result, err := sendAndDrain(ctx, deps, "party_accept", nil)
		if err != nil {
			return nil, GameResult{}, err
		}
		return nil, result, nil
	}
}

// PartyLeaveTool defines the MCP tool schema for leaving the party.
func PartyLeaveTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "party_leave",
		Description: "Leave your current party.",
	}
}

// PartyLeaveHandler forwards a party leave.
func PartyLeaveHandler(deps Deps) mcp.ToolHandlerFor[PartyLeaveInput, GameResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ PartyLeaveInput) (*mcp.CallToolResult, GameResult, error) {
		result, err := sendAndDrain(ctx, deps, "party_leave", nil)
		if err != nil {
			return nil, GameResult{}, err
		}
		return nil, result, nil
	}
}

// PartyKickTool defines the MCP tool schema for kicking a member.
func PartyKickTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "party_kick",
		Description: "Kick a member from your party. Only the party leader can do this.",
	}
}

// PartyKickHandler forwards a party kick.
func PartyKickHandler(deps Deps) mcp.ToolHandlerFor[PartyKickInput, GameResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input PartyKickInput) (*mcp.CallToolResult, GameResult, error) {
		if err := requireString("player", input.Player); err != nil {
			return nil, GameResult{}, err
		}
		result, err := sendAndDrain(ctx, deps, "party_kick", map[string]any{"player": input.Player})
		if err != nil {
			return nil, GameResult{}, err
		}
		return nil, result, nil
	}
}

// PartyListTool defines the MCP tool schema for the party roster.
func PartyListTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "party_list",
		Description: "Show party members with their HP and location.",
	}
}

// PartyListHandler forwards a party roster request.
func PartyListHandler(deps Deps) mcp.ToolHandlerFor[PartyListInput, GameResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ PartyListInput) (*mcp.CallToolResult, GameResult, error) {
		result, err := sendAndDrain(ctx, deps, "party_list", nil)
		if err != nil {
			return nil, GameResult{}, err
		}
		return nil, result, nil
	}
}

// MatchmakeTool defines the MCP tool schema for auto-matchmaking.
func MatchmakeTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "matchmake",
		Description: "Queue for auto-matchmaking. Optionally specify a preferred role and/or zone.",
	}
}

// MatchmakeHandler forwards a matchmaking request.
func MatchmakeHandler(deps Deps) mcp.ToolHandlerFor[MatchmakeInput, GameResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input MatchmakeInput) (*mcp.CallToolResult, GameResult, error) {
		params := map[string]any{}
		if input.Role != "" {
			params["role"] = input.Role
		}
		if input.Zone != "" {
			params["zone"] = input.Zone
		}
		result, err := sendAndDrain(ctx, deps, "matchmake", params)
		if err != nil {
			return nil, GameResult{}, err
		}
		return nil, result, nil
	}
}
