package domain

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// AttackInput represents the MCP tool input for attacking a target.
type AttackInput struct {
	Target string `json:"target" jsonschema:"target to attack"`
	Weapon string `json:"weapon,omitempty" jsonschema:"optional weapon to use instead of the equipped one"`
}

// UseAbilityInput represents the MCP tool input for using a class ability.
type UseAbilityInput struct {
	Name   string `json:"name" jsonschema:"ability name to use"`
	Target string `json:"target,omitempty" jsonschema:"optional target for the ability"`
}

// FleeInput represents the (empty) MCP tool input for fleeing combat.
type FleeInput struct{}

// StatusInput represents the (empty) MCP tool input for the status check.
type StatusInput struct{}

// AttackTool defines the MCP tool schema for attacking.
func AttackTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "attack",
		Description: "Attack a target with your equipped or specified weapon. Returns damage dealt and combat state.",
	}
}

// AttackHandler forwards an attack request.
func AttackHandler(deps Deps) mcp.ToolHandlerFor[AttackInput, GameResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input AttackInput) (*mcp.CallToolResult, GameResult, error) {
		if err := requireString("target", input.Target); err != nil {
			return nil, GameResult{}, err
		}
		params := map[string]any{"target": input.Target}
		if input.Weapon != "" {
			params["weapon"] = input.Weapon
		}
		result, err := sendAndDrain(ctx, deps, "attack", params)
		if err != nil {
			return nil, GameResult{}, err
		}
		return nil, result, nil
	}
}

// UseAbilityTool defines the MCP tool schema for class abilities.
func UseAbilityTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "use_ability",
		Description: "Use a class ability, optionally targeting a specific entity. Returns effect description and state update.",
	}
}

// UseAbilityHandler forwards an ability request.
func UseAbilityHandler(deps Deps) mcp.ToolHandlerFor[UseAbilityInput, GameResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input UseAbilityInput) (*mcp.CallToolResult, GameResult, error) {
		if err := requireString("name", input.Name); err != nil {
			return nil, GameResult{}, err
		}
		params := map[string]any{"ability": input.Name}
		if input.Target != "" {
			params["target"] = input.Target
		}
		result, err := sendAndDrain(ctx, deps, "use_ability", params)
		if err != nil {
			return nil, GameResult{}, err
		}
		return nil, result, nil
	}
}

// FleeTool defines the MCP tool schema for fleeing.
func FleeTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "flee",
		Description: "Attempt to flee from combat. May fail depending on circumstances.",
	}
}

// FleeHandler forwards a flee request.
func FleeHandler(deps Deps) mcp.ToolHandlerFor[FleeInput, GameResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ FleeInput) (*mcp.CallToolResult, GameResult, error) {
		result, err := sendAndDrain(ctx, deps, "flee", nil)
		if err != nil {
			return nil, GameResult{}, err
		}
		return nil, result, nil
	}
}

// StatusTool defines the MCP tool schema for the character status check.
func StatusTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "status",
		Description: "Show your full status: HP, mana, level, XP, recovery balance, active effects, and location.",
	}
}

// StatusHandler forwards a status request.
func StatusHandler(deps Deps) mcp.ToolHandlerFor[StatusInput, GameResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ StatusInput) (*mcp.CallToolResult, GameResult, error) {
		result, err := sendAndDrain(ctx, deps, "status", nil)
		if err != nil {
			return nil, GameResult{}, err
		}
		return nil, result, nil
	}
}
