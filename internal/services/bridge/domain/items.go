package domain

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// InventoryInput represents the (empty) MCP tool input for the inventory.
type InventoryInput struct{}

// GetItemInput represents the MCP tool input for picking up an item.
type GetItemInput struct {
	Name string `json:"name" jsonschema:"item name to pick up"`
}

// DropItemInput represents the MCP tool input for dropping an item.
type DropItemInput struct {
	Name string `json:"name" jsonschema:"item name to drop"`
}

// EquipInput represents the MCP tool input for equipping an item.
type EquipInput struct {
	Name string `json:"name" jsonschema:"item to equip"`
	Slot string `json:"slot,omitempty" jsonschema:"optional equipment slot; auto-selected when omitted"`
}

// UseItemInput represents the MCP tool input for using a consumable.
type UseItemInput struct {
	Name   string `json:"name" jsonschema:"consumable item to use"`
	Target string `json:"target,omitempty" jsonschema:"optional target for the item"`
}

// InventoryTool defines the MCP tool schema for listing carried items.
func InventoryTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "inventory",
		Description: "List all items in your inventory with their stats.",
	}
}

// InventoryHandler forwards an inventory request.
func InventoryHandler(deps Deps) mcp.ToolHandlerFor[InventoryInput, GameResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ InventoryInput) (*mcp.CallToolResult, GameResult, error) {
		result, err := sendAndDrain(ctx, deps, "inventory", nil)
		if err != nil {
			return nil, GameResult{}, err
		}
		return nil, result, nil
	}
}

// GetItemTool defines the MCP tool schema for picking up an item.
func GetItemTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_item",
		Description: "Pick up an item from the current room.",
	}
}

// GetItemHandler forwards a pick-up request.
func GetItemHandler(deps Deps) mcp.ToolHandlerFor[GetItemInput, GameResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GetItemInput) (*mcp.CallToolResult, GameResult, error) {
		if err := requireString("name", input.Name); err != nil {
			return nil, GameResult{}, err
		}
		result, err := sendAndDrain(ctx, deps, "get", map[string]any{"item": input.Name})
		if err != nil {
			return nil, GameResult{}, err
		}
		return nil, result, nil
	}
}

// DropItemTool defines the MCP tool schema for dropping an item.
func DropItemTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "drop_item",
		Description: "Drop an item from your inventory into the current room.",
	}
}

// DropItemHandler forwards a drop request.
func DropItemHandler(deps Deps) mcp.ToolHandlerFor[DropItemInput, GameResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input DropItemInput) (*mcp.CallToolResult, GameResult, error) {
		if err := requireString("name", input.Name); err != nil {
			return nil, GameResult{}, err
		}
		result, err := sendAndDrain(ctx, deps, "drop", map[string]any{"item": input.Name})
		if err != nil {
			return nil, GameResult{}, err
		}
		return nil, result, nil
	}
}

// EquipTool defines the MCP tool schema for equipping an item.
func EquipTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "equip",
		Description: "Equip an item from your inventory. Auto-selects the slot if not specified.",
	}
}

// EquipHandler forwards an equip request.
func EquipHandler(deps Deps) mcp.ToolHandlerFor[EquipInput, GameResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input EquipInput) (*mcp.CallToolResult, GameResult, error) {
		if err := requireString("name", input.Name); err != nil {
			return nil, GameResult{}, err
		}
		params := map[string]any{"item": input.Name}
		if input.Slot != "" {
			params["slot"] = input.Slot
		}
		result, err := sendAndDrain(ctx, deps, "equip", params)
		if err != nil {
			return nil, GameResult{}, err
		}
		return nil, result, nil
	}
}

// UseItemTool defines the MCP tool schema for using a consumable.
func UseItemTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "use_item",
		Description: "Use a consumable item (potion, scroll, food), optionally on a target.",
	}
}

// UseItemHandler forwards a consumable request.
func UseItemHandler(deps Deps) mcp.ToolHandlerFor[UseItemInput, GameResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input UseItemInput) (*mcp.CallToolResult, GameResult, error) {
		if err := requireString("name", input.Name); err != nil {
			return nil, GameResult{}, err
		}
		params := map[string]any{"item": input.Name}
		if input.Target != "" {
			params["target"] = input.Target
		}
		result, err := sendAndDrain(ctx, deps, "use_item", params)
		if err != nil {
			return nil, GameResult{}, err
		}
		return nil, result, nil
	}
}
