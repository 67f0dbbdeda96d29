package domain

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// BuyInput represents the MCP tool input for buying from a shop.
type BuyInput struct {
	Item string `json:"item" jsonschema:"name of the item to purchase"`
	Shop string `json:"shop,omitempty" jsonschema:"optional shop identifier; defaults to the shop in the current room"`
}

// SellInput represents the MCP tool input for selling to a shop.
type SellInput struct {
	Item string `json:"item" jsonschema:"name of the item to sell"`
	Shop string `json:"shop,omitempty" jsonschema:"optional shop identifier; defaults to the shop in the current room"`
}

// AcceptQuestInput represents the MCP tool input for accepting a quest.
type AcceptQuestInput struct {
	ID string `json:"id" jsonschema:"identifier of the quest to accept"`
}

// CompleteQuestInput represents the MCP tool input for turning in a quest.
type CompleteQuestInput struct {
	ID string `json:"id" jsonschema:"identifier of the quest to complete"`
}

// QuestsInput represents the (empty) MCP tool input for the quest log.
type QuestsInput struct{}

// BuyTool defines the MCP tool schema for shop purchases.
func BuyTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "buy",
		Description: "Buy an item from a shop. Requires gold.",
	}
}

// BuyHandler forwards a purchase request. Insufficient funds come back as an
// ordinary game error, never a bridge failure.
func BuyHandler(deps Deps) mcp.ToolHandlerFor[BuyInput, GameResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input BuyInput) (*mcp.CallToolResult, GameResult, error) {
		if err := requireString("item", input.Item); err != nil {
			return nil, GameResult{}, err
		}
		params := map[string]any{"item": input.Item}
		if input.Shop != "" {
			params["shop_id"] = input.Shop
		}
		result, err := sendAndDrain(ctx, deps, "buy", params)
		if err != nil {
			return nil, GameResult{}, err
		}
		return nil, result, nil
	}
}

// SellTool defines the MCP tool schema for selling items.
func SellTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "sell",
		Description: "Sell an item to a shop for gold.",
	}
}

// SellHandler forwards a sale request.
func SellHandler(deps Deps) mcp.ToolHandlerFor[SellInput, GameResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SellInput) (*mcp.CallToolResult, GameResult, error) {
		if err := requireString("item", input.Item); err != nil {
			return nil, GameResult{}, err
		}
		params := map[string]any{"item": input.Item}
		if input.Shop != "" {
			params["shop_id"] = input.Shop
		}
		result, err := sendAndDrain(ctx, deps, "sell", params)
		if err != nil {
			return nil, GameResult{}, err
		}
		return nil, result, nil
	}
}

// AcceptQuestTool defines the MCP tool schema for accepting a quest.
func AcceptQuestTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "accept_quest",
		Description: "Accept a quest from an NPC. Adds it to your quest log.",
	}
}

// AcceptQuestHandler forwards a quest acceptance.
func AcceptQuestHandler(deps Deps) mcp.ToolHandlerFor[AcceptQuestInput, GameResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input AcceptQuestInput) (*mcp.CallToolResult, GameResult, error) {
		if err := requireString("id", input.ID); err != nil {
			return nil, GameResult{}, err
		}
		result, err := sendAndDrain(ctx, deps, "accept_quest", map[string]any{"quest_id": input.ID})
		if err != nil {
			return nil, GameResult{}, err
		}
		return nil, result, nil
	}
}

// CompleteQuestTool defines the MCP tool schema for turning in a quest.
func CompleteQuestTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "complete_quest",
		Description: "Turn in a completed quest for rewards.",
	}
}

// CompleteQuestHandler forwards a quest turn-in.
func CompleteQuestHandler(deps Deps) mcp.ToolHandlerFor[CompleteQuestInput, GameResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CompleteQuestInput) (*mcp.CallToolResult, GameResult, error) {
		if err := requireString("id", input.ID); err != nil {
			return nil, GameResult{}, err
		}
		result, err := sendAndDrain(ctx, deps, "complete_quest", map[string]any{"quest_id": input.ID})
		if err != nil {
			return nil, GameResult{}, err
		}
		return nil, result, nil
	}
}

// QuestsTool defines the MCP tool schema for the quest log.
func QuestsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "quests",
		Description: "Show your active and completed quests.",
	}
}

// QuestsHandler forwards a quest log request.
func QuestsHandler(deps Deps) mcp.ToolHandlerFor[QuestsInput, GameResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ QuestsInput) (*mcp.CallToolResult, GameResult, error) {
		result, err := sendAndDrain(ctx, deps, "quests", nil)
		if err != nil {
			return nil, GameResult{}, err
		}
		return nil, result, nil
	}
}
