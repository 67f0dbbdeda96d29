package domain

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// SayInput represents the MCP tool input for speaking aloud.
type SayInput struct {
	Text string `json:"text" jsonschema:"message to speak aloud in the current room"`
}

// TellInput represents the MCP tool input for a private message.
type TellInput struct {
	Target string `json:"target" jsonschema:"player name to message"`
	Text   string `json:"text" jsonschema:"private message content"`
}

// ShoutInput represents the MCP tool input for a zone-wide shout.
type ShoutInput struct {
	Text string `json:"text" jsonschema:"message to broadcast to the zone"`
}

// EmoteInput represents the MCP tool input for a custom emote.
type EmoteInput struct {
	Action string `json:"action" jsonschema:"custom emote action to perform (e.g. 'dances a jig')"`
}

// WhoInput represents the (empty) MCP tool input for the online player list.
type WhoInput struct{}

// ChannelInput represents the MCP tool input for channel chat.
type ChannelInput struct {
	Name string `json:"name" jsonschema:"channel name (ooc, trade, guild, party)"`
	Text string `json:"text" jsonschema:"message to send"`
}

// SayTool defines the MCP tool schema for room speech.
func SayTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "say",
		Description: "Say something aloud in the current room. All present players will see it.",
	}
}

// SayHandler forwards a say request.
func SayHandler(deps Deps) mcp.ToolHandlerFor[SayInput, GameResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SayInput) (*mcp.CallToolResult, GameResult, error) {
		if err := requireString("text", input.Text); err != nil {
			return nil, GameResult{}, err
		}
		result, err := sendAndDrain(ctx, deps, "say", map[string]any{"message": input.Text})
		if err != nil {
			return nil, GameResult{}, err
		}
		return nil, result, nil
	}
}

// TellTool defines the MCP tool schema for private messages.
func TellTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "tell",
		Description: "Send a private message to a specific player.",
	}
}

// TellHandler forwards a tell request.
func TellHandler(deps Deps) mcp.ToolHandlerFor[TellInput, GameResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input TellInput) (*mcp.CallToolResult, GameResult, error) {
		if err := requireString("target", input.Target); err != nil {
			return nil, GameResult{}, err
		}
		if err := requireString("text", input.Text); err != nil {
			return nil, GameResult{}, err
		}
		result, err := sendAndDrain(ctx, deps, "tell", map[string]any{
			"player":  input.Target,
			"message": input.Text,
		})
		if err != nil {
			return nil, GameResult{}, err
		}
		return nil, result, nil
	}
}

// ShoutTool defines the MCP tool schema for zone-wide shouts.
func ShoutTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "shout",
		Description: "Shout a message to the entire zone. Costs gold.",
	}
}

// ShoutHandler forwards a shout request.
func ShoutHandler(deps Deps) mcp.ToolHandlerFor[ShoutInput, GameResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ShoutInput) (*mcp.CallToolResult, GameResult, error) {
		if err := requireString("text", input.Text); err != nil {
			return nil, GameResult{}, err
		}
		result, err := sendAndDrain(ctx, deps, "shout", map[string]any{"message": input.Text})
		if err != nil {
			return nil, GameResult{}, err
		}
		return nil, result, nil
	}
}

// EmoteTool defines the MCP tool schema for custom emotes.
func EmoteTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "emote",
		Description: "Perform a custom emote visible to the room (e.g., 'dances a jig').",
	}
}

// EmoteHandler forwards an emote request.
func EmoteHandler(deps Deps) mcp.ToolHandlerFor[EmoteInput, GameResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input EmoteInput) (*mcp.CallToolResult, GameResult, error) {
		if err := requireString("action", input.Action); err != nil {
			return nil, GameResult{}, err
		}
		result, err := sendAndDrain(ctx, deps, "emote", map[string]any{"action": input.Action})
		if err != nil {
			return nil, GameResult{}, err
		}
		return nil, result, nil
	}
}

// WhoTool defines the MCP tool schema for the online player list.
func WhoTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "who",
		Description: "List all online players with their level and location.",
	}
}

// WhoHandler forwards a who request.
func WhoHandler(deps Deps) mcp.ToolHandlerFor[WhoInput, GameResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ WhoInput) (*mcp.CallToolResult, GameResult, error) {
		result, err := sendAndDrain(ctx, deps, "who", nil)
		if err != nil {
			return nil, GameResult{}, err
		}
		return nil, result, nil
	}
}

// ChannelTool defines the MCP tool schema for channel chat.
func ChannelTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "channel",
		Description: "Send a message to a chat channel (ooc, trade, guild, party).",
	}
}

// ChannelHandler validates the channel against the closed channel set and
// forwards the message.
func ChannelHandler(deps Deps) mcp.ToolHandlerFor[ChannelInput, GameResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ChannelInput) (*mcp.CallToolResult, GameResult, error) {
		if err := validateChannel(input.Name); err != nil {
			return nil, GameResult{}, err
		}
		if err := requireString("text", input.Text); err != nil {
			return nil, GameResult{}, err
		}
		result, err := sendAndDrain(ctx, deps, "channel", map[string]any{
			"name":    input.Name,
			"message": input.Text,
		})
		if err != nil {
			return nil, GameResult{}, err
		}
		return nil, result, nil
	}
}
