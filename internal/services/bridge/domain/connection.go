package domain

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ConnectInput represents the MCP tool input for joining the game world.
type ConnectInput struct {
	Username string `json:"username" jsonschema:"player username (3-20 lowercase letters, digits, underscores)"`
	Token    string `json:"token,omitempty" jsonschema:"authentication token; leave empty to create a new account under this username"`
}

// BridgeStatusResult reports the local session without touching the network.
type BridgeStatusResult struct {
	State       string `json:"state" jsonschema:"session state (disconnected, connecting, authenticating, active, reconnecting)"`
	Username    string `json:"username,omitempty" jsonschema:"authenticated player name"`
	LastContact string `json:"last_contact,omitempty" jsonschema:"RFC3339 timestamp of the last server frame"`
	PendingCall int    `json:"pending_calls" jsonschema:"calls currently awaiting a server response"`
	EventsLost  uint64 `json:"events_lost" jsonschema:"total push events dropped to buffer overflow since startup"`
}

// DisconnectInput represents the (empty) MCP tool input for disconnecting.
type DisconnectInput struct{}

// BridgeStatusInput represents the (empty) MCP tool input for bridge status.
type BridgeStatusInput struct{}

// ConnectTool defines the MCP tool schema for authenticating with the server.
func ConnectTool() *mcp.Tool {
	return &mcp.Tool{
		Name: "connect",
		Description: "Connect to the game world with username and token. An empty token creates " +
			"a new account and the result carries its freshly generated credential — save it; " +
			"the bridge does not.",
	}
}

// ConnectHandler establishes the session. A rejected attempt leaves the
// session disconnected and is never retried automatically.
func ConnectHandler(deps Deps) mcp.ToolHandlerFor[ConnectInput, GameResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ConnectInput) (*mcp.CallToolResult, GameResult, error) {
		if err := validateUsername(input.Username); err != nil {
			return nil, GameResult{}, err
		}

		raw, err := deps.Conn.Connect(ctx, input.Username, input.Token)
		if err != nil {
			return nil, GameResult{}, err
		}
		return nil, assembleResult(raw, deps.Events), nil
	}
}

// DisconnectTool defines the MCP tool schema for leaving the game world.
func DisconnectTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "disconnect",
		Description: "Disconnect from the game world. The server saves your character.",
	}
}

// DisconnectHandler closes the session; outstanding calls fail immediately
// with a connection-lost error rather than lingering.
func DisconnectHandler(deps Deps) mcp.ToolHandlerFor[DisconnectInput, GameResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ DisconnectInput) (*mcp.CallToolResult, GameResult, error) {
		if err := deps.Conn.Close(); err != nil {
			return nil, GameResult{}, err
		}
		result := GameResult{Result: map[string]any{"status": "ok", "message": "disconnected from game server"}}
		result.Events = toPushEvents(deps.Events.Drain())
		result.EventsLost = deps.Events.Lost()
		return nil, result, nil
	}
}

// BridgeStatusTool defines the MCP tool schema for local session inspection.
func BridgeStatusTool() *mcp.Tool {
	return &mcp.Tool{
		Name: "bridge_status",
		Description: "Inspect the bridge itself: session state, pending calls, and the count of " +
			"push events dropped to buffer overflow. Works without an active connection.",
	}
}

// BridgeStatusHandler snapshots the session and the lost-event counter.
func BridgeStatusHandler(deps Deps) mcp.ToolHandlerFor[BridgeStatusInput, BridgeStatusResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ BridgeStatusInput) (*mcp.CallToolResult, BridgeStatusResult, error) {
		status := deps.Conn.Status()
		result := BridgeStatusResult{
			State:       status.State.String(),
			Username:    status.Username,
			PendingCall: status.Pending,
			EventsLost:  deps.Events.Lost(),
		}
		if !status.LastContact.IsZero() {
			result.LastContact = status.LastContact.Format(time.RFC3339)
		}
		return nil, result, nil
	}
}
