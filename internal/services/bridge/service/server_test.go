// Package service tests the MCP server wiring.
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// failingTransport returns a connection error for tests.
type failingTransport struct{}

// Connect returns the configured error for tests.
func (f failingTransport) Connect(context.Context) (mcp.Connection, error) {
	return nil, errors.New("transport failure")
}

// connectClient starts the server over in-memory transports and returns a
// connected client session.
func connectClient(t *testing.T, server *Server) (*mcp.ClientSession, chan error, context.CancelFunc) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.serveWithTransport(ctx, serverTransport)
	}()

	client := mcp.NewClient(&mcp.Implementation{Name: "client", Version: "v0.0.1"}, nil)
	clientCtx, clientCancel := context.WithTimeout(context.Background(), time.Second)
	defer clientCancel()
	session, err := client.Connect(clientCtx, clientTransport, nil)
	if err != nil {
		cancel()
		t.Fatalf("connect client: %v", err)
	}
	t.Cleanup(func() { session.Close() })

	return session, serveErr, cancel
}

// TestNewConfiguresServer ensures New returns a configured server.
func TestNewConfiguresServer(t *testing.T) {
	server := New("localhost:8080")
	if server == nil || server.mcpServer == nil || server.manager == nil {
		t.Fatal("expected configured server")
	}
}

// TestServeRequiresConfiguredServer ensures Serve returns an error when unconfigured.
func TestServeRequiresConfiguredServer(t *testing.T) {
	tests := []struct {
		name   string
		server *Server
	}{
		{name: "nil server", server: nil},
		{name: "missing mcp server", server: &Server{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.server.Serve(context.Background()); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

// TestServeStopsOnContext ensures serving exits cleanly when the context is cancelled.
func TestServeStopsOnContext(t *testing.T) {
	_, serveErr, cancel := connectClient(t, New("localhost:8080"))

	cancel()

	select {
	case err := <-serveErr:
		if err != nil {
			t.Fatalf("serve returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
}

// TestRunReturnsTransportError ensures transport failures are reported.
func TestRunReturnsTransportError(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := runWithTransport(ctx, "localhost:8080", failingTransport{}); err == nil {
		t.Fatal("expected transport error")
	}
}

// TestListToolsExposesAllActions ensures every tool group registered.
func TestListToolsExposesAllActions(t *testing.T) {
	session, _, cancel := connectClient(t, New("localhost:8080"))
	defer cancel()

	ctx, listCancel := context.WithTimeout(context.Background(), time.Second)
	defer listCancel()
	result, err := session.ListTools(ctx, nil)
	if err != nil {
		t.Fatalf("list tools: %v", err)
	}

	names := make(map[string]bool, len(result.Tools))
	for _, tool := range result.Tools {
		names[tool.Name] = true
	}
	if len(names) != 47 {
		t.Errorf("registered %d tools, want 47", len(names))
	}
	for _, want := range []string{
		"connect", "disconnect", "bridge_status",
		"look", "move_direction", "map",
		"attack", "use_ability", "flee", "status",
		"inventory", "get_item", "drop_item", "equip", "use_item",
		"buy", "sell", "accept_quest", "complete_quest", "quests",
		"say", "tell", "shout", "emote", "who", "channel",
		"party_invite", "party_accept", "party_leave", "party_kick", "party_list", "matchmake",
		"guild_create", "guild_invite", "guild_leave", "guild_info", "guild_deposit",
		"talk", "dialogue_select",
		"companion", "companion_status", "companion_memory", "companion_memory_write",
		"character_info", "abilities", "leaderboard", "suggest_description",
	} {
		if !names[want] {
			t.Errorf("tool %q not registered", want)
		}
	}
}

// TestBridgeStatusToolWorksWithoutConnection ensures the local status tool
// answers while disconnected.
func TestBridgeStatusToolWorksWithoutConnection(t *testing.T) {
	session, _, cancel := connectClient(t, New("localhost:8080"))
	defer cancel()

	ctx, callCancel := context.WithTimeout(context.Background(), time.Second)
	defer callCancel()
	result, err := session.CallTool(ctx, &mcp.CallToolParams{Name: "bridge_status"})
	if err != nil {
		t.Fatalf("call bridge_status: %v", err)
	}
	if result.IsError {
		t.Fatalf("bridge_status returned tool error: %v", result.Content)
	}
	structured, ok := result.StructuredContent.(map[string]any)
	if !ok {
		t.Fatalf("structured content type = %T, want map", result.StructuredContent)
	}
	if structured["state"] != "disconnected" {
		t.Errorf("state = %v, want disconnected", structured["state"])
	}
}

// TestGameToolFailsWhileDisconnected ensures game tools report the session
// error as a tool error instead of crashing the server.
func TestGameToolFailsWhileDisconnected(t *testing.T) {
	session, _, cancel := connectClient(t, New("localhost:8080"))
	defer cancel()

	ctx, callCancel := context.WithTimeout(context.Background(), time.Second)
	defer callCancel()
	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "attack",
		Arguments: map[string]any{"target": "goblin"},
	})
	if err != nil {
		t.Fatalf("call attack: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected tool error while disconnected")
	}

	// The server keeps serving after a failed tool call.
	listCtx, listCancel := context.WithTimeout(context.Background(), time.Second)
	defer listCancel()
	if _, err := session.ListTools(listCtx, nil); err != nil {
		t.Fatalf("list tools after failed call: %v", err)
	}
}
