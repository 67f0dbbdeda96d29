// Package service hosts the MCP stdio server that fronts the game connection.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/louisbranch/wyvernbridge/internal/services/bridge/conn"
	"github.com/louisbranch/wyvernbridge/internal/services/bridge/domain"
	"github.com/louisbranch/wyvernbridge/internal/services/bridge/events"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// serverVersion identifies the MCP server version.
	serverVersion = "0.1.0"
)

// serverName identifies this MCP server to clients.
var serverName = "Weights & Wyverns Bridge"

// Server hosts the MCP server and the single game connection behind it.
type Server struct {
	mcpServer *mcp.Server
	manager   *conn.Manager
}

// New creates a configured bridge server pointed at the game server address.
// Nothing dials until the connect tool is called.
func New(addr string) *Server {
	buf := events.NewBuffer(events.DefaultCapacity)
	manager := conn.New(addr, buf)
	deps := domain.Deps{Conn: manager, Events: buf}

	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)
	registerConnectionTools(mcpServer, deps)
	registerWorldTools(mcpServer, deps)
	registerCombatTools(mcpServer, deps)
	registerItemTools(mcpServer, deps)
	registerCommerceTools(mcpServer, deps)
	registerSocialTools(mcpServer, deps)
	registerPartyTools(mcpServer, deps)
	registerGuildTools(mcpServer, deps)
	registerNPCTools(mcpServer, deps)
	registerCompanionTools(mcpServer, deps)
	registerCharacterTools(mcpServer, deps)

	return &Server{mcpServer: mcpServer, manager: manager}
}

// Serve starts the MCP server on stdio and blocks until it stops or the
// context ends.
func (s *Server) Serve(ctx context.Context) error {
	return s.serveWithTransport(ctx, &mcp.StdioTransport{})
}

// Close releases the game connection held by the server.
func (s *Server) Close() error {
	if s == nil || s.manager == nil {
		return nil
	}
	return s.manager.Close()
}

// serveWithTransport starts the MCP server using the provided transport. The
// MCP loop and the game connection share a single exit path so shutdown
// behavior is consistent.
func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("bridge server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = nil
	}
	closeErr := s.Close()
	if closeErr != nil {
		if err == nil {
			return fmt.Errorf("close game connection: %w", closeErr)
		}
		return fmt.Errorf("serve MCP: %v; close game connection: %w", err, closeErr)
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}

// Run is the service entrypoint and blocks until context cancellation.
func Run(ctx context.Context, addr string) error {
	return runWithTransport(ctx, addr, &mcp.StdioTransport{})
}

// runWithTransport creates a server and serves it over the provided transport.
func runWithTransport(ctx context.Context, addr string, transport mcp.Transport) error {
	return New(addr).serveWithTransport(ctx, transport)
}
