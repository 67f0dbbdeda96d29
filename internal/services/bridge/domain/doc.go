// Package domain defines the bridge's MCP tool surface.
//
// Each game operation is one tool: a typed input struct, a Tool declaration,
// and a handler that validates the input, forwards the action over the game
// connection, and assembles the response together with any push events that
// arrived since the caller's previous tool call. All game logic lives on the
// server; handlers are a thin, validated pass-through.
package domain
