package domain

import (
	"context"
	"encoding/json"
	"log"

	"github.com/louisbranch/wyvernbridge/internal/platform/id"
	"github.com/louisbranch/wyvernbridge/internal/services/bridge/conn"
	"github.com/louisbranch/wyvernbridge/internal/services/bridge/events"
)

// Caller is the connection surface handlers depend on.
type Caller interface {
	Connect(ctx context.Context, username, token string) (json.RawMessage, error)
	Call(ctx context.Context, action string, params any) (json.RawMessage, error)
	Close() error
	Status() conn.Status
}

// Deps carries the shared collaborators into tool handlers.
type Deps struct {
	Conn   Caller
	Events *events.Buffer
}

// sendAndDrain forwards one validated action, waits for the correlated
// response, and assembles it with the drained push events. Errors come back
// structured; the process never terminates on a failed call.
func sendAndDrain(ctx context.Context, deps Deps, action string, params any) (GameResult, error) {
	invocationID, err := id.NewID()
	if err != nil {
		return GameResult{}, err
	}

	raw, err := deps.Conn.Call(ctx, action, params)
	if err != nil {
		log.Printf("%s failed [inv %s]: %v", action, invocationID, err)
		return GameResult{}, err
	}
	return assembleResult(raw, deps.Events), nil
}
