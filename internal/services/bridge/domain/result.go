package domain

import (
	"encoding/json"

	"github.com/louisbranch/wyvernbridge/internal/services/bridge/events"
	"github.com/louisbranch/wyvernbridge/internal/services/bridge/wire"
)

// PushEvent is one unsolicited server event delivered with a tool result.
type PushEvent struct {
	Kind string         `json:"kind" jsonschema:"event category (chat, presence, world, combat)"`
	Seq  int64          `json:"seq,omitempty" jsonschema:"server-assigned sequence number"`
	Data map[string]any `json:"data,omitempty" jsonschema:"event payload"`
}

// GameResult is the envelope every game tool returns: the correlated server
// response plus everything the server pushed since the previous tool call.
type GameResult struct {
	Result     map[string]any `json:"result,omitempty" jsonschema:"correlated server response payload"`
	Events     []PushEvent    `json:"events,omitempty" jsonschema:"push events received since the previous tool call, in arrival order"`
	EventsLost uint64         `json:"events_lost,omitempty" jsonschema:"total push events dropped to buffer overflow since startup"`
}

// assembleResult decodes the server payload and drains buffered push events.
func assembleResult(raw json.RawMessage, buf *events.Buffer) GameResult {
	out := GameResult{}
	if len(raw) > 0 {
		// The payload is opaque server JSON; a non-object payload is kept
		// under a single "value" key rather than dropped.
		if err := json.Unmarshal(raw, &out.Result); err != nil {
			var value any
			if json.Unmarshal(raw, &value) == nil {
				out.Result = map[string]any{"value": value}
			}
		}
	}
	out.Events = toPushEvents(buf.Drain())
	out.EventsLost = buf.Lost()
	return out
}

func toPushEvents(drained []wire.PushEvent) []PushEvent {
	if len(drained) == 0 {
		return nil
	}
	converted := make([]PushEvent, 0, len(drained))
	for _, ev := range drained {
		out := PushEvent{Kind: ev.Kind, Seq: ev.Seq}
		if len(ev.Data) > 0 {
			if err := json.Unmarshal(ev.Data, &out.Data); err != nil {
				out.Data = map[string]any{"raw": string(ev.Data)}
			}
		}
		converted = append(converted, out)
	}
	return converted
}
