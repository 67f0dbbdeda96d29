// Package wire encodes and decodes the JSON frames exchanged with the game
// server over the WebSocket link.
//
// Outbound frames are correlated calls: {"id", "action", "params"}. Inbound
// frames are either a correlated response (carries the call's "id") or an
// unsolicited push event ({"type":"event", ...}). Anything else is malformed
// and gets dropped by the caller.
package wire

import (
	"encoding/json"
	"fmt"

	"github.com/louisbranch/wyvernbridge/internal/errors"
)

// Kind classifies an inbound frame.
type Kind int

const (
	// KindMalformed marks a frame that fits neither shape. Logged and dropped.
	KindMalformed Kind = iota
	// KindResponse marks a correlated response to an outstanding call.
	KindResponse
	// KindPush marks an unsolicited server push event.
	KindPush
)

// Call is an outbound correlated call frame.
type Call struct {
	ID     string `json:"id"`
	Action string `json:"action"`
	Params any    `json:"params,omitempty"`
}

// ErrorPayload is the error body of a failed response frame.
type ErrorPayload struct {
	Code      string            `json:"code"`
	Message   string            `json:"message"`
	Retryable bool              `json:"retryable,omitempty"`
	Details   map[string]string `json:"details,omitempty"`
}

// Response is a decoded correlated response.
type Response struct {
	ID     string
	Result json.RawMessage
	Err    *ErrorPayload
}

// PushEvent is a decoded unsolicited server event.
type PushEvent struct {
	Kind string          `json:"kind"`
	Seq  int64           `json:"seq,omitempty"`
	Data json.RawMessage `json:"data,omitempty"`
}

// Inbound is the classification result for one inbound frame.
type Inbound struct {
	Kind     Kind
	Response Response  // set when Kind == KindResponse
	Event    PushEvent // set when Kind == KindPush
}

// frame is the superset shape of every inbound message.
type frame struct {
	ID     string          `json:"id,omitempty"`
	Type   string          `json:"type,omitempty"`
	Status string          `json:"status,omitempty"`
	Result json.RawMessage `json:"result,omitempty"`
	Error  *ErrorPayload   `json:"error,omitempty"`
	Kind   string          `json:"kind,omitempty"`
	Seq    int64           `json:"seq,omitempty"`
	Data   json.RawMessage `json:"data,omitempty"`
}

// Encode serializes a call frame. Params must already be validated; encoding
// a registry-typed parameter struct does not fail.
func Encode(id, action string, params any) ([]byte, error) {
	raw, err := json.Marshal(Call{ID: id, Action: action, Params: params})
	if err != nil {
		return nil, fmt.Errorf("encode %s frame: %w", action, err)
	}
	return raw, nil
}

// Decode classifies one inbound frame.
//
// A frame with a non-empty "id" is a response; a frame typed "event" with a
// non-empty event kind is a push; everything else, including invalid JSON,
// is malformed. Decode never returns an error: malformed input is a
// classification, not a failure.
func Decode(raw []byte) Inbound {
	var f frame
	if err := json.Unmarshal(raw, &f); err != nil {
		return Inbound{Kind: KindMalformed}
	}

	if f.ID != "" {
		resp := Response{ID: f.ID, Result: f.Result, Err: f.Error}
		if resp.Err == nil && f.Status == statusError {
			// Error frame without a body still needs a structured shape.
			resp.Err = &ErrorPayload{Code: string(errors.CodeUnknown), Message: "server reported an error without details"}
		}
		return Inbound{Kind: KindResponse, Response: resp}
	}

	if f.Type == typeEvent && f.Kind != "" {
		return Inbound{Kind: KindPush, Event: PushEvent{Kind: f.Kind, Seq: f.Seq, Data: f.Data}}
	}

	return Inbound{Kind: KindMalformed}
}

const (
	typeEvent   = "event"
	statusError = "error"
)
