// Package conn owns the persistent WebSocket link to the game server.
//
// One Manager exists per process. It drives the session state machine,
// performs the authentication handshake, correlates responses to outstanding
// calls by id, and routes unsolicited push events into the event buffer. The
// receive loop and the tool handlers run concurrently; all shared state is
// guarded by the Manager's mutex.
package conn

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/net/websocket"

	"github.com/louisbranch/wyvernbridge/internal/errors"
	"github.com/louisbranch/wyvernbridge/internal/services/bridge/events"
	"github.com/louisbranch/wyvernbridge/internal/services/bridge/wire"
)

// responseTimeout bounds the wait for a correlated server response.
// Large enough for the game server to process any single action.
const responseTimeout = 30 * time.Second

// outcome resolves one pending call: a result payload or a structured error.
type outcome struct {
	result json.RawMessage
	err    *errors.Error
}

// Manager holds the single socket, the session, and the pending-call map.
type Manager struct {
	addr   string
	events *events.Buffer
	tracer trace.Tracer

	// timeout is overridable in tests; responseTimeout otherwise.
	timeout time.Duration

	mu          sync.Mutex
	state       State
	username    string
	lastContact time.Time
	ws          *websocket.Conn
	nextID      uint64
	pending     map[string]chan outcome

	// writeMu serializes frame writes; handlers send concurrently.
	writeMu sync.Mutex
}

// Status is a point-in-time snapshot of the session for observability.
type Status struct {
	State       State
	Username    string
	LastContact time.Time
	Pending     int
}

// New creates a disconnected Manager targeting addr. Push events received
// while Active are forwarded to buf.
func New(addr string, buf *events.Buffer) *Manager {
	return &Manager{
		addr:    addr,
		events:  buf,
		tracer:  otel.Tracer("wyvernbridge/conn"),
		timeout: responseTimeout,
		pending: make(map[string]chan outcome),
	}
}

// State returns the current session state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Status returns a snapshot of the session.
func (m *Manager) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Status{
		State:       m.state,
		Username:    m.username,
		LastContact: m.lastContact,
		Pending:     len(m.pending),
	}
}

// Connect establishes the socket and authenticates as username.
//
// An empty token asks the server to create a new account under that name;
// the response then carries a freshly generated credential which is returned
// verbatim and never persisted here. On rejection the session returns to
// Disconnected and the caller decides whether to retry.
func (m *Manager) Connect(ctx context.Context, username, token string) (json.RawMessage, error) {
	m.mu.Lock()
	if m.state == StateConnecting || m.state == StateAuthenticating {
		m.mu.Unlock()
		return nil, errors.New(errors.CodeConnectFailed, "a connect attempt is already in progress")
	}
	prev := m.ws
	m.ws = nil
	m.state = StateConnecting
	m.failAllLocked()
	m.mu.Unlock()

	// At most one live socket per process: retire any previous one first.
	if prev != nil {
		_ = prev.Close()
	}

	ws, err := websocket.Dial(wsURL(m.addr), "", originURL(m.addr))
	if err != nil {
		m.mu.Lock()
		m.state = StateDisconnected
		m.mu.Unlock()
		return nil, errors.Newf(errors.CodeConnectFailed, "dial %s: %v", m.addr, err)
	}

	m.mu.Lock()
	m.ws = ws
	m.state = StateAuthenticating
	m.mu.Unlock()
	go m.receiveLoop(ws)

	ctx, span := m.tracer.Start(ctx, "bridge.connect",
		trace.WithAttributes(attribute.String("game.username", username)))
	defer span.End()

	result, err := m.call(ctx, ws, "connect", map[string]string{
		"username": username,
		"token":    token,
	})
	if err != nil {
		span.SetStatus(otelcodes.Error, err.Error())
		m.mu.Lock()
		if m.ws == ws {
			m.ws = nil
			m.failAllLocked()
		}
		m.state = StateDisconnected
		m.mu.Unlock()
		_ = ws.Close()
		return nil, fmt.Errorf("authenticate %q: %w", username, err)
	}

	m.mu.Lock()
	if m.ws != ws {
		m.mu.Unlock()
		return nil, errors.New(errors.CodeConnectionLost, "connection replaced during handshake")
	}
	m.state = StateActive
	m.username = username
	m.lastContact = time.Now()
	m.mu.Unlock()

	log.Printf("session active for %q on %s", username, m.addr)
	return result, nil
}

// Call sends one correlated action to the server and waits for its response.
//
// Fails immediately with NOT_CONNECTED outside the Active state, without
// touching the network. Concurrent calls are independent: each gets its own
// correlation id and blocks only its own caller.
func (m *Manager) Call(ctx context.Context, action string, params any) (json.RawMessage, error) {
	m.mu.Lock()
	if m.state != StateActive {
		state := m.state
		m.mu.Unlock()
		return nil, errors.Newf(errors.CodeNotConnected, "session is %s; call connect first", state)
	}
	ws := m.ws
	m.mu.Unlock()

	ctx, span := m.tracer.Start(ctx, "bridge.call",
		trace.WithAttributes(attribute.String("game.action", action)))
	defer span.End()

	result, err := m.call(ctx, ws, action, params)
	if err != nil {
		span.SetStatus(otelcodes.Error, err.Error())
	}
	return result, err
}

// Close fails every outstanding call and closes the socket.
func (m *Manager) Close() error {
	m.mu.Lock()
	ws := m.ws
	m.ws = nil
	m.state = StateDisconnected
	m.username = ""
	m.failAllLocked()
	m.mu.Unlock()

	if ws != nil {
		return ws.Close()
	}
	return nil
}

// call registers a pending entry, writes the frame, and waits for resolution.
// It is shared by the authentication handshake and regular calls.
func (m *Manager) call(ctx context.Context, ws *websocket.Conn, action string, params any) (json.RawMessage, error) {
	m.mu.Lock()
	if m.ws != ws {
		m.mu.Unlock()
		return nil, errors.New(errors.CodeConnectionLost, "connection to game server lost")
	}
	m.nextID++
	id := fmt.Sprintf("msg-%06d", m.nextID)
	ch := make(chan outcome, 1)
	m.pending[id] = ch
	m.mu.Unlock()

	frame, err := wire.Encode(id, action, params)
	if err != nil {
		m.removePending(id)
		return nil, err
	}

	m.writeMu.Lock()
	err = websocket.Message.Send(ws, string(frame))
	m.writeMu.Unlock()
	if err != nil {
		m.removePending(id)
		m.transportFailure(ws, err)
		return nil, errors.Newf(errors.CodeConnectionLost, "send %s: %v", action, err)
	}

	timer := time.NewTimer(m.timeout)
	defer timer.Stop()

	select {
	case out := <-ch:
		if out.err != nil {
			return nil, out.err
		}
		return out.result, nil
	case <-timer.C:
		m.removePending(id)
		return nil, errors.Newf(errors.CodeTimeout, "no response to %s within %s", action, m.timeout)
	case <-ctx.Done():
		m.removePending(id)
		return nil, errors.Newf(errors.CodeCanceled, "%s: %v", action, ctx.Err())
	}
}

// receiveLoop classifies every inbound frame until the socket fails.
func (m *Manager) receiveLoop(ws *websocket.Conn) {
	for {
		var raw string
		if err := websocket.Message.Receive(ws, &raw); err != nil {
			m.transportFailure(ws, err)
			return
		}

		in := wire.Decode([]byte(raw))
		switch in.Kind {
		case wire.KindResponse:
			m.resolve(in.Response)
		case wire.KindPush:
			m.events.Push(in.Event)
			m.touch()
		default:
			log.Printf("dropping malformed frame (%d bytes)", len(raw))
		}
	}
}

// resolve completes the pending call matching the response id.
// Responses with no matching entry are stale or duplicated; log and drop.
func (m *Manager) resolve(resp wire.Response) {
	m.mu.Lock()
	m.lastContact = time.Now()
	ch, ok := m.pending[resp.ID]
	if ok {
		delete(m.pending, resp.ID)
	}
	m.mu.Unlock()

	if !ok {
		log.Printf("dropping response for unknown id %s", resp.ID)
		return
	}

	if resp.Err != nil {
		err := errors.New(errors.Code(resp.Err.Code), resp.Err.Message)
		if len(resp.Err.Details) > 0 {
			err = err.WithMetadata(resp.Err.Details)
		}
		ch <- outcome{err: err}
		return
	}
	ch <- outcome{result: resp.Result}
}

// transportFailure tears down the socket after a read or write error.
// Every pending call fails with CONNECTION_LOST; an Active session parks in
// Reconnecting until the caller explicitly reconnects.
func (m *Manager) transportFailure(ws *websocket.Conn, cause error) {
	m.mu.Lock()
	if m.ws != ws {
		// A newer connect already replaced this socket.
		m.mu.Unlock()
		return
	}
	m.ws = nil
	if m.state == StateActive {
		m.state = StateReconnecting
	} else {
		m.state = StateDisconnected
	}
	m.failAllLocked()
	state := m.state
	m.mu.Unlock()

	_ = ws.Close()
	log.Printf("transport failure (%v); session is now %s", cause, state)
}

// failAllLocked resolves every outstanding call with CONNECTION_LOST.
// Callers must hold m.mu.
func (m *Manager) failAllLocked() {
	for id, ch := range m.pending {
		ch <- outcome{err: errors.New(errors.CodeConnectionLost, "connection to game server lost")}
		delete(m.pending, id)
	}
}

func (m *Manager) removePending(id string) {
	m.mu.Lock()
	delete(m.pending, id)
	m.mu.Unlock()
}

func (m *Manager) touch() {
	m.mu.Lock()
	m.lastContact = time.Now()
	m.mu.Unlock()
}

// wsURL builds the WebSocket endpoint for addr. A bare host:port gets the
// default /ws path; an explicit ws:// or wss:// URL is used verbatim.
func wsURL(addr string) string {
	if strings.Contains(addr, "://") {
		return addr
	}
	return fmt.Sprintf("ws://%s/ws", addr)
}

func originURL(addr string) string {
	if rest, ok := strings.CutPrefix(addr, "wss://"); ok {
		return "https://" + hostOf(rest)
	}
	if rest, ok := strings.CutPrefix(addr, "ws://"); ok {
		return "http://" + hostOf(rest)
	}
	return "http://" + addr
}

func hostOf(hostAndPath string) string {
	host, _, _ := strings.Cut(hostAndPath, "/")
	return host
}
