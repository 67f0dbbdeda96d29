package conn

// State is the session lifecycle state.
//
// The session moves Disconnected → Connecting → Authenticating → Active.
// A transport failure while Active parks it in Reconnecting until the caller
// explicitly reconnects; nothing in the bridge replays credentials on its own.
type State int

const (
	// StateDisconnected means no socket exists.
	StateDisconnected State = iota
	// StateConnecting means the WebSocket dial is in flight.
	StateConnecting
	// StateAuthenticating means the socket is up and the connect call is pending.
	StateAuthenticating
	// StateActive means the server accepted the credentials; calls may flow.
	StateActive
	// StateReconnecting means the transport failed while Active and the
	// caller has not reconnected yet.
	StateReconnecting
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateAuthenticating:
		return "authenticating"
	case StateActive:
		return "active"
	case StateReconnecting:
		return "reconnecting"
	default:
		return "unknown"
	}
}
