// Package errors provides structured error handling for the bridge.
package errors

// Code is a machine-readable error code.
//
// The set below covers every failure the bridge itself produces. Game-level
// rejections from the server keep their server-assigned codes verbatim, so
// the full code space is open-ended.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Validation errors (caught before any network activity)
	CodeFieldRequired     Code = "FIELD_REQUIRED"
	CodeUsernameInvalid   Code = "USERNAME_INVALID"
	CodeChannelUnknown    Code = "CHANNEL_UNKNOWN"
	CodeAmountNotPositive Code = "AMOUNT_NOT_POSITIVE"
	CodeOptionNegative    Code = "OPTION_NEGATIVE"

	// Session errors
	CodeNotConnected Code = "NOT_CONNECTED"

	// Auth errors
	CodeAccountExists Code = "ACCOUNT_EXISTS_TOKEN_REQUIRED"
	CodeInvalidToken  Code = "INVALID_TOKEN"
	CodeAuthFailed    Code = "AUTH_FAILED"

	// Transport errors
	CodeTimeout        Code = "TIMEOUT"
	CodeConnectionLost Code = "CONNECTION_LOST"
	CodeConnectFailed  Code = "CONNECT_FAILED"
	CodeCanceled       Code = "CANCELED"
)

// Kind groups codes by how the caller should react to them.
type Kind string

const (
	// KindValidation marks malformed calls rejected before network I/O.
	KindValidation Kind = "VALIDATION"
	// KindNotConnected marks calls attempted outside the Active session state.
	KindNotConnected Kind = "NOT_CONNECTED"
	// KindAuth marks authentication rejections from the server.
	KindAuth Kind = "AUTH"
	// KindTimeout marks calls that saw no correlated response in time.
	KindTimeout Kind = "TIMEOUT"
	// KindTransport marks socket-level failures.
	KindTransport Kind = "TRANSPORT"
	// KindGame marks domain-level rejections carried verbatim from the server.
	KindGame Kind = "GAME"
)

// Kind classifies a code. Codes the bridge does not mint itself are
// server-issued and classify as KindGame.
func (c Code) Kind() Kind {
	switch c {
	case CodeFieldRequired, CodeUsernameInvalid, CodeChannelUnknown,
		CodeAmountNotPositive, CodeOptionNegative:
		return KindValidation
	case CodeNotConnected:
		return KindNotConnected
	case CodeAccountExists, CodeInvalidToken, CodeAuthFailed:
		return KindAuth
	case CodeTimeout:
		return KindTimeout
	case CodeConnectionLost, CodeConnectFailed, CodeCanceled:
		return KindTransport
	default:
		return KindGame
	}
}

// Retryable reports whether reissuing the same call can reasonably succeed
// without the caller changing anything else first.
func (c Code) Retryable() bool {
	switch c.Kind() {
	case KindTimeout, KindGame:
		return true
	default:
		return false
	}
}
