package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorString(t *testing.T) {
	err := New(CodeNotConnected, "call connect first")
	if got := err.Error(); got != "NOT_CONNECTED: call connect first" {
		t.Fatalf("unexpected error string %q", got)
	}

	bare := New(CodeTimeout, "")
	if got := bare.Error(); got != "TIMEOUT" {
		t.Fatalf("unexpected bare error string %q", got)
	}
}

func TestGetCodeWrapped(t *testing.T) {
	inner := Newf(CodeInvalidToken, "token rejected for %q", "zara")
	wrapped := fmt.Errorf("connect: %w", inner)

	if got := GetCode(wrapped); got != CodeInvalidToken {
		t.Fatalf("expected INVALID_TOKEN, got %s", got)
	}
	if !IsCode(wrapped, CodeInvalidToken) {
		t.Fatal("expected IsCode to match through wrapping")
	}
}

func TestGetCodeUnknown(t *testing.T) {
	if got := GetCode(errors.New("plain")); got != CodeUnknown {
		t.Fatalf("expected UNKNOWN, got %s", got)
	}
	if got := GetCode(nil); got != CodeUnknown {
		t.Fatalf("expected UNKNOWN for nil, got %s", got)
	}
}

func TestKindClassification(t *testing.T) {
	cases := []struct {
		code Code
		kind Kind
	}{
		{CodeUsernameInvalid, KindValidation},
		{CodeFieldRequired, KindValidation},
		{CodeNotConnected, KindNotConnected},
		{CodeAccountExists, KindAuth},
		{CodeInvalidToken, KindAuth},
		{CodeTimeout, KindTimeout},
		{CodeConnectionLost, KindTransport},
		{CodeConnectFailed, KindTransport},
		{Code("INSUFFICIENT_FUNDS"), KindGame},
		{Code("NOT_ENOUGH_BALANCE"), KindGame},
	}
	for _, tc := range cases {
		if got := tc.code.Kind(); got != tc.kind {
			t.Fatalf("code %s: expected kind %s, got %s", tc.code, tc.kind, got)
		}
	}
}

func TestRetryable(t *testing.T) {
	if CodeInvalidToken.Retryable() {
		t.Fatal("auth errors must not be retryable")
	}
	if CodeConnectionLost.Retryable() {
		t.Fatal("transport errors must not be retryable without a reconnect")
	}
	if !CodeTimeout.Retryable() {
		t.Fatal("timeouts should be retryable")
	}
	if !Code("ACTION_PACING").Retryable() {
		t.Fatal("game rejections should be retryable")
	}
}

func TestMetadata(t *testing.T) {
	err := New(CodeChannelUnknown, "no such channel").
		WithMetadata(map[string]string{"channel": "lfg"})

	md := GetMetadata(fmt.Errorf("validate: %w", err))
	if md["channel"] != "lfg" {
		t.Fatalf("expected metadata channel=lfg, got %v", md)
	}
	if GetMetadata(errors.New("plain")) != nil {
		t.Fatal("expected nil metadata for non-bridge error")
	}
}
