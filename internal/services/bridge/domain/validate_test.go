package domain

import (
	"testing"

	"github.com/louisbranch/wyvernbridge/internal/errors"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		code     errors.Code
	}{
		{name: "valid simple", username: "gandalf"},
		{name: "valid with digits and underscore", username: "mage_42"},
		{name: "valid minimum length", username: "abc"},
		{name: "valid maximum length", username: "abcdefghij0123456789"},
		{name: "empty", username: "", code: errors.CodeFieldRequired},
		{name: "whitespace only", username: "   ", code: errors.CodeFieldRequired},
		{name: "too short", username: "ab", code: errors.CodeUsernameInvalid},
		{name: "too long", username: "abcdefghij0123456789x", code: errors.CodeUsernameInvalid},
		{name: "uppercase", username: "Gandalf", code: errors.CodeUsernameInvalid},
		{name: "spaces", username: "gan dalf", code: errors.CodeUsernameInvalid},
		{name: "punctuation", username: "gandalf!", code: errors.CodeUsernameInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateUsername(tt.username)
			if tt.code == "" {
				if err != nil {
					t.Fatalf("validateUsername(%q) = %v, want nil", tt.username, err)
				}
				return
			}
			if err == nil {
				t.Fatalf("validateUsername(%q) = nil, want code %s", tt.username, tt.code)
			}
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("code = %s, want %s", got, tt.code)
			}
		})
	}
}

func TestValidateChannel(t *testing.T) {
	for _, name := range []string{"ooc", "trade", "guild", "party"} {
		if err := validateChannel(name); err != nil {
			t.Errorf("validateChannel(%q) = %v, want nil", name, err)
		}
	}

	err := validateChannel("global")
	if err == nil {
		t.Fatal("validateChannel(\"global\") = nil, want error")
	}
	if got := errors.GetCode(err); got != errors.CodeChannelUnknown {
		t.Errorf("code = %s, want %s", got, errors.CodeChannelUnknown)
	}
	meta := errors.GetMetadata(err)
	if meta["channel"] != "global" {
		t.Errorf("metadata channel = %q, want %q", meta["channel"], "global")
	}
}

func TestRequireString(t *testing.T) {
	if err := requireString("target", "goblin"); err != nil {
		t.Fatalf("requireString = %v, want nil", err)
	}

	err := requireString("target", "  ")
	if err == nil {
		t.Fatal("requireString with blank value = nil, want error")
	}
	if got := errors.GetCode(err); got != errors.CodeFieldRequired {
		t.Errorf("code = %s, want %s", got, errors.CodeFieldRequired)
	}
}

func TestValidateAmount(t *testing.T) {
	if err := validateAmount(100); err != nil {
		t.Fatalf("validateAmount(100) = %v, want nil", err)
	}
	for _, amount := range []int64{0, -1, -500} {
		err := validateAmount(amount)
		if err == nil {
			t.Fatalf("validateAmount(%d) = nil, want error", amount)
		}
		if got := errors.GetCode(err); got != errors.CodeAmountNotPositive {
			t.Errorf("code = %s, want %s", got, errors.CodeAmountNotPositive)
		}
	}
}

func TestValidateOption(t *testing.T) {
	for _, option := range []int{0, 1, 7} {
		if err := validateOption(option); err != nil {
			t.Errorf("validateOption(%d) = %v, want nil", option, err)
		}
	}

	err := validateOption(-1)
	if err == nil {
		t.Fatal("validateOption(-1) = nil, want error")
	}
	if got := errors.GetCode(err); got != errors.CodeOptionNegative {
		t.Errorf("code = %s, want %s", got, errors.CodeOptionNegative)
	}
}
