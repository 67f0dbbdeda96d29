package domain

import (
	"regexp"
	"sort"
	"strings"

	"github.com/louisbranch/wyvernbridge/internal/errors"
)

// usernamePattern is the account name shape the server accepts.
var usernamePattern = regexp.MustCompile(`^[a-z0-9_]{3,20}$`)

// chatChannels is the closed set of chat channel names.
var chatChannels = map[string]bool{
	"ooc":   true,
	"trade": true,
	"guild": true,
	"party": true,
}

// validateUsername rejects names the server would never accept, before any
// network activity happens.
func validateUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return errors.New(errors.CodeFieldRequired, "username is required")
	}
	if !usernamePattern.MatchString(username) {
		return errors.Newf(errors.CodeUsernameInvalid,
			"username %q must be 3-20 lowercase letters, digits, or underscores", username)
	}
	return nil
}

// validateChannel checks the channel name against the closed channel set.
func validateChannel(name string) error {
	if chatChannels[name] {
		return nil
	}
	return errors.Newf(errors.CodeChannelUnknown,
		"channel %q is not one of %s", name, strings.Join(channelNames(), ", ")).
		WithMetadata(map[string]string{"channel": name})
}

// requireString rejects empty required string fields.
func requireString(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.Newf(errors.CodeFieldRequired, "%s is required", field)
	}
	return nil
}

// validateAmount rejects non-positive gold amounts.
func validateAmount(amount int64) error {
	if amount <= 0 {
		return errors.Newf(errors.CodeAmountNotPositive, "amount must be positive, got %d", amount)
	}
	return nil
}

// validateOption rejects negative dialogue option indexes.
func validateOption(option int) error {
	if option < 0 {
		return errors.Newf(errors.CodeOptionNegative, "option must be non-negative, got %d", option)
	}
	return nil
}

func channelNames() []string {
	names := make([]string, 0, len(chatChannels))
	for name := range chatChannels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
