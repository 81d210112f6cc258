package notifications

import (
	"context"
	"strconv"
	"strings"
	"time"
)

// ChannelFlags enables or disables each channel for one event category.
type ChannelFlags struct {
	Email bool `bson:"email" json:"email"`
	SMS   bool `bson:"sms" json:"sms"`
	Push  bool `bson:"push" json:"push"`
}

func (f ChannelFlags) enabled(ch Channel) bool {
	switch ch {
	case ChannelEmail:
		return f.Email
	case ChannelSMS:
		return f.SMS
	case ChannelPush:
		return f.Push
	}
	return false
}

// Preferences is a user's full notification preference record with defaults
// already merged in. Resolution functions take the complete record; there
// are no per-call fallback chains.
type Preferences struct {
	Appointment ChannelFlags `bson:"appointment" json:"appointment"`
	Payment     ChannelFlags `bson:"payment" json:"payment"`
	Review      ChannelFlags `bson:"review" json:"review"`

	// Quiet hours in the user's local time, "HH:MM". The window may span
	// midnight ("22:00"-"07:00"). Both empty disables the feature.
	QuietStart string `bson:"quiet_start,omitempty" json:"quiet_start,omitempty"`
	QuietEnd   string `bson:"quiet_end,omitempty" json:"quiet_end,omitempty"`
}

// DefaultPreferences enables every channel for appointments and payments
// and email only for review requests, with no quiet hours.
func DefaultPreferences() Preferences {
	all := ChannelFlags{Email: true, SMS: true, Push: true}
	return Preferences{
		Appointment: all,
		Payment:     all,
		Review:      ChannelFlags{Email: true},
	}
}

// flagsFor maps an event type to its preference category.
func (p Preferences) flagsFor(eventType EventType) ChannelFlags {
	switch eventType {
	case EventPaymentSucceeded, EventPaymentFailed:
		return p.Payment
	case EventReviewRequest:
		return p.Review
	default:
		return p.Appointment
	}
}

// ResolveChannels intersects the event's requested channels with the
// user's per-type flags and returns the definite channel set. An empty
// requested list means every enabled channel. The result preserves
// AllChannels order and never contains duplicates.
func ResolveChannels(prefs Preferences, eventType EventType, requested []Channel) []Channel {
	flags := prefs.flagsFor(eventType)

	wanted := make(map[Channel]bool, len(requested))
	for _, ch := range requested {
		wanted[ch] = true
	}

	var resolved []Channel
	for _, ch := range AllChannels {
		if !flags.enabled(ch) {
			continue
		}
		if len(requested) > 0 && !wanted[ch] {
			continue
		}
		resolved = append(resolved, ch)
	}
	return resolved
}

// InQuietHours reports whether t falls inside the preference's quiet
// window. Windows spanning midnight compare on minutes-of-day with
// wraparound; malformed or absent bounds disable the window.
func InQuietHours(prefs Preferences, t time.Time) bool {
	start, okStart := minutesOfDay(prefs.QuietStart)
	end, okEnd := minutesOfDay(prefs.QuietEnd)
	if !okStart || !okEnd || start == end {
		return false
	}

	now := t.Hour()*60 + t.Minute()
	if start < end {
		return now >= start && now < end
	}
	// Spans midnight, e.g. 22:00-07:00.
	return now >= start || now < end
}

func minutesOfDay(hhmm string) (int, bool) {
	parts := strings.SplitN(strings.TrimSpace(hhmm), ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// PreferencesSource supplies the preference record for a user. Missing
// users must resolve to DefaultPreferences, not an error.
type PreferencesSource interface {
	Preferences(ctx context.Context, userID string) (Preferences, error)
}

// StaticPreferences is a PreferencesSource backed by a fixed map.
// Suitable for tests and single-tenant setups.
type StaticPreferences map[string]Preferences

func (s StaticPreferences) Preferences(ctx context.Context, userID string) (Preferences, error) {
	if prefs, ok := s[userID]; ok {
		return prefs, nil
	}
	return DefaultPreferences(), nil
}
