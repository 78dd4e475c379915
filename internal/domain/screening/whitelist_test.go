package screening

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWhitelist_IsExempt(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		numbers []string
		number  string
		exempt  bool
	}{
		{name: "disabled ignores members", enabled: false, numbers: []string{"+15551234567"}, number: "+15551234567", exempt: false},
		{name: "enabled member", enabled: true, numbers: []string{"+15551234567"}, number: "+15551234567", exempt: true},
		{name: "enabled non-member", enabled: true, numbers: []string{"+15551234567"}, number: "+15557654321", exempt: false},
		{name: "empty number", enabled: true, numbers: []string{"+15551234567"}, number: "", exempt: false},
		{name: "empty set", enabled: true, numbers: nil, number: "+15551234567", exempt: false},

		// Matching is byte-exact: formatting differences are distinct numbers
		{name: "formatted variant does not match", enabled: true, numbers: []string{"+15551234567"}, number: "555-123-4567", exempt: false},
		{name: "whitespace not stripped", enabled: true, numbers: []string{"+15551234567"}, number: " +15551234567", exempt: false},
		{name: "national form does not match e164", enabled: true, numbers: []string{"+15551234567"}, number: "15551234567", exempt: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wl := NewWhitelist(tt.enabled, tt.numbers)
			assert.Equal(t, tt.exempt, wl.IsExempt(tt.number))
		})
	}
}

func TestWhitelist_DisabledNeverExempts(t *testing.T) {
	wl := NewWhitelist(false, []string{"+1555", "+2666", ""})
	for _, n := range []string{"+1555", "+2666", "", "anything"} {
		assert.False(t, wl.IsExempt(n))
	}
}

func TestWhitelist_Numbers(t *testing.T) {
	wl := NewWhitelist(true, []string{"+2", "+1", "+3", "+1"})
	assert.Equal(t, []string{"+1", "+2", "+3"}, wl.Numbers())
	assert.Equal(t, 3, wl.Len())
}

func TestWhitelist_Contains(t *testing.T) {
	wl := NewWhitelist(false, []string{"+1555"})
	// Contains reports raw membership regardless of the enable flag
	assert.True(t, wl.Contains("+1555"))
	assert.False(t, wl.Contains("+1556"))
}
