package screening

import "sort"

// Whitelist is the set of phone numbers exempt from auto-response, together
// with its enable flag. Membership is byte-exact string comparison: no
// country-code stripping, no formatting or whitespace normalization. Callers
// own consistent formatting at write- and match-time.
type Whitelist struct {
	enabled bool
	numbers map[string]struct{}
}

// NewWhitelist creates a whitelist from an enable flag and a number set.
// Duplicate entries collapse; order is not retained.
func NewWhitelist(enabled bool, numbers []string) Whitelist {
	set := make(map[string]struct{}, len(numbers))
	for _, n := range numbers {
		set[n] = struct{}{}
	}
	return Whitelist{enabled: enabled, numbers: set}
}

// Enabled reports whether whitelist matching is active
func (w Whitelist) Enabled() bool {
	return w.enabled
}

// IsExempt reports whether number is exempt from auto-response. Always false
// when the whitelist is disabled or the number is empty (caller withheld or
// the network did not deliver one).
func (w Whitelist) IsExempt(number string) bool {
	if !w.enabled || number == "" {
		return false
	}
	_, ok := w.numbers[number]
	return ok
}

// Contains reports raw set membership, ignoring the enable flag
func (w Whitelist) Contains(number string) bool {
	_, ok := w.numbers[number]
	return ok
}

// Numbers returns the member numbers in sorted order
func (w Whitelist) Numbers() []string {
	out := make([]string, 0, len(w.numbers))
	for n := range w.numbers {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of whitelisted entries
func (w Whitelist) Len() int {
	return len(w.numbers)
}
