package elementary

import (
	"errors"
	"fmt"
	"strings"
)

// ErrRuleOutOfRange reports a rule code outside [0, 255].
var ErrRuleOutOfRange = errors.New("rule code out of range")

// Table maps the eight ancestor triples to the next cell state. Index 0 holds
// the outcome for (active, active, active) and index 7 the outcome for
// (inactive, inactive, inactive), mirroring the rule code's binary digits read
// most significant first.
type Table [8]bool

// Build derives the lookup table for a Wolfram rule code.
func Build(code int) (Table, error) {
	var t Table
	if code < 0 || code > 255 {
		return t, fmt.Errorf("%w: %d", ErrRuleOutOfRange, code)
	}
	for i := range t {
		t[i] = (code>>(7-i))&1 == 1
	}
	return t, nil
}

// Next returns the state produced by the ancestor triple (left, center, right).
func (t Table) Next(left, center, right bool) bool {
	return t[7-tripleIndex(left, center, right)]
}

// Code reassembles the rule code from the table.
func (t Table) Code() int {
	code := 0
	for _, on := range t {
		code <<= 1
		if on {
			code |= 1
		}
	}
	return code
}

// String renders the table as eight binary digits, most significant first.
func (t Table) String() string {
	var b strings.Builder
	for _, on := range t {
		if on {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

func tripleIndex(left, center, right bool) int {
	idx := 0
	if left {
		idx |= 4
	}
	if center {
		idx |= 2
	}
	if right {
		idx |= 1
	}
	return idx
}
