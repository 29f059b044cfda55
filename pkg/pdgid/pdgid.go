package pdgid

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Supported range. MinInt32 is excluded so that every code can be negated.
const (
	MaxValue = math.MaxInt32
	MinValue = -math.MaxInt32
)

// PDGID is an immutable Particle Data Group identifier. The zero value is
// the (invalid) code 0.
type PDGID struct {
	id int32
}

// FromInt wraps x. It fails only when x is outside [MinValue, MaxValue];
// nonsensical but representable codes construct fine and report
// IsValid() == false.
func FromInt(x int64) (PDGID, error) {
	if x < MinValue || x > MaxValue {
		return PDGID{}, &RangeError{Value: x}
	}
	return PDGID{id: int32(x)}, nil
}

// MustFromInt is FromInt for literals; it panics on out-of-range input.
func MustFromInt(x int64) PDGID {
	p, err := FromInt(x)
	if err != nil {
		panic(err)
	}
	return p
}

// Parse reads a decimal code with an optional sign.
func Parse(s string) (PDGID, error) {
	trimmed := strings.TrimSpace(s)
	x, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return PDGID{}, fmt.Errorf("parse %q: %w", trimmed, ErrOutOfRange)
		}
		return PDGID{}, &SyntaxError{Input: s}
	}
	return FromInt(x)
}

// Int returns the plain integer value.
func (p PDGID) Int() int64 {
	return int64(p.id)
}

// Int32 returns the value in its storage width.
func (p PDGID) Int32() int32 {
	return p.id
}

// Negate returns the antiparticle code.
func (p PDGID) Negate() PDGID {
	return PDGID{id: -p.id}
}

// Equal reports whether both codes have the same integer value.
func (p PDGID) Equal(q PDGID) bool {
	return p.id == q.id
}

// Compare orders codes by integer value: -1, 0 or +1.
func (p PDGID) Compare(q PDGID) int {
	switch {
	case p.id < q.id:
		return -1
	case p.id > q.id:
		return 1
	}
	return 0
}

// String renders the code and flags invalid ones, e.g. "<PDGID: 11>" or
// "<PDGID: 999999 (is_valid==false)>".
func (p PDGID) String() string {
	if p.IsValid() {
		return fmt.Sprintf("<PDGID: %d>", p.id)
	}
	return fmt.Sprintf("<PDGID: %d (is_valid==false)>", p.id)
}

// MarshalText encodes the plain integer.
func (p PDGID) MarshalText() ([]byte, error) {
	return strconv.AppendInt(nil, int64(p.id), 10), nil
}

// UnmarshalText decodes the plain integer.
func (p *PDGID) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// MarshalJSON encodes the code as a JSON number.
func (p PDGID) MarshalJSON() ([]byte, error) {
	return p.MarshalText()
}

// UnmarshalJSON accepts a JSON number.
func (p *PDGID) UnmarshalJSON(b []byte) error {
	var x json.Number
	if err := json.Unmarshal(b, &x); err != nil {
		return &SyntaxError{Input: string(b)}
	}
	return p.UnmarshalText([]byte(x.String()))
}
