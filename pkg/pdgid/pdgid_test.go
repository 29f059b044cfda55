package pdgid

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromInt(t *testing.T) {
	tests := []struct {
		name    string
		in      int64
		wantErr bool
	}{
		{"zero", 0, false},
		{"electron", 11, false},
		{"nucleus", 1000822080, false},
		{"max", MaxValue, false},
		{"min", MinValue, false},
		{"above max", MaxValue + 1, true},
		{"min int32", MinValue - 1, true},
		{"huge", 1 << 40, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := FromInt(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsOutOfRange(err))
				var rangeErr *RangeError
				require.ErrorAs(t, err, &rangeErr)
				assert.Equal(t, tt.in, rangeErr.Value)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.in, p.Int())
		})
	}
}

func TestFromIntNeverFailsBelowBillion(t *testing.T) {
	for _, x := range []int64{-999999999, -1000060120 / 10, -1, 0, 1, 123456789, 999999999} {
		_, err := FromInt(x)
		assert.NoError(t, err, "x=%d", x)
	}
}

func TestMustFromIntPanics(t *testing.T) {
	assert.Panics(t, func() { MustFromInt(MaxValue + 1) })
	assert.NotPanics(t, func() { MustFromInt(-11) })
}

func TestParse(t *testing.T) {
	p, err := Parse(" 211 ")
	require.NoError(t, err)
	assert.Equal(t, int64(211), p.Int())

	p, err = Parse("-2212")
	require.NoError(t, err)
	assert.Equal(t, int64(-2212), p.Int())

	_, err = Parse("pi+")
	assert.True(t, IsSyntax(err))

	_, err = Parse("")
	assert.True(t, IsSyntax(err))

	_, err = Parse("3000000000")
	assert.True(t, IsOutOfRange(err))

	_, err = Parse("99999999999999999999999")
	assert.True(t, IsOutOfRange(err))
}

func TestNegateInvolution(t *testing.T) {
	for _, x := range []int64{0, 11, -11, 2212, MaxValue, MinValue, 1000060120} {
		p := MustFromInt(x)
		assert.True(t, p.Negate().Negate().Equal(p), "x=%d", x)
		assert.Equal(t, -x, p.Negate().Int())
	}
}

func TestCompare(t *testing.T) {
	a, b := MustFromInt(-11), MustFromInt(11)
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(b.Negate()))
	assert.True(t, a.Equal(b.Negate()))
	assert.False(t, a.Equal(b))
}

func TestString(t *testing.T) {
	assert.Equal(t, "<PDGID: 11>", MustFromInt(11).String())
	assert.Equal(t, "<PDGID: -211>", MustFromInt(-211).String())
	assert.Equal(t, "<PDGID: 999999 (is_valid==false)>", MustFromInt(999999).String())
	assert.Equal(t, "<PDGID: 0 (is_valid==false)>", PDGID{}.String())
}

func TestJSONRoundTrip(t *testing.T) {
	type particle struct {
		ID PDGID `json:"id"`
	}

	data, err := json.Marshal(particle{ID: MustFromInt(-13)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id": -13}`, string(data))

	var got particle
	require.NoError(t, json.Unmarshal([]byte(`{"id": 1000060120}`), &got))
	assert.Equal(t, int64(1000060120), got.ID.Int())

	err = json.Unmarshal([]byte(`{"id": 5000000000}`), &got)
	assert.True(t, IsOutOfRange(err))
}

func TestTextRoundTrip(t *testing.T) {
	p := MustFromInt(-2212)
	b, err := p.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "-2212", string(b))

	var q PDGID
	require.NoError(t, q.UnmarshalText(b))
	assert.True(t, q.Equal(p))
}
