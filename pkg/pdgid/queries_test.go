package pdgid

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryTableOrder(t *testing.T) {
	names := QueryNames()
	assert.Len(t, names, 43)
	assert.True(t, sort.StringsAreSorted(names))

	seen := make(map[string]bool)
	for _, n := range names {
		assert.False(t, seen[n], "duplicate query %s", n)
		seen[n] = true
	}
}

func TestQueriesReturnsCopy(t *testing.T) {
	qs := Queries()
	qs[0].Name = "mutated"
	assert.Equal(t, "A", QueryNames()[0])
}

func TestLookupQuery(t *testing.T) {
	q, err := LookupQuery("is_lepton")
	require.NoError(t, err)
	assert.Equal(t, KindBool, q.Kind)
	assert.Equal(t, "true", q.Eval(MustFromInt(11)).String())

	q, err = LookupQuery("three_charge")
	require.NoError(t, err)
	assert.Equal(t, KindInt, q.Kind)
	assert.Equal(t, "-3", q.Eval(MustFromInt(11)).String())
	assert.Equal(t, Undefined, q.Eval(MustFromInt(999999)).String())

	_, err = LookupQuery("is_muon")
	assert.ErrorIs(t, err, ErrUnknownQuery)
}

func TestDescribe(t *testing.T) {
	results := MustFromInt(11).Describe()
	require.Len(t, results, len(QueryNames()))

	byName := make(map[string]Value)
	for _, r := range results {
		byName[r.Name] = r.Value
	}

	assert.Equal(t, "true", byName["is_lepton"].String())
	assert.Equal(t, "false", byName["is_hadron"].String())
	assert.Equal(t, "-3", byName["three_charge"].String())
	assert.Equal(t, "-1", byName["charge"].String())
	assert.Equal(t, "0.5", byName["J"].String())
	assert.Equal(t, Undefined, byName["A"].String())
	assert.Nil(t, byName["Z"].Interface())
	assert.Equal(t, 11, byName["abspid"].Interface())
}

func TestCategories(t *testing.T) {
	assert.Equal(t, []string{"is_lepton", "is_sm_lepton"}, MustFromInt(11).Categories())
	assert.Equal(t, []string{"is_baryon", "is_hadron", "is_nucleus"}, MustFromInt(2212).Categories())
	assert.Equal(t, []string{"is_hadron", "is_meson"}, MustFromInt(111).Categories())
	assert.Equal(t, []string{"is_nucleus"}, MustFromInt(1000060120).Categories())
	assert.Nil(t, MustFromInt(999999).Categories())
}

func TestValueString(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"bool", Value{Kind: KindBool, Bool: true, Defined: true}, "true"},
		{"int", Value{Kind: KindInt, Int: -3, Defined: true}, "-3"},
		{"zero int", Value{Kind: KindInt, Defined: true}, "0"},
		{"float", Value{Kind: KindFloat, Float: 1.5, Defined: true}, "1.5"},
		{"undefined int", Value{Kind: KindInt}, Undefined},
		{"undefined float", Value{Kind: KindFloat}, Undefined},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.String())
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "bool", KindBool.String())
	assert.Equal(t, "int", KindInt.String())
	assert.Equal(t, "float", KindFloat.String())
	assert.Equal(t, "unknown", Kind(9).String())
}
