package pdgid

import (
	"fmt"
	"strconv"
)

// Kind is the result type of a query.
type Kind int

const (
	KindBool Kind = iota
	KindInt
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	}
	return "unknown"
}

// Value is the result of a query. Defined is false for undefined numeric
// quantities; predicates are always defined.
type Value struct {
	Kind    Kind
	Bool    bool
	Int     int
	Float   float64
	Defined bool
}

// Undefined is the sentinel rendering of a quantity with no value.
const Undefined = "undefined"

func (v Value) String() string {
	if !v.Defined {
		return Undefined
	}
	switch v.Kind {
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindInt:
		return strconv.Itoa(v.Int)
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	}
	return Undefined
}

// Interface returns the plain Go value, or nil when undefined.
func (v Value) Interface() any {
	if !v.Defined {
		return nil
	}
	switch v.Kind {
	case KindBool:
		return v.Bool
	case KindInt:
		return v.Int
	case KindFloat:
		return v.Float
	}
	return nil
}

// Query is a named read-only question about a code.
type Query struct {
	Name string
	Kind Kind
	Doc  string
	eval func(PDGID) Value
}

// Eval runs the query against p.
func (q Query) Eval(p PDGID) Value {
	return q.eval(p)
}

func boolQuery(name, doc string, fn func(PDGID) bool) Query {
	return Query{Name: name, Kind: KindBool, Doc: doc, eval: func(p PDGID) Value {
		return Value{Kind: KindBool, Bool: fn(p), Defined: true}
	}}
}

func intQuery(name, doc string, fn func(PDGID) (int, bool)) Query {
	return Query{Name: name, Kind: KindInt, Doc: doc, eval: func(p PDGID) Value {
		v, ok := fn(p)
		return Value{Kind: KindInt, Int: v, Defined: ok}
	}}
}

func floatQuery(name, doc string, fn func(PDGID) (float64, bool)) Query {
	return Query{Name: name, Kind: KindFloat, Doc: doc, eval: func(p PDGID) Value {
		v, ok := fn(p)
		return Value{Kind: KindFloat, Float: v, Defined: ok}
	}}
}

func total(fn func(PDGID) int) func(PDGID) (int, bool) {
	return func(p PDGID) (int, bool) { return fn(p), true }
}

// queryTable lists every query in alphabetical order.
var queryTable = []Query{
	intQuery("A", "mass number of a nucleus", PDGID.A),
	floatQuery("J", "total spin J", PDGID.J),
	intQuery("L", "meson orbital angular momentum L", PDGID.L),
	intQuery("S", "meson spin S", PDGID.S),
	intQuery("Z", "charge number of a nucleus", PDGID.Z),
	intQuery("abspid", "absolute value of the code", total(PDGID.Abs)),
	floatQuery("charge", "electric charge in units of e", PDGID.Charge),
	intQuery("extra_bits", "digits above the seven-digit core", total(PDGID.ExtraBits)),
	intQuery("fundamental_id", "fundamental particle id embedded in the code", total(PDGID.FundamentalID)),
	boolQuery("has_bottom", "contains a bottom quark", PDGID.HasBottom),
	boolQuery("has_charm", "contains a charm quark", PDGID.HasCharm),
	boolQuery("has_down", "contains a down quark", PDGID.HasDown),
	boolQuery("has_fundamental_anti", "fundamental particle has a distinct antiparticle", PDGID.HasFundamentalAnti),
	boolQuery("has_strange", "contains a strange quark", PDGID.HasStrange),
	boolQuery("has_top", "contains a top quark", PDGID.HasTop),
	boolQuery("has_up", "contains an up quark", PDGID.HasUp),
	boolQuery("is_Qball", "Q-ball or other exotic charge state", PDGID.IsQball),
	boolQuery("is_Rhadron", "R-hadron", PDGID.IsRhadron),
	boolQuery("is_SUSY", "fundamental SUSY partner", PDGID.IsSUSY),
	boolQuery("is_antiparticle", "negative code", PDGID.IsAntiparticle),
	boolQuery("is_baryon", "baryon", PDGID.IsBaryon),
	boolQuery("is_diquark", "diquark", PDGID.IsDiquark),
	boolQuery("is_dyon", "magnetic monopole or dyon", PDGID.IsDyon),
	boolQuery("is_excited_quark_or_lepton", "excited quark or lepton", PDGID.IsExcitedQuarkOrLepton),
	boolQuery("is_gauge_boson_or_higgs", "gauge boson or Higgs", PDGID.IsGaugeBosonOrHiggs),
	boolQuery("is_generator_specific", "generator-specific pseudoparticle", PDGID.IsGeneratorSpecific),
	boolQuery("is_hadron", "meson, baryon or diquark", PDGID.IsHadron),
	boolQuery("is_lepton", "lepton", PDGID.IsLepton),
	boolQuery("is_meson", "meson", PDGID.IsMeson),
	boolQuery("is_nucleus", "nucleus", PDGID.IsNucleus),
	boolQuery("is_pentaquark", "pentaquark", PDGID.IsPentaquark),
	boolQuery("is_quark", "quark", PDGID.IsQuark),
	boolQuery("is_sm_gauge_boson_or_higgs", "Standard Model gauge boson or Higgs", PDGID.IsSMGaugeBosonOrHiggs),
	boolQuery("is_sm_lepton", "Standard Model lepton", PDGID.IsSMLepton),
	boolQuery("is_sm_quark", "Standard Model quark", PDGID.IsSMQuark),
	boolQuery("is_special_particle", "special particle with a fixed code", PDGID.IsSpecialParticle),
	boolQuery("is_technicolor", "technicolor state", PDGID.IsTechnicolor),
	boolQuery("is_valid", "matches a numbering-scheme pattern", PDGID.IsValid),
	intQuery("j_spin", "total spin as 2J+1", PDGID.JSpin),
	intQuery("l_spin", "meson orbital angular momentum as 2L+1", PDGID.LSpin),
	intQuery("lambda", "strange quarks in a nucleus", PDGID.Lambda),
	intQuery("s_spin", "meson spin as 2S+1", PDGID.SSpin),
	intQuery("three_charge", "electric charge in units of e/3", PDGID.ThreeCharge),
}

var queryIndex = func() map[string]int {
	idx := make(map[string]int, len(queryTable))
	for i, q := range queryTable {
		idx[q.Name] = i
	}
	return idx
}()

// Queries returns a copy of the query table.
func Queries() []Query {
	out := make([]Query, len(queryTable))
	copy(out, queryTable)
	return out
}

// QueryNames returns the query names in table order.
func QueryNames() []string {
	names := make([]string, len(queryTable))
	for i, q := range queryTable {
		names[i] = q.Name
	}
	return names
}

// LookupQuery finds a query by name.
func LookupQuery(name string) (Query, error) {
	i, ok := queryIndex[name]
	if !ok {
		return Query{}, fmt.Errorf("%w: %s", ErrUnknownQuery, name)
	}
	return queryTable[i], nil
}

// Result pairs a query name with its value for one code.
type Result struct {
	Name  string
	Value Value
}

// Describe evaluates every query against p, in table order.
func (p PDGID) Describe() []Result {
	results := make([]Result, len(queryTable))
	for i, q := range queryTable {
		results[i] = Result{Name: q.Name, Value: q.eval(p)}
	}
	return results
}

// Categories returns the names of the true is_* category predicates,
// excluding is_valid and is_antiparticle.
func (p PDGID) Categories() []string {
	var cats []string
	for _, q := range queryTable {
		if q.Kind != KindBool || q.Name == "is_valid" || q.Name == "is_antiparticle" {
			continue
		}
		if len(q.Name) < 3 || q.Name[:3] != "is_" {
			continue
		}
		if q.eval(p).Bool {
			cats = append(cats, q.Name)
		}
	}
	return cats
}
