package pdgid

// codeRange is an inclusive interval of absolute code values.
type codeRange struct {
	lo, hi int
}

func (r codeRange) contains(aid int) bool {
	return aid >= r.lo && aid <= r.hi
}

func inAny(aid int, ranges []codeRange) bool {
	for _, r := range ranges {
		if r.contains(aid) {
			return true
		}
	}
	return false
}

// Numbering scheme, item 2: quarks d u s c b t and the fourth generation b' t'.
var (
	quarkRange   = codeRange{1, 8}
	smQuarkRange = codeRange{1, 6}
)

// Item 2: leptons e nu_e mu nu_mu tau nu_tau and the fourth generation tau' nu_tau'.
var (
	leptonRange   = codeRange{11, 18}
	smLeptonRange = codeRange{11, 16}
)

// Pythia heavy (Majorana) neutrinos and left-right symmetric leptons
// 99000nj, reported as leptons: 9900011-9900018.
var generatorLeptonRange = codeRange{9900011, 9900018}

// Item 3: gauge bosons and Higgs, 21-30 Standard Model, 31-40 extensions.
// Code 9 is the alternate gluon id used inside glueball codes.
var (
	gaugeBosonOrHiggsRange   = codeRange{21, 40}
	smGaugeBosonOrHiggsRange = codeRange{21, 25}
)

const (
	gluonAlias = 9
	wBoson     = 24
)

// Item 11: generator-specific pseudoparticles and concepts (81-100), and the
// additional parton distribution components 1901-1930, 2901-2930, 3901-3930.
var generatorSpecificRanges = []codeRange{
	{81, 100},
	{1901, 1930},
	{2901, 2930},
	{3901, 3930},
}

// Item 12: special particles with fixed codes. Only the leptoquark has a
// distinct antiparticle; the others exist with a positive sign only.
var specialParticles = map[int]specialCode{
	39:   {name: "graviton"},
	41:   {name: "R0"},
	42:   {name: "leptoquark", hasAnti: true},
	110:  {name: "reggeon"},
	990:  {name: "pomeron"},
	9990: {name: "odderon"},
}

type specialCode struct {
	name    string
	hasAnti bool
}

func lookupSpecial(id int) (specialCode, bool) {
	aid := id
	if aid < 0 {
		aid = -aid
	}
	sc, ok := specialParticles[aid]
	if !ok || (id < 0 && !sc.hasAnti) {
		return specialCode{}, false
	}
	return sc, true
}

// Items 7 and 10: meson codes that do not follow the quark-digit pattern.
// K_L, K_S and the obsolete 210 are keyed by absolute value, as are the
// EvtGen B_L/B_H mixtures. Reggeon, pomeron and odderon are positive only.
var (
	mesonLiteralsAbs = map[int]bool{
		130: true, 210: true, 310: true,
		150: true, 350: true, 510: true, 530: true,
	}
	mesonLiteralsSigned = map[int]bool{
		110: true, 990: true, 9990: true,
	}
)

// Old diffractive proton and neutron codes.
var baryonLiterals = map[int]bool{
	2110: true,
	2210: true,
}

// Item 16: nuclear codes 10LZZZAAAI. The free proton and neutron double as
// hydrogen and neutron "nuclei".
const (
	nucleusN10 = 1
	nucleusN9  = 0
	proton     = 2212
	neutron    = 2112
)

// Scheme selector digits (digit N).
const (
	selectorHadron      = 0
	selectorSUSYLeft    = 1
	selectorSUSYRight   = 2
	selectorTechnicolor = 3
	selectorExcited     = 4
	selectorDyon        = 4
	selectorExotic      = 9
)

// Item 14: Q-balls 100xxxx0, charge xxxx in units of e/10.
const qballExtraBits = 1

// Item 15: magnetic monopoles and dyons 411xyz0 / 412xyz0.
const (
	dyonSameSign     = 1
	dyonOppositeSign = 2
)

// chargeTable holds 3*charge for fundamental ids 1-100 (index id-1).
var chargeTable = [100]int{
	-1, 2, -1, 2, -1, 2, -1, 2, 0, 0, // quarks, gluon alias
	-3, 0, -3, 0, -3, 0, -3, 0, 0, 0, // leptons
	0, 0, 0, 3, 0, 0, 0, 0, 0, 0, // g gamma Z W h
	0, 0, 0, 3, 0, 0, 3, 0, 0, 0, // Z' Z'' W' H0 A0 H+ G
	0, -1, 0, 0, 0, 0, 0, 0, 0, 0, // R0 leptoquark
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// SUSY codes that are neutral whatever chargeTable gives their fundamental
// id: the partners of the fourth-generation leptons, the W' and ids 52-54.
var susyNeutral = map[int]bool{
	1000017: true, 1000018: true, 1000034: true,
	1000052: true, 1000053: true, 1000054: true,
}

// Fundamental ids whose antiparticle is a distinct code: quarks, charged
// and neutral leptons, W, W', H+, leptoquark.
var fundamentalWithAnti = map[int]bool{
	1: true, 2: true, 3: true, 4: true, 5: true, 6: true, 7: true, 8: true,
	11: true, 12: true, 13: true, 14: true, 15: true, 16: true, 17: true, 18: true,
	24: true, 34: true, 37: true, 42: true,
}

func quarkCharge(q int) int {
	if q < 1 || q > len(chargeTable) {
		return 0
	}
	return chargeTable[q-1]
}
