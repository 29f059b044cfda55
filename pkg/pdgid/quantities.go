package pdgid

// ThreeCharge returns the electric charge in units of e/3. ok is false for
// invalid codes, generator-specific codes, and Q-balls whose charge is not
// a multiple of e/3.
func (p PDGID) ThreeCharge() (int, bool) {
	if !p.IsValid() {
		return 0, false
	}
	if p.IsNucleus() {
		z, _ := p.Z()
		return 3 * z, true
	}
	if p.IsGeneratorSpecific() {
		return 0, false
	}

	aid := p.Abs()
	q1, q2, q3 := p.Digit(Nq1), p.Digit(Nq2), p.Digit(Nq3)
	var charge int
	switch {
	case p.IsQball():
		tenths := p.qballTenths()
		if (3*tenths)%10 != 0 {
			return 0, false
		}
		charge = 3 * tenths / 10
	case p.IsDyon():
		charge = 3 * ((aid / 10) % 1000)
		if p.Digit(Nl) == dyonOppositeSign {
			charge = -charge
		}
	case p.IsSUSY() && susyNeutral[aid]:
		charge = 0
	case p.fundamentalLow():
		charge = chargeTable[p.FundamentalID()-1]
	case mesonLiteralsAbs[aid] || mesonLiteralsSigned[int(p.id)]:
		charge = 0
	case p.IsPentaquark():
		charge = quarkCharge(p.Digit(Nr)) + quarkCharge(p.Digit(Nl)) +
			quarkCharge(q1) + quarkCharge(q2) - quarkCharge(q3)
	case q1 == 0 || (p.IsRhadron() && q1 == 9):
		// quark-antiquark: for down-type Nq2 the particle holds its antiquark
		if q2 == 3 || q2 == 5 {
			charge = quarkCharge(q3) - quarkCharge(q2)
		} else {
			charge = quarkCharge(q2) - quarkCharge(q3)
		}
	case q3 == 0:
		charge = quarkCharge(q1) + quarkCharge(q2)
	default:
		charge = quarkCharge(q1) + quarkCharge(q2) + quarkCharge(q3)
	}
	if p.id < 0 {
		charge = -charge
	}
	return charge, true
}

// Charge returns the electric charge in units of e.
func (p PDGID) Charge() (float64, bool) {
	if p.IsQball() {
		tenths := p.qballTenths()
		if p.id < 0 {
			tenths = -tenths
		}
		return float64(tenths) / 10, true
	}
	c, ok := p.ThreeCharge()
	if !ok {
		return 0, false
	}
	return float64(c) / 3, true
}

func (p PDGID) qballTenths() int {
	return (p.Abs() / 10) % 10000
}

// JSpin returns the total spin as 2J+1.
func (p PDGID) JSpin() (int, bool) {
	if !p.IsValid() || p.IsGeneratorSpecific() || p.IsDyon() {
		return 0, false
	}
	aid := p.Abs()
	switch {
	case aid == proton || aid == neutron:
		return 2, true
	case aid == 1000010010 || aid == 1000000010:
		return 2, true
	case p.IsQball():
		return 1, true
	case p.ExtraBits() > 0:
		return 0, false
	case mesonLiteralsAbs[aid]:
		return 1, true
	case aid <= 100:
		js, ok := fundamentalJSpin[aid]
		return js, ok
	case p.IsExcitedQuarkOrLepton():
		return 2, true
	case p.FundamentalID() > 0:
		// SUSY and technicolor partners carry no spin digit of their own
		return 0, false
	}
	nj := p.Digit(Nj)
	if nj == 0 {
		return 0, false
	}
	return nj, true
}

// fundamentalJSpin holds 2J+1 for the fundamental codes whose spin is fixed.
var fundamentalJSpin = map[int]int{
	1: 2, 2: 2, 3: 2, 4: 2, 5: 2, 6: 2, 7: 2, 8: 2,
	9: 3,
	11: 2, 12: 2, 13: 2, 14: 2, 15: 2, 16: 2, 17: 2, 18: 2,
	21: 3, 22: 3, 23: 3, 24: 3, 25: 1,
	32: 3, 33: 3, 34: 3, 35: 1, 36: 1, 37: 1,
	39: 5,
}

// J returns the total spin.
func (p PDGID) J() (float64, bool) {
	js, ok := p.JSpin()
	if !ok {
		return 0, false
	}
	return float64(js-1) / 2, true
}

type mesonSpinKey struct {
	nl, nj int
}

// mesonSpins maps (Nl, Nj) of an established meson to its spin S and orbital
// angular momentum L.
var mesonSpins = map[mesonSpinKey]struct{ s, l int }{
	{0, 1}: {0, 0},
	{0, 3}: {1, 0},
	{0, 5}: {1, 1},
	{0, 7}: {1, 2},
	{0, 9}: {1, 3},
	{1, 1}: {1, 1},
	{1, 3}: {0, 1},
	{1, 5}: {0, 2},
	{1, 7}: {0, 3},
	{1, 9}: {0, 4},
	{2, 3}: {1, 1},
	{2, 5}: {1, 2},
	{2, 7}: {1, 3},
	{2, 9}: {1, 4},
	{3, 3}: {1, 2},
	{3, 5}: {1, 3},
	{3, 7}: {1, 4},
	{3, 9}: {1, 5},
}

// mesonSL returns S and L for mesons. Exotic and tentative 9xxxxxx codes
// have no assignment.
func (p PDGID) mesonSL() (s, l int, ok bool) {
	if !p.IsMeson() {
		return 0, 0, false
	}
	if mesonLiteralsAbs[p.Abs()] {
		return 0, 0, true
	}
	if p.Digit(N) == selectorExotic {
		return 0, 0, false
	}
	v, ok := mesonSpins[mesonSpinKey{p.Digit(Nl), p.Digit(Nj)}]
	return v.s, v.l, ok
}

// SSpin returns the meson spin as 2S+1.
func (p PDGID) SSpin() (int, bool) {
	s, _, ok := p.mesonSL()
	return 2*s + 1, ok
}

// S returns the meson spin S.
func (p PDGID) S() (int, bool) {
	s, _, ok := p.mesonSL()
	return s, ok
}

// LSpin returns the meson orbital angular momentum as 2L+1.
func (p PDGID) LSpin() (int, bool) {
	_, l, ok := p.mesonSL()
	return 2*l + 1, ok
}

// L returns the meson orbital angular momentum L.
func (p PDGID) L() (int, bool) {
	_, l, ok := p.mesonSL()
	return l, ok
}

// A returns the mass number of a nucleus.
func (p PDGID) A() (int, bool) {
	if !p.IsNucleus() {
		return 0, false
	}
	if aid := p.Abs(); aid == proton || aid == neutron {
		return 1, true
	}
	a, _, _, _ := p.nuclearFields()
	return a, true
}

// Z returns the signed charge number of a nucleus; antinuclei are negative.
func (p PDGID) Z() (int, bool) {
	if !p.IsNucleus() {
		return 0, false
	}
	switch p.Abs() {
	case proton:
		if p.id < 0 {
			return -1, true
		}
		return 1, true
	case neutron:
		return 0, true
	}
	_, z, _, _ := p.nuclearFields()
	return z, true
}

// Lambda returns the number of strange quarks of a (hyper)nucleus.
func (p PDGID) Lambda() (int, bool) {
	if !p.IsNucleus() {
		return 0, false
	}
	if aid := p.Abs(); aid == proton || aid == neutron {
		return 0, true
	}
	_, _, lambda, _ := p.nuclearFields()
	return lambda, true
}
