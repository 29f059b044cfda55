package pdgid

// hadronSelector reports whether digit N allows an ordinary quark-digit
// hadron: 0 for established states, 9 for exotic and tentative ones.
func (p PDGID) hadronSelector() bool {
	n := p.Digit(N)
	return n == selectorHadron || n == selectorExotic
}

// reservedLiteral reports codes owned by a literal table that must not be
// re-read as a quark-digit pattern.
func (p PDGID) reservedLiteral() bool {
	return p.IsGeneratorSpecific() || p.IsSpecialParticle()
}

// fundamentalLow reports a fundamental id in the 1-100 band.
func (p PDGID) fundamentalLow() bool {
	fid := p.FundamentalID()
	return fid > 0 && fid <= 100
}

// IsMeson reports quark-antiquark states: Nq1 0, Nq2 and Nq3 set, odd Nj.
// K_L, K_S, the EvtGen B mixtures, reggeon, pomeron and odderon are
// mesons by code.
func (p PDGID) IsMeson() bool {
	if p.ExtraBits() > 0 {
		return false
	}
	aid := p.Abs()
	if mesonLiteralsAbs[aid] || mesonLiteralsSigned[int(p.id)] {
		return true
	}
	if aid <= 100 || p.fundamentalLow() || p.reservedLiteral() {
		return false
	}
	if !p.hadronSelector() {
		return false
	}
	nj, q1, q2, q3 := p.Digit(Nj), p.Digit(Nq1), p.Digit(Nq2), p.Digit(Nq3)
	if nj == 0 || q3 == 0 || q2 == 0 || q1 != 0 {
		return false
	}
	if nj%2 == 0 {
		return false
	}
	// a meson made of a quark and its own antiquark has no antiparticle code
	if q2 == q3 && p.id < 0 {
		return false
	}
	return true
}

// IsBaryon reports three-quark states with the heaviest quark in Nq1 and
// even Nj. Nq2 < Nq3 is legal: it marks the Lambda-like flavour
// antisymmetric combination (3122).
func (p PDGID) IsBaryon() bool {
	aid := p.Abs()
	// hydrogen and free-neutron nuclear codes
	if aid == 1000010010 || aid == 1000000010 {
		return true
	}
	if p.ExtraBits() > 0 {
		return false
	}
	if baryonLiterals[aid] {
		return true
	}
	if aid <= 100 || p.fundamentalLow() || p.reservedLiteral() {
		return false
	}
	if !p.hadronSelector() || p.IsPentaquark() {
		return false
	}
	nj, q1, q2, q3 := p.Digit(Nj), p.Digit(Nq1), p.Digit(Nq2), p.Digit(Nq3)
	if nj == 0 || q1 == 0 || q2 == 0 || q3 == 0 {
		return false
	}
	if nj%2 != 0 {
		return false
	}
	return q1 >= q2 && q1 >= q3
}

// IsDiquark reports four-digit two-quark codes qq0j with the heavier quark
// first. Generator PDF component codes (1901 etc.) share the layout and are
// excluded.
func (p PDGID) IsDiquark() bool {
	aid := p.Abs()
	if aid <= 100 || aid > 9999 {
		return false
	}
	if p.fundamentalLow() || p.reservedLiteral() {
		return false
	}
	nj, q1, q2, q3 := p.Digit(Nj), p.Digit(Nq1), p.Digit(Nq2), p.Digit(Nq3)
	if nj == 0 || q3 != 0 || q2 == 0 || q1 == 0 {
		return false
	}
	return q1 >= q2
}

// IsHadron reports mesons, baryons and diquarks.
func (p PDGID) IsHadron() bool {
	return p.IsMeson() || p.IsBaryon() || p.IsDiquark()
}

// IsPentaquark reports 9abcdej: a >= b >= c >= d quarks, e the antiquark,
// j the spin.
func (p PDGID) IsPentaquark() bool {
	if p.ExtraBits() > 0 || p.Digit(N) != selectorExotic {
		return false
	}
	nr, nl := p.Digit(Nr), p.Digit(Nl)
	q1, q2, q3, nj := p.Digit(Nq1), p.Digit(Nq2), p.Digit(Nq3), p.Digit(Nj)
	if nr == 0 || nr == 9 || nl == 0 || nj == 9 {
		return false
	}
	if q1 == 0 || q2 == 0 || q3 == 0 || nj == 0 {
		return false
	}
	return q2 <= q1 && q1 <= nl && nl <= nr
}

// IsValid reports whether the code matches any recognised numbering-scheme
// pattern.
func (p PDGID) IsValid() bool {
	if p.ExtraBits() > 0 {
		return p.IsNucleus() || p.IsQball()
	}
	switch {
	case p.IsQuark(), p.IsLepton(), p.IsGaugeBosonOrHiggs():
		return true
	case p.IsSpecialParticle(), p.IsGeneratorSpecific():
		return true
	case p.IsHadron(), p.IsPentaquark(), p.IsNucleus():
		return true
	case p.IsSUSY(), p.IsRhadron(), p.IsTechnicolor():
		return true
	case p.IsExcitedQuarkOrLepton(), p.IsDyon():
		return true
	}
	return false
}

// HasFundamentalAnti reports whether the fundamental particle behind the
// code has a distinct antiparticle. Generator codes 81-100 always do.
func (p PDGID) HasFundamentalAnti() bool {
	fid := p.FundamentalID()
	if fid >= 81 && fid <= 100 {
		return true
	}
	return fundamentalWithAnti[fid]
}

// HasDown, HasUp, HasStrange, HasCharm, HasBottom and HasTop report quark
// content of any valid composite code. Dyon charge digits are not quarks.
func (p PDGID) HasDown() bool    { return p.hasQuark(1) }
func (p PDGID) HasUp() bool      { return p.hasQuark(2) }
func (p PDGID) HasStrange() bool { return p.hasQuark(3) }
func (p PDGID) HasCharm() bool   { return p.hasQuark(4) }
func (p PDGID) HasBottom() bool  { return p.hasQuark(5) }
func (p PDGID) HasTop() bool     { return p.hasQuark(6) }

func (p PDGID) hasQuark(q int) bool {
	// nuclei carry extra bits, so this goes first
	if p.IsNucleus() {
		switch q {
		case 1, 2:
			return true
		case 3:
			return p.Digit(N8) > 0
		}
		return false
	}
	if p.ExtraBits() > 0 || p.fundamentalLow() {
		return false
	}
	if p.IsRhadron() {
		return p.rhadronHasQuark(q)
	}
	if p.IsPentaquark() {
		return p.Digit(Nr) == q || p.Digit(Nl) == q ||
			p.Digit(Nq1) == q || p.Digit(Nq2) == q || p.Digit(Nq3) == q
	}
	if !p.IsValid() || p.IsDyon() {
		return false
	}
	return p.Digit(Nq1) == q || p.Digit(Nq2) == q || p.Digit(Nq3) == q
}

// rhadronHasQuark scans Nr..Nq3 skipping the leading zeros and the first
// non-zero digit after them, which is the squark or gluino.
func (p PDGID) rhadronHasQuark(q int) bool {
	sparticle := true
	for loc := Nr; loc >= Nq3; loc-- {
		d := p.Digit(loc)
		if d == 0 {
			continue
		}
		if sparticle {
			sparticle = false
			continue
		}
		if d == q {
			return true
		}
	}
	return false
}
