package pdgid

// IsAntiparticle reports whether the code carries a negative sign. It says
// nothing about whether the antiparticle is distinct; see HasFundamentalAnti.
func (p PDGID) IsAntiparticle() bool {
	return p.id < 0
}

// IsQuark reports codes 1-8: the six quarks plus the fourth-generation b' and t'.
func (p PDGID) IsQuark() bool {
	return quarkRange.contains(p.Abs())
}

// IsSMQuark reports the six Standard Model quarks.
func (p PDGID) IsSMQuark() bool {
	return smQuarkRange.contains(p.Abs())
}

// IsLepton reports codes 11-18 and the generator heavy-lepton band
// 9900011-9900018. SUSY sleptons and excited leptons are not leptons.
func (p PDGID) IsLepton() bool {
	aid := p.Abs()
	return leptonRange.contains(aid) || generatorLeptonRange.contains(aid)
}

// IsSMLepton reports the six Standard Model leptons.
func (p PDGID) IsSMLepton() bool {
	return smLeptonRange.contains(p.Abs())
}

// IsGaugeBosonOrHiggs reports codes 21-40 and the glueball gluon alias 9.
func (p PDGID) IsGaugeBosonOrHiggs() bool {
	if p.id == gluonAlias {
		return true
	}
	return gaugeBosonOrHiggsRange.contains(p.Abs())
}

// IsSMGaugeBosonOrHiggs reports g, gamma, Z, W and h. Only the W has a
// distinct antiparticle, so the others must carry a positive sign.
func (p PDGID) IsSMGaugeBosonOrHiggs() bool {
	if p.Abs() == wBoson {
		return true
	}
	return smGaugeBosonOrHiggsRange.contains(int(p.id))
}

// IsGeneratorSpecific reports codes reserved for generator pseudoparticles
// and additional parton distribution components.
func (p PDGID) IsGeneratorSpecific() bool {
	return inAny(p.Abs(), generatorSpecificRanges)
}

// IsSpecialParticle reports the fixed special codes: graviton, R0,
// leptoquark, reggeon, pomeron and odderon.
func (p PDGID) IsSpecialParticle() bool {
	_, ok := lookupSpecial(int(p.id))
	return ok
}

// IsNucleus reports nuclear codes 10LZZZAAAI with A >= |Z|, A >= 1 and at
// most A strange quarks. The proton and neutron are the hydrogen and
// free-neutron nuclei.
func (p PDGID) IsNucleus() bool {
	aid := p.Abs()
	if aid == proton || aid == neutron {
		return true
	}
	a, z, lambda, ok := p.nuclearFields()
	if !ok {
		return false
	}
	if z < 0 {
		z = -z
	}
	return a >= 1 && a >= z && lambda <= a
}

// nuclearFields decodes A, signed Z and the strange-quark count from the
// 10LZZZAAAI layout without checking their consistency.
func (p PDGID) nuclearFields() (a, z, lambda int, ok bool) {
	if p.Digit(N10) != nucleusN10 || p.Digit(N9) != nucleusN9 {
		return 0, 0, 0, false
	}
	aid := p.Abs()
	a = (aid / 10) % 1000
	z = (aid / 10000) % 1000
	if p.id < 0 {
		z = -z
	}
	return a, z, p.Digit(N8), true
}

// IsSUSY reports fundamental SUSY partners: selector digit 1 or 2, Nr 0,
// and a Standard Model fundamental id in the low digits.
func (p PDGID) IsSUSY() bool {
	if p.ExtraBits() > 0 {
		return false
	}
	n := p.Digit(N)
	if n != selectorSUSYLeft && n != selectorSUSYRight {
		return false
	}
	if p.Digit(Nr) != 0 {
		return false
	}
	return p.FundamentalID() != 0
}

// IsRhadron reports R-hadrons 10abcdj, 100abcj and 1000abj, where a is the
// SUSY particle and the remaining digits are quarks or gluons.
func (p PDGID) IsRhadron() bool {
	if p.ExtraBits() > 0 {
		return false
	}
	if p.Digit(N) != selectorSUSYLeft || p.Digit(Nr) != 0 {
		return false
	}
	// a SUSY partner proper, not a bound state
	if p.FundamentalID() != 0 {
		return false
	}
	return p.Digit(Nq2) != 0 && p.Digit(Nq3) != 0 && p.Digit(Nj) != 0
}

// IsTechnicolor reports selector digit 3 with a non-empty core.
func (p PDGID) IsTechnicolor() bool {
	if p.ExtraBits() > 0 {
		return false
	}
	return p.Digit(N) == selectorTechnicolor && p.Abs()%pow10[N-1] != 0
}

// IsExcitedQuarkOrLepton reports 40000qj excited quarks and leptons.
func (p PDGID) IsExcitedQuarkOrLepton() bool {
	if p.ExtraBits() > 0 {
		return false
	}
	if p.Digit(N) != selectorExcited || p.Digit(Nr) != 0 {
		return false
	}
	fid := p.FundamentalID()
	return quarkRange.contains(fid) || leptonRange.contains(fid)
}

// IsQball reports Q-balls and other exotics with electric charge beyond the
// quark scheme: 100xxxx0 with xxxx the charge in units of e/10.
func (p PDGID) IsQball() bool {
	if p.ExtraBits() != qballExtraBits {
		return false
	}
	if p.Digit(N) != 0 || p.Digit(Nr) != 0 {
		return false
	}
	if (p.Abs()/10)%10000 == 0 {
		return false
	}
	// spin zero for now
	return p.Digit(Nj) == 0
}

// IsDyon reports magnetic monopoles and dyons 411xyz0 and 412xyz0: one unit
// of Dirac charge, xyz units of electric charge, 1 when the signs agree and 2
// when they differ.
func (p PDGID) IsDyon() bool {
	if p.ExtraBits() > 0 {
		return false
	}
	if p.Digit(N) != selectorDyon || p.Digit(Nr) != 1 {
		return false
	}
	if nl := p.Digit(Nl); nl != dyonSameSign && nl != dyonOppositeSign {
		return false
	}
	if p.Digit(Nq1) == 0 && p.Digit(Nq2) == 0 && p.Digit(Nq3) == 0 {
		return false
	}
	return p.Digit(Nj) == 0
}
