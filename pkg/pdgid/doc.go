// Package pdgid decodes Particle Data Group Monte Carlo identifier codes.
//
// A PDGID is a signed integer whose decimal digits carry the particle's
// category and quantum numbers. Digits are counted from the least
// significant end of the absolute value:
//
//	N10 N9 N8 | N Nr Nl Nq1 Nq2 Nq3 Nj
//
// Nj is 2J+1, Nq1..Nq3 are quark flavours, Nl and Nr are orbital and radial
// excitation, N selects the numbering-scheme branch (SUSY, technicolor,
// excited states, R-hadrons, exotic 9xxxxxx hadrons). Digits above N are the
// "extra bits" used by nuclear codes (10LZZZAAAI) and Q-balls.
//
// Every query is a method on PDGID, so `PDGID.IsLepton` is also usable as a
// plain func(PDGID) bool. Queries never panic; numeric derivations return a
// second boolean that is false when the quantity is undefined for the code.
//
//	p := pdgid.MustFromInt(2212)
//	p.IsBaryon()      // true
//	p.ThreeCharge()   // 3, true
package pdgid
