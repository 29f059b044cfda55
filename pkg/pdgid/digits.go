package pdgid

// Location names a decimal digit position of abs(PDGID), counted from the
// least significant digit.
type Location int

const (
	Nj Location = iota + 1
	Nq3
	Nq2
	Nq1
	Nl
	Nr
	N
	N8
	N9
	N10
)

var locationNames = [...]string{"", "nj", "nq3", "nq2", "nq1", "nl", "nr", "n", "n8", "n9", "n10"}

func (l Location) String() string {
	if l < Nj || l > N10 {
		return "invalid"
	}
	return locationNames[l]
}

var pow10 = [...]int{1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000, 1000000000}

// Abs returns the absolute value of the code.
func (p PDGID) Abs() int {
	v := int(p.id)
	if v < 0 {
		return -v
	}
	return v
}

// Digit returns the digit at loc, or 0 when abs(p) has fewer digits.
func (p PDGID) Digit(loc Location) int {
	if loc < Nj || loc > N10 {
		return 0
	}
	return (p.Abs() / pow10[loc-1]) % 10
}

// ExtraBits returns everything above the seven-digit core.
func (p PDGID) ExtraBits() int {
	return p.Abs() / 10000000
}

// FundamentalID returns the fundamental-particle part of the code: 1-100 for
// quarks, leptons, bosons and generator codes, the same number embedded in
// SUSY, technicolor and excited-state codes, 0 otherwise.
func (p PDGID) FundamentalID() int {
	if p.ExtraBits() > 0 {
		return 0
	}
	aid := p.Abs()
	if p.Digit(Nq2) == 0 && p.Digit(Nq1) == 0 {
		return aid % 10000
	}
	if aid <= 102 {
		return aid
	}
	return 0
}

// Digits is a snapshot of the digit groups of a code.
type Digits struct {
	N   int `json:"n" yaml:"n"`
	Nr  int `json:"nr" yaml:"nr"`
	Nl  int `json:"nl" yaml:"nl"`
	Nq1 int `json:"nq1" yaml:"nq1"`
	Nq2 int `json:"nq2" yaml:"nq2"`
	Nq3 int `json:"nq3" yaml:"nq3"`
	Nj  int `json:"nj" yaml:"nj"`

	Extra int `json:"extra" yaml:"extra"`
}

// Digits extracts all digit groups at once.
func (p PDGID) Digits() Digits {
	return Digits{
		N:     p.Digit(N),
		Nr:    p.Digit(Nr),
		Nl:    p.Digit(Nl),
		Nq1:   p.Digit(Nq1),
		Nq2:   p.Digit(Nq2),
		Nq3:   p.Digit(Nq3),
		Nj:    p.Digit(Nj),
		Extra: p.ExtraBits(),
	}
}
