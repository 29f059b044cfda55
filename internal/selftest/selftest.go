// Package selftest verifies the decoder's structural properties at runtime.
package selftest

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/joss/pdgid/internal/logging"
	"github.com/joss/pdgid/internal/metrics"
	"github.com/joss/pdgid/pkg/pdgid"
)

// Check statuses.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// maxFailures caps how many failing codes a check keeps for display.
const maxFailures = 5

// seed keeps sampled runs reproducible.
const seed = 0x9d6c0de

// CheckResult is the outcome of one property check.
type CheckResult struct {
	Name     string   `json:"name" yaml:"name"`
	Status   string   `json:"status" yaml:"status"`
	Checked  int      `json:"checked" yaml:"checked"`
	Failures []string `json:"failures,omitempty" yaml:"failures,omitempty"`
	Latency  int64    `json:"latency_ms" yaml:"latency_ms"`
}

// Report aggregates every check.
type Report struct {
	Status    string        `json:"status" yaml:"status"`
	Samples   int           `json:"samples" yaml:"samples"`
	Checks    []CheckResult `json:"checks" yaml:"checks"`
	Run       string        `json:"run" yaml:"run"`
	Timestamp string        `json:"timestamp" yaml:"timestamp"`
}

type check struct {
	name string
	fn   func(ctx context.Context, codes []int64, res *CheckResult) error
}

var checks = []check{
	{"reference_codes", checkReferenceCodes},
	{"construction", checkConstruction},
	{"involution", checkInvolution},
	{"hadron_identity", checkHadronIdentity},
	{"invalid_charge_undefined", checkInvalidCharge},
}

// Run executes every check over a reproducible sample of the given size.
func Run(ctx context.Context, samples int) (*Report, error) {
	if samples < 0 {
		return nil, fmt.Errorf("samples must not be negative, got %d", samples)
	}
	log := logging.FromContext(ctx, "selftest")
	start := time.Now()

	codes := Sample(samples)
	report := &Report{
		Status:    StatusOK,
		Samples:   samples,
		Run:       logging.RunID(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	for _, c := range checks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		res := CheckResult{Name: c.name, Status: StatusOK}
		checkStart := time.Now()
		if err := c.fn(ctx, codes, &res); err != nil {
			return nil, err
		}
		res.Latency = time.Since(checkStart).Milliseconds()
		if len(res.Failures) > 0 {
			res.Status = StatusError
			report.Status = StatusError
			log.Warn("check_failed", map[string]any{"check": c.name, "failures": res.Failures}, nil)
		}
		report.Checks = append(report.Checks, res)
	}

	metrics.Global().RecordSelftest(report.IsHealthy())
	log.TimedEvent("selftest_done", start, map[string]any{
		"samples": samples,
		"status":  report.Status,
	})
	return report, nil
}

// Sample returns n pseudo-random codes with |x| < 10^9, half of them
// concentrated in the seven-digit core where most patterns live, followed
// by fixed boundary codes.
func Sample(n int) []int64 {
	r := rand.New(rand.NewPCG(seed, seed>>1))
	codes := make([]int64, 0, n+len(boundaryCodes))
	for i := 0; i < n; i++ {
		bound := int64(1_000_000_000)
		if i%2 == 1 {
			bound = 10_000_000
		}
		codes = append(codes, r.Int64N(2*bound-1)-(bound-1))
	}
	return append(codes, boundaryCodes...)
}

var boundaryCodes = []int64{
	0, 1, -1, 9, 100, 101, 102, 9999, 10000, 9_999_999, 10_000_000,
	999_999_999, -999_999_999, pdgid.MaxValue, pdgid.MinValue,
}

func (r *CheckResult) fail(format string, args ...any) {
	if len(r.Failures) < maxFailures {
		r.Failures = append(r.Failures, fmt.Sprintf(format, args...))
	}
}

type reference struct {
	code  int64
	query string
	want  string
}

var references = []reference{
	{1, "is_quark", "true"},
	{2, "is_quark", "true"},
	{3, "is_quark", "true"},
	{4, "is_quark", "true"},
	{5, "is_quark", "true"},
	{6, "is_quark", "true"},
	{7, "is_quark", "true"},
	{8, "is_quark", "true"},
	{9, "is_quark", "false"},
	{11, "three_charge", "-3"},
	{-11, "three_charge", "3"},
	{2212, "is_baryon", "true"},
	{2212, "is_valid", "true"},
	{2212, "three_charge", "3"},
	{111, "is_meson", "true"},
	{111, "three_charge", "0"},
	{1000060120, "is_nucleus", "true"},
	{1000060120, "Z", "6"},
	{1000060120, "A", "12"},
	{999999, "is_valid", "false"},
}

func checkReferenceCodes(_ context.Context, _ []int64, res *CheckResult) error {
	for _, ref := range references {
		q, err := pdgid.LookupQuery(ref.query)
		if err != nil {
			return err
		}
		res.Checked++
		if got := q.Eval(pdgid.MustFromInt(ref.code)).String(); got != ref.want {
			res.fail("%s(%d) = %s, want %s", ref.query, ref.code, got, ref.want)
		}
	}

	res.Checked++
	if cats := pdgid.MustFromInt(999999).Categories(); len(cats) > 0 {
		res.fail("999999 has categories %s", strings.Join(cats, ","))
	}
	return nil
}

func checkConstruction(ctx context.Context, codes []int64, res *CheckResult) error {
	return eachCode(ctx, codes, res, func(x int64) {
		if x <= -1_000_000_000 || x >= 1_000_000_000 {
			return
		}
		if _, err := pdgid.FromInt(x); err != nil {
			res.fail("FromInt(%d): %v", x, err)
		}
	})
}

func checkInvolution(ctx context.Context, codes []int64, res *CheckResult) error {
	return eachCode(ctx, codes, res, func(x int64) {
		p, err := pdgid.FromInt(x)
		if err != nil {
			return
		}
		if !p.Negate().Negate().Equal(p) {
			res.fail("negate twice changed %d", x)
		}
	})
}

func checkHadronIdentity(ctx context.Context, codes []int64, res *CheckResult) error {
	return eachCode(ctx, codes, res, func(x int64) {
		p, err := pdgid.FromInt(x)
		if err != nil {
			return
		}
		if p.IsHadron() != (p.IsMeson() || p.IsBaryon() || p.IsDiquark()) {
			res.fail("is_hadron disagrees with its parts for %d", x)
		}
	})
}

func checkInvalidCharge(ctx context.Context, codes []int64, res *CheckResult) error {
	return eachCode(ctx, codes, res, func(x int64) {
		p, err := pdgid.FromInt(x)
		if err != nil || p.IsValid() {
			return
		}
		if _, ok := p.ThreeCharge(); ok {
			res.fail("invalid %d has a three_charge", x)
		}
		if _, ok := p.Charge(); ok {
			res.fail("invalid %d has a charge", x)
		}
	})
}

func eachCode(ctx context.Context, codes []int64, res *CheckResult, fn func(int64)) error {
	for i, x := range codes {
		if i%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		res.Checked++
		fn(x)
	}
	return nil
}

// IsHealthy returns true if every check passed.
func (r *Report) IsHealthy() bool {
	return r.Status == StatusOK
}

// Summary returns a human-readable summary.
func (r *Report) Summary() string {
	var sb strings.Builder

	sb.WriteString("PDGID DECODER SELFTEST\n")
	sb.WriteString(strings.Repeat("─", 40) + "\n")
	fmt.Fprintf(&sb, "Samples:      %d\n", r.Samples)

	for _, c := range r.Checks {
		icon := "✓"
		if c.Status != StatusOK {
			icon = "✗"
		}
		fmt.Fprintf(&sb, "  %s %-26s %d checked\n", icon, c.Name, c.Checked)
		for _, f := range c.Failures {
			fmt.Fprintf(&sb, "      %s\n", f)
		}
	}

	sb.WriteString("\n")
	if r.IsHealthy() {
		sb.WriteString("Status: HEALTHY\n")
	} else {
		sb.WriteString("Status: UNHEALTHY - decoder properties violated\n")
	}
	return sb.String()
}

// QuickCheck returns a one-line status suitable for non-verbose output.
func (r *Report) QuickCheck() string {
	var failed []string
	for _, c := range r.Checks {
		if c.Status != StatusOK {
			failed = append(failed, c.Name)
		}
	}
	if len(failed) > 0 {
		return fmt.Sprintf("selftest failed: %s", strings.Join(failed, ", "))
	}
	return fmt.Sprintf("selftest ok: %d checks, %d samples", len(r.Checks), r.Samples)
}
