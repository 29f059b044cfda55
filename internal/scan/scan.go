// Package scan enumerates an interval of codes in parallel and keeps the
// ones matching a set of predicate queries.
package scan

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/joss/pdgid/internal/logging"
	"github.com/joss/pdgid/internal/metrics"
	"github.com/joss/pdgid/pkg/pdgid"
)

var (
	// ErrEmptyRange is returned when From > To.
	ErrEmptyRange = errors.New("empty range")
	// ErrRangeTooWide is returned when the interval exceeds Options.Limit.
	ErrRangeTooWide = errors.New("range too wide")
	// ErrNotPredicate is returned when a filter names a non-boolean query.
	ErrNotPredicate = errors.New("query is not a predicate")
)

// DefaultWhere is the filter used when none is given.
var DefaultWhere = []string{"is_valid"}

// Defaults applied to zero-valued options.
const (
	DefaultWorkers = 4
	DefaultLimit   = 10_000_000
)

// chunkSize is the number of codes one worker task evaluates.
const chunkSize = 1 << 14

// Options configures a scan.
type Options struct {
	From    int64
	To      int64
	Where   []string
	Workers int
	Limit   int64
	// Metrics receives counters; nil uses metrics.Global().
	Metrics *metrics.Metrics
}

// Report is the outcome of a scan.
type Report struct {
	From    int64          `json:"from" yaml:"from"`
	To      int64          `json:"to" yaml:"to"`
	Where   []string       `json:"where" yaml:"where"`
	Scanned int64          `json:"scanned" yaml:"scanned"`
	Matches []pdgid.PDGID  `json:"matches" yaml:"-"`
	Counts  map[string]int `json:"counts" yaml:"counts"`
	Elapsed time.Duration  `json:"elapsed_ns" yaml:"-"`
}

// Codes returns the matches as plain integers.
func (r *Report) Codes() []int64 {
	out := make([]int64, len(r.Matches))
	for i, m := range r.Matches {
		out[i] = m.Int()
	}
	return out
}

// MarshalYAML renders matches as plain integers.
func (r *Report) MarshalYAML() (any, error) {
	return struct {
		From    int64          `yaml:"from"`
		To      int64          `yaml:"to"`
		Where   []string       `yaml:"where"`
		Scanned int64          `yaml:"scanned"`
		Matches []int64        `yaml:"matches"`
		Counts  map[string]int `yaml:"counts"`
		Elapsed string         `yaml:"elapsed"`
	}{r.From, r.To, r.Where, r.Scanned, r.Codes(), r.Counts, r.Elapsed.String()}, nil
}

func (o Options) withDefaults() Options {
	if len(o.Where) == 0 {
		o.Where = DefaultWhere
	}
	if o.Workers < 1 {
		o.Workers = DefaultWorkers
	}
	if o.Limit < 1 {
		o.Limit = DefaultLimit
	}
	if o.Metrics == nil {
		o.Metrics = metrics.Global()
	}
	return o
}

// Filter resolves predicate names to queries.
func Filter(names []string) ([]pdgid.Query, error) {
	queries := make([]pdgid.Query, 0, len(names))
	for _, name := range names {
		q, err := pdgid.LookupQuery(name)
		if err != nil {
			return nil, err
		}
		if q.Kind != pdgid.KindBool {
			return nil, fmt.Errorf("%w: %s is %s", ErrNotPredicate, name, q.Kind)
		}
		queries = append(queries, q)
	}
	return queries, nil
}

func matches(p pdgid.PDGID, filter []pdgid.Query) bool {
	for _, q := range filter {
		if !q.Eval(p).Bool {
			return false
		}
	}
	return true
}

// Run enumerates [From, To] and keeps codes for which every Where query
// holds. Cancelling ctx stops all workers.
func Run(ctx context.Context, opts Options) (*Report, error) {
	opts = opts.withDefaults()
	if opts.From > opts.To {
		return nil, fmt.Errorf("%w: from %d > to %d", ErrEmptyRange, opts.From, opts.To)
	}
	if _, err := pdgid.FromInt(opts.From); err != nil {
		return nil, fmt.Errorf("from: %w", err)
	}
	if _, err := pdgid.FromInt(opts.To); err != nil {
		return nil, fmt.Errorf("to: %w", err)
	}
	width := opts.To - opts.From + 1
	if width > opts.Limit {
		return nil, fmt.Errorf("%w: %d codes exceeds limit %d", ErrRangeTooWide, width, opts.Limit)
	}
	filter, err := Filter(opts.Where)
	if err != nil {
		return nil, err
	}

	log := logging.FromContext(ctx, "scan")
	start := time.Now()

	var (
		mu     sync.Mutex
		found  = make([]pdgid.PDGID, 0)
		counts = make(map[string]int)
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)

	recovery := logging.NewRecoveryHandler("scan-worker")
	recovery.OnPanic = func(any, string) { opts.Metrics.RecordPanic() }

	for lo := opts.From; lo <= opts.To; lo += chunkSize {
		if gctx.Err() != nil {
			break
		}
		hi := min(lo+chunkSize-1, opts.To)
		g.Go(func() error {
			return recovery.WrapError(func() error {
				local, localCounts, err := scanChunk(gctx, lo, hi, filter)
				if err != nil {
					return err
				}
				opts.Metrics.RecordChunk(hi-lo+1, int64(len(local)))
				mu.Lock()
				defer mu.Unlock()
				found = append(found, local...)
				for k, v := range localCounts {
					counts[k] += v
				}
				return nil
			})
		})
	}

	err = g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	opts.Metrics.RecordScan(err == nil, time.Since(start).Milliseconds())
	if err != nil {
		log.Warn("scan_aborted", map[string]any{"from": opts.From, "to": opts.To}, err)
		return nil, err
	}

	slices.SortFunc(found, pdgid.PDGID.Compare)

	report := &Report{
		From:    opts.From,
		To:      opts.To,
		Where:   opts.Where,
		Scanned: width,
		Matches: found,
		Counts:  counts,
		Elapsed: time.Since(start),
	}
	log.TimedEvent("scan_done", start, map[string]any{
		"scanned": width,
		"matches": len(found),
		"workers": opts.Workers,
	})
	return report, nil
}

func scanChunk(ctx context.Context, lo, hi int64, filter []pdgid.Query) ([]pdgid.PDGID, map[string]int, error) {
	var found []pdgid.PDGID
	counts := make(map[string]int)
	for x := lo; x <= hi; x++ {
		if (x-lo)%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, nil, err
			}
		}
		p := pdgid.MustFromInt(x)
		if !matches(p, filter) {
			continue
		}
		found = append(found, p)
		for _, c := range p.Categories() {
			counts[c]++
		}
	}
	return found, counts, nil
}
