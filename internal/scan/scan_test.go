package scan

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/joss/pdgid/internal/metrics"
	"github.com/joss/pdgid/pkg/pdgid"
)

func TestRunLeptons(t *testing.T) {
	report, err := Run(context.Background(), Options{
		From:  -20,
		To:    20,
		Where: []string{"is_lepton"},
	})
	require.NoError(t, err)

	want := []int64{-18, -17, -16, -15, -14, -13, -12, -11, 11, 12, 13, 14, 15, 16, 17, 18}
	assert.Equal(t, want, report.Codes())
	assert.Equal(t, int64(41), report.Scanned)
	assert.Equal(t, 16, report.Counts["is_lepton"])
	assert.Equal(t, 12, report.Counts["is_sm_lepton"])
}

func TestRunMultipleFilters(t *testing.T) {
	report, err := Run(context.Background(), Options{
		From:    100,
		To:      400,
		Where:   []string{"is_meson", "has_strange"},
		Workers: 2,
	})
	require.NoError(t, err)

	codes := report.Codes()
	assert.Contains(t, codes, int64(310))
	assert.Contains(t, codes, int64(321))
	assert.Contains(t, codes, int64(333))
	assert.NotContains(t, codes, int64(211))
	for _, m := range report.Matches {
		assert.True(t, m.IsMeson())
		assert.True(t, m.HasStrange())
	}
}

func TestRunSpansChunks(t *testing.T) {
	report, err := Run(context.Background(), Options{
		From:    0,
		To:      3 * chunkSize,
		Where:   []string{"is_baryon"},
		Workers: 3,
	})
	require.NoError(t, err)

	codes := report.Codes()
	assert.IsIncreasing(t, codes)
	assert.Contains(t, codes, int64(2212))
	assert.Contains(t, codes, int64(3122))
	assert.Equal(t, len(codes), report.Counts["is_baryon"])
}

func TestRunDefaultFilter(t *testing.T) {
	report, err := Run(context.Background(), Options{From: 1, To: 12})
	require.NoError(t, err)

	assert.Equal(t, DefaultWhere, report.Where)
	assert.Equal(t, []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 11, 12}, report.Codes())
}

func TestRunNoMatches(t *testing.T) {
	report, err := Run(context.Background(), Options{
		From:  999990,
		To:    999999,
		Where: []string{"is_nucleus"},
	})
	require.NoError(t, err)
	assert.Empty(t, report.Matches)
	assert.NotNil(t, report.Matches)
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want error
	}{
		{"empty range", Options{From: 10, To: 1}, ErrEmptyRange},
		{"too wide", Options{From: 0, To: 100, Limit: 50}, ErrRangeTooWide},
		{"not a predicate", Options{From: 0, To: 1, Where: []string{"charge"}}, ErrNotPredicate},
		{"unknown query", Options{From: 0, To: 1, Where: []string{"is_muon"}}, pdgid.ErrUnknownQuery},
		{"out of range", Options{From: 0, To: pdgid.MaxValue + 1, Limit: 1 << 40}, pdgid.ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Run(context.Background(), tt.opts)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, Options{From: 0, To: 100000})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReportYAML(t *testing.T) {
	report, err := Run(context.Background(), Options{From: 2212, To: 2212, Where: []string{"is_baryon"}})
	require.NoError(t, err)

	data, err := yaml.Marshal(report)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, []any{2212}, decoded["matches"])
	assert.Equal(t, 1, decoded["scanned"])
}

func TestRunRecordsMetrics(t *testing.T) {
	m := metrics.New()
	report, err := Run(context.Background(), Options{
		From:    -20,
		To:      20,
		Where:   []string{"is_lepton"},
		Metrics: m,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), m.Scans.Load())
	assert.Equal(t, int64(41), m.CodesScanned.Load())
	assert.Equal(t, int64(len(report.Matches)), m.CodesMatched.Load())
	assert.Equal(t, int64(1), m.ChunksDone.Load())

	_, err = Run(context.Background(), Options{From: 5, To: 1, Metrics: m})
	require.Error(t, err)
	assert.Equal(t, int64(1), m.Scans.Load())
}

func TestRunCancelledRecordsError(t *testing.T) {
	m := metrics.New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, Options{From: 0, To: 10, Metrics: m})
	require.Error(t, err)
	assert.Equal(t, int64(1), m.ScanErrors.Load())
}
