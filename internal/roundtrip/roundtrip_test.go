package roundtrip

import (
	"context"
	"testing"

	"github.com/jsvensson/h2si"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	report, err := Run(context.Background(), Options{Samples: 20_000, Seed: 7})
	require.NoError(t, err)

	assert.Equal(t, 20_000, report.Samples)
	assert.True(t, report.Within(1e-10), "report exceeds tolerance: %+v", report)
	assert.LessOrEqual(t, report.Components.I.Mean, report.Components.I.Max)
	assert.LessOrEqual(t, report.Complex.S.P99, report.Complex.S.Max)
	assert.Greater(t, report.Complex.Elapsed.Nanoseconds(), int64(0))
}

func TestRun_Deterministic(t *testing.T) {
	a, err := Run(context.Background(), Options{Samples: 500, Seed: 3})
	require.NoError(t, err)
	b, err := Run(context.Background(), Options{Samples: 500, Seed: 3})
	require.NoError(t, err)

	assert.Equal(t, a.Complex.H, b.Complex.H)
	assert.Equal(t, a.Equivalence, b.Equivalence)
}

func TestRun_InvalidSamples(t *testing.T) {
	_, err := Run(context.Background(), Options{Samples: 0})
	assert.ErrorContains(t, err, "samples must be positive")
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, Options{Samples: 10, Seed: 1})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReport_Within(t *testing.T) {
	var r Report
	assert.True(t, r.Within(0))

	r.Components.I.Max = 1e-9
	assert.False(t, r.Within(1e-10))
	assert.True(t, r.Within(1e-9))

	r = Report{Equivalence: 1}
	assert.False(t, r.Within(0.5))
}

func TestStats(t *testing.T) {
	s := stats([]float64{0, 1, 2, 3, 4})
	assert.Equal(t, 4.0, s.Max)
	assert.InDelta(t, 2.0, s.Mean, 1e-12)
	assert.Equal(t, 4.0, s.P99)
}

func TestSummarise_HueWraps(t *testing.T) {
	want := []h2si.HSI{{H: 0.001}}
	got := []h2si.HSI{{H: 6.282}}
	p := summarise(want, got, 0)
	assert.InDelta(t, 0.0021853, p.H.Max, 1e-6)
}
