// Package roundtrip measures the accuracy and speed of the two H2SI code
// paths on random HSI input.
package roundtrip

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/jsvensson/h2si"
	"github.com/tliron/commonlog"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var log = commonlog.GetLogger("h2si.roundtrip")

// batchSize is how many conversions run between context checks.
const batchSize = 4096

// Options configures a run.
type Options struct {
	Samples int
	Seed    uint64
}

// Stats summarises absolute errors for one channel.
type Stats struct {
	Max    float64
	Mean   float64
	StdDev float64
	P99    float64
}

// PathReport holds per-channel errors and timing for one code path.
type PathReport struct {
	H, S, I Stats
	Elapsed time.Duration
}

// Report is the outcome of a run.
type Report struct {
	Samples    int
	Complex    PathReport // HSIToH2SI then H2SI.HSI
	Components PathReport // HSIToComponents then Components.HSI

	// Equivalence is the largest componentwise gap between the two encodings.
	Equivalence float64
}

// Within reports whether every recorded error is at most tol.
func (r Report) Within(tol float64) bool {
	for _, p := range []PathReport{r.Complex, r.Components} {
		if p.H.Max > tol || p.S.Max > tol || p.I.Max > tol {
			return false
		}
	}
	return r.Equivalence <= tol
}

// Run draws opts.Samples random colours with H in [0, 2π), S in [0, 1) and
// I in (0, 1], and round-trips each through both code paths.
func Run(ctx context.Context, opts Options) (Report, error) {
	if opts.Samples <= 0 {
		return Report{}, fmt.Errorf("samples must be positive, got %d", opts.Samples)
	}

	r := rand.New(rand.NewPCG(opts.Seed, opts.Seed))
	inputs := make([]h2si.HSI, opts.Samples)
	for k := range inputs {
		inputs[k] = h2si.HSI{
			H: 2 * math.Pi * r.Float64(),
			S: r.Float64(),
			I: 1 - r.Float64(),
		}
	}
	log.Debug("generated inputs", "samples", opts.Samples, "seed", opts.Seed)

	report := Report{Samples: opts.Samples}

	complexOut, elapsed, err := timePath(ctx, inputs, func(c h2si.HSI) (h2si.HSI, error) {
		x, err := h2si.HSIToH2SI(c)
		return x.HSI(), err
	})
	if err != nil {
		return Report{}, fmt.Errorf("complex path: %w", err)
	}
	report.Complex = summarise(inputs, complexOut, elapsed)

	componentsOut, elapsed, err := timePath(ctx, inputs, func(c h2si.HSI) (h2si.HSI, error) {
		v, err := h2si.HSIToComponents(c)
		return v.HSI(), err
	})
	if err != nil {
		return Report{}, fmt.Errorf("components path: %w", err)
	}
	report.Components = summarise(inputs, componentsOut, elapsed)

	for k, c := range inputs {
		if k%batchSize == 0 {
			if err := ctx.Err(); err != nil {
				return Report{}, err
			}
		}
		x, _ := h2si.HSIToH2SI(c)
		v, _ := h2si.HSIToComponents(c)
		slow := x.Components()
		for n := range v {
			report.Equivalence = math.Max(report.Equivalence, math.Abs(slow[n]-v[n]))
		}
	}

	log.Info("round trip complete",
		"samples", opts.Samples,
		"complex", report.Complex.Elapsed,
		"components", report.Components.Elapsed,
	)
	return report, nil
}

func timePath(ctx context.Context, inputs []h2si.HSI, convert func(h2si.HSI) (h2si.HSI, error)) ([]h2si.HSI, time.Duration, error) {
	out := make([]h2si.HSI, len(inputs))
	start := time.Now()
	for k, c := range inputs {
		if k%batchSize == 0 {
			if err := ctx.Err(); err != nil {
				return nil, 0, err
			}
		}
		got, err := convert(c)
		if err != nil {
			return nil, 0, fmt.Errorf("sample %d (%v): %w", k, c, err)
		}
		out[k] = got
	}
	return out, time.Since(start), nil
}

func summarise(want, got []h2si.HSI, elapsed time.Duration) PathReport {
	dh := make([]float64, len(want))
	ds := make([]float64, len(want))
	di := make([]float64, len(want))
	for k := range want {
		d := math.Abs(got[k].H - want[k].H)
		dh[k] = math.Min(d, 2*math.Pi-d)
		ds[k] = math.Abs(got[k].S - want[k].S)
		di[k] = math.Abs(got[k].I - want[k].I)
	}
	return PathReport{H: stats(dh), S: stats(ds), I: stats(di), Elapsed: elapsed}
}

func stats(errs []float64) Stats {
	mean, std := stat.MeanStdDev(errs, nil)
	maxErr := floats.Max(errs)

	sorted := slices.Clone(errs)
	slices.Sort(sorted)

	return Stats{
		Max:    maxErr,
		Mean:   mean,
		StdDev: std,
		P99:    stat.Quantile(0.99, stat.Empirical, sorted, nil),
	}
}
