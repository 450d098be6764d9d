package accuracy

import (
	"math"
	"slices"
)

// relFloor is the reference magnitude below which relative error is not
// recorded.
const relFloor = 1e-15

// Stats summarises the errors of one function at one width.
type Stats struct {
	Count     int     `json:"count"`
	Domain    int     `json:"domain_errors"`
	AbsMax    float64 `json:"abs_max"`
	AbsMean   float64 `json:"abs_mean"`
	RelMax    float64 `json:"rel_max"`
	RelMean   float64 `json:"rel_mean"`
	RelMedian float64 `json:"rel_p50"`
	RelP95    float64 `json:"rel_p95"`
	RelP99    float64 `json:"rel_p99"`
}

type collector struct {
	abs, rel []float64
	domain   int
}

func newCollector(n int) *collector {
	return &collector{
		abs: make([]float64, 0, n),
		rel: make([]float64, 0, n),
	}
}

func (c *collector) add(got, want float64) {
	e := math.Abs(got - want)
	c.abs = append(c.abs, e)
	if math.Abs(want) > relFloor {
		c.rel = append(c.rel, e/math.Abs(want))
	}
}

func (c *collector) skip() {
	c.domain++
}

func (c *collector) stats() Stats {
	st := Stats{Count: len(c.abs), Domain: c.domain}
	st.AbsMax, st.AbsMean = maxMean(c.abs)
	st.RelMax, st.RelMean = maxMean(c.rel)

	sorted := slices.Clone(c.rel)
	slices.Sort(sorted)
	st.RelMedian = percentile(sorted, 0.50)
	st.RelP95 = percentile(sorted, 0.95)
	st.RelP99 = percentile(sorted, 0.99)
	return st
}

func maxMean(xs []float64) (float64, float64) {
	if len(xs) == 0 {
		return 0, 0
	}
	mx, sum := 0.0, 0.0
	for _, x := range xs {
		mx = math.Max(mx, x)
		sum += x
	}
	return mx, sum / float64(len(xs))
}

// percentile picks the element at round((n-1)p) of sorted.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	i := int(math.Round(float64(len(sorted)-1) * p))
	return sorted[i]
}
