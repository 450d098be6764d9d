package accuracy

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/beatoz/fxmath-go/libs/jsonx"
)

// Result holds the error statistics of one function at both widths.
type Result struct {
	Name    string `json:"name"`
	Domain  string `json:"domain"`
	I16F16  Stats  `json:"i16f16"`
	I32F32  Stats  `json:"i32f32"`
	Elapsed int64  `json:"elapsed_ms"`
}

// Report is the outcome of one accuracy run.
type Report struct {
	Timestamp int64    `json:"timestamp"`
	Strategy  string   `json:"strategy"`
	Exact     bool     `json:"exact"`
	Version   string   `json:"version,omitempty"`
	Host      HostInfo `json:"host"`
	Results   []Result `json:"results"`
}

func (rpt *Report) Find(name string) *Result {
	for i := range rpt.Results {
		if rpt.Results[i].Name == name {
			return &rpt.Results[i]
		}
	}
	return nil
}

func (rpt *Report) Encode() ([]byte, error) {
	return jsonx.MarshalIndent(rpt, "", "  ")
}

func DecodeReport(bz []byte) (*Report, error) {
	rpt := &Report{}
	if err := jsonx.Unmarshal(bz, rpt); err != nil {
		return nil, err
	}
	return rpt, nil
}

// WriteTable prints the per-function statistics as aligned columns.
func (rpt *Report) WriteTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FUNCTION\tDOMAIN\tI16F16 MEAN\tI16F16 P99\tI16F16 MAX\tI32F32 MEAN\tI32F32 P99\tI32F32 MAX\tSKIPPED")
	for _, r := range rpt.Results {
		fmt.Fprintf(tw, "%s\t%s\t%.2e\t%.2e\t%.2e\t%.2e\t%.2e\t%.2e\t%d\n",
			r.Name, r.Domain,
			r.I16F16.RelMean, r.I16F16.RelP99, r.I16F16.RelMax,
			r.I32F32.RelMean, r.I32F32.RelP99, r.I32F32.RelMax,
			r.I16F16.Domain+r.I32F32.Domain)
	}
	return tw.Flush()
}

// Markdown renders the relative error table in the layout used by the
// project README.
func (rpt *Report) Markdown() string {
	var sb strings.Builder
	sb.WriteString("| Function | I16F16 Mean | I16F16 Median | I16F16 P95 | I32F32 Mean | I32F32 Median | I32F32 P95 |\n")
	sb.WriteString("|----------|-------------|---------------|------------|-------------|---------------|------------|\n")
	for _, r := range rpt.Results {
		fmt.Fprintf(&sb, "| %s | %.2e | %.2e | %.2e | %.2e | %.2e | %.2e |\n",
			r.Name,
			r.I16F16.RelMean, r.I16F16.RelMedian, r.I16F16.RelP95,
			r.I32F32.RelMean, r.I32F32.RelMedian, r.I32F32.RelP95)
	}
	return sb.String()
}

// Status is the outcome of comparing one mean error with its baseline.
type Status string

const (
	StatusSame    Status = "SAME"
	StatusImprove Status = "IMPROVE"
	StatusRegress Status = "REGRESS"
	StatusNew     Status = "NEW"
)

// regressTolerance is the fraction of the baseline mean a change must
// exceed to count as a regression or an improvement.
const regressTolerance = 0.001

// Comparison is one function at one width against the baseline.
type Comparison struct {
	Name     string  `json:"name"`
	Width    string  `json:"width"`
	Baseline float64 `json:"baseline"`
	Current  float64 `json:"current"`
	Status   Status  `json:"status"`
}

func classify(baseline, current float64) Status {
	tol := math.Abs(baseline) * regressTolerance
	switch {
	case current > baseline+tol:
		return StatusRegress
	case current < baseline-tol:
		return StatusImprove
	}
	return StatusSame
}

// Compare checks the mean relative error of every function in current
// against baseline. passed is false if any of them regressed. A nil
// baseline marks every entry NEW.
func Compare(baseline, current *Report) (ret []Comparison, passed bool) {
	passed = true
	for _, r := range current.Results {
		var base *Result
		if baseline != nil {
			base = baseline.Find(r.Name)
		}
		for _, w := range []struct {
			name string
			mean func(*Result) float64
		}{
			{"I16F16", func(x *Result) float64 { return x.I16F16.RelMean }},
			{"I32F32", func(x *Result) float64 { return x.I32F32.RelMean }},
		} {
			cmp := Comparison{Name: r.Name, Width: w.name, Current: w.mean(&r), Status: StatusNew}
			if base != nil {
				cmp.Baseline = w.mean(base)
				cmp.Status = classify(cmp.Baseline, cmp.Current)
			}
			if cmp.Status == StatusRegress {
				passed = false
			}
			ret = append(ret, cmp)
		}
	}
	return ret, passed
}

func WriteComparisons(w io.Writer, cmps []Comparison) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FUNCTION\tWIDTH\tBASELINE\tCURRENT\tSTATUS")
	for _, c := range cmps {
		fmt.Fprintf(tw, "%s\t%s\t%.3e\t%.3e\t%s\n", c.Name, c.Width, c.Baseline, c.Current, c.Status)
	}
	return tw.Flush()
}
