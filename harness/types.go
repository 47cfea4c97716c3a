package harness

import "time"

// Variant is one named implementation strategy under measurement.
type Variant struct {
	Name string
	Fn   func()
}

// Suite groups the variants of one workload with its session hooks.
type Suite struct {
	Name     string
	Setup    func() error // (re)generates input once per session; optional
	Verify   func() error // proves all variants agree before timing; optional
	Variants []Variant    // measured and reported in this order
}

// Result is the immutable measurement record of one variant.
// Times are nanoseconds per operation.
type Result struct {
	Name        string
	Samples     []float64 // ns/op of each sample, in run order
	Iterations  int       // sum of b.N over all samples
	Mean        float64
	Median      float64
	StdDev      float64
	Min         float64
	Max         float64
	BytesPerOp  int64   // peak allocated bytes/op across samples
	AllocsPerOp int64   // peak allocations/op across samples
	Ratio       float64 // Median relative to the first variant's Median
}

// MeanDuration returns Mean as a time.Duration.
func (r Result) MeanDuration() time.Duration { return time.Duration(r.Mean) }

// MedianDuration returns Median as a time.Duration.
func (r Result) MedianDuration() time.Duration { return time.Duration(r.Median) }

// Report is the outcome of one Runner.Run.
type Report struct {
	SessionID  string
	Suite      string
	GOMAXPROCS int
	Config     Config
	Started    time.Time
	Elapsed    time.Duration
	Results    []Result // in suite order
}

// Lookup returns the result for a variant name.
func (r *Report) Lookup(name string) (Result, bool) {
	for _, res := range r.Results {
		if res.Name == name {
			return res, true
		}
	}

	return Result{}, false
}

// Fastest returns the result with the smallest median; ties keep suite order.
func (r *Report) Fastest() (Result, bool) {
	if len(r.Results) == 0 {
		return Result{}, false
	}
	best := r.Results[0]
	for _, res := range r.Results[1:] {
		if res.Median < best.Median {
			best = res
		}
	}

	return best, true
}
