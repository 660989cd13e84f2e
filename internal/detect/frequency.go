package detect

import (
	"math"
	"sort"
	"time"

	"github.com/subscope-dev/subscope/internal/model"
)

// Charge-interval bands, in days. An average interval outside every band
// means frequency cannot be determined from dates alone.
var bands = []struct {
	freq     model.Frequency
	min, max float64
	expected float64
}{
	{model.Weekly, 5, 9, 7},
	{model.Monthly, 28, 35, 30},
	{model.Quarterly, 80, 100, 91},
	{model.Yearly, 350, 380, 365},
}

// intervals returns consecutive day gaps between sorted charge dates.
func intervals(dates []time.Time) []float64 {
	sorted := make([]time.Time, len(dates))
	copy(sorted, dates)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	out := make([]float64, 0, len(sorted)-1)
	for i := 1; i < len(sorted); i++ {
		out = append(out, sorted[i].Sub(sorted[i-1]).Hours()/24)
	}
	return out
}

// frequencyFromIntervals classifies the average interval against the bands
// and scores how consistently the gaps fit. Returns ok=false when the
// average falls outside every band.
func frequencyFromIntervals(gaps []float64) (freq model.Frequency, confidence float64, ok bool) {
	if len(gaps) == 0 {
		return "", 0, false
	}

	var avg float64
	for _, g := range gaps {
		avg += g
	}
	avg /= float64(len(gaps))

	for _, b := range bands {
		if avg >= b.min && avg <= b.max {
			return b.freq, 1 - math.Min(meanAbsDev(gaps, avg)/b.expected, 1), true
		}
	}
	return "", 0, false
}

// consistency expresses amount stability as 1 - meanAbsDev/mean over the
// charge magnitudes. 1.0 means every charge was identical.
func consistency(amounts []float64) float64 {
	if len(amounts) == 0 {
		return 0
	}
	var mean float64
	for _, a := range amounts {
		mean += a
	}
	mean /= float64(len(amounts))
	if mean == 0 {
		return 0
	}
	return 1 - math.Min(meanAbsDev(amounts, mean)/mean, 1)
}

func meanAbsDev(values []float64, mean float64) float64 {
	var sum float64
	for _, v := range values {
		sum += math.Abs(v - mean)
	}
	return sum / float64(len(values))
}
