package mood

import "math"

// Correlation is the Pearson coefficient of one lifestyle variable against
// the mood score.
type Correlation struct {
	Variable    string  `json:"variable"`
	Coefficient float64 `json:"coefficient"`
}

// minSamples is the smallest series Pearson is computed over.
const minSamples = 3

// Correlations computes the Pearson coefficient of sleep hours, breath
// minutes, and cycle day against the mood score. An optional variable is
// skipped unless every entry carries a value; any series shorter than three
// samples is skipped.
func Correlations(entries []Entry) []Correlation {
	scores := make([]float64, len(entries))
	for i, e := range entries {
		scores[i] = float64(e.Score)
	}

	sleep := make([]float64, 0, len(entries))
	for _, e := range entries {
		if e.SleepHours != nil {
			sleep = append(sleep, *e.SleepHours)
		}
	}
	breath := make([]float64, len(entries))
	for i, e := range entries {
		breath[i] = float64(e.BreathMinutes)
	}
	cycle := make([]float64, 0, len(entries))
	for _, e := range entries {
		if e.CycleDay != nil {
			cycle = append(cycle, float64(*e.CycleDay))
		}
	}

	var results []Correlation
	for _, series := range []struct {
		name string
		x    []float64
	}{
		{"sleepHours", sleep},
		{"breathMinutes", breath},
		{"cycleDay", cycle},
	} {
		if len(series.x) != len(scores) || len(series.x) < minSamples {
			continue
		}
		results = append(results, Correlation{
			Variable:    series.name,
			Coefficient: pearson(series.x, scores),
		})
	}
	return results
}

// pearson returns the correlation coefficient of two equal-length series,
// clamped to [-1,1]. A zero-variance series yields 0.
func pearson(x, y []float64) float64 {
	n := float64(len(x))
	var sumX, sumY, sumXY, sumX2, sumY2 float64
	for i := range x {
		sumX += x[i]
		sumY += y[i]
		sumXY += x[i] * y[i]
		sumX2 += x[i] * x[i]
		sumY2 += y[i] * y[i]
	}
	numerator := n*sumXY - sumX*sumY
	denominator := math.Sqrt((n*sumX2 - sumX*sumX) * (n*sumY2 - sumY*sumY))
	if denominator == 0 {
		return 0
	}
	return math.Max(-1, math.Min(1, numerator/denominator))
}
