// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package calc

import (
	"fmt"
	"math"
	"sort"
)

// Statistics computes the named statistic over data. Variance and
// standard deviation are the sample forms and need at least two points.
func Statistics(operation string, data []float64) (float64, error) {
	if len(data) == 0 {
		return 0, fmt.Errorf("%w: %s of no data", ErrEmptyInput, operation)
	}

	switch operation {
	case "mean":
		return mean(data), nil
	case "median":
		return median(data), nil
	case "mode":
		return mode(data), nil
	case "stdev":
		v, err := sampleVariance(data)
		if err != nil {
			return 0, err
		}
		return math.Sqrt(v), nil
	case "variance":
		return sampleVariance(data)
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOperation, operation)
	}
}

func mean(data []float64) float64 {
	var sum float64
	for _, v := range data {
		sum += v
	}
	return sum / float64(len(data))
}

func median(data []float64) float64 {
	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// mode returns the most frequent value. Ties resolve to the value whose
// first occurrence comes earliest in the data.
func mode(data []float64) float64 {
	counts := make(map[float64]int, len(data))
	order := make([]float64, 0, len(data))
	for _, v := range data {
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}

	best := order[0]
	for _, v := range order[1:] {
		if counts[v] > counts[best] {
			best = v
		}
	}
	return best
}

func sampleVariance(data []float64) (float64, error) {
	if len(data) < 2 {
		return 0, fmt.Errorf("%w: variance requires at least two data points", ErrDomain)
	}
	m := mean(data)
	var sum float64
	for _, v := range data {
		d := v - m
		sum += d * d
	}
	return sum / float64(len(data)-1), nil
}

// reduce folds data with the named reduction. "avg" is an alias for the
// arithmetic mean.
func reduce(operation string, data []float64) (float64, error) {
	if len(data) == 0 {
		return 0, fmt.Errorf("%w: %s of no data", ErrEmptyInput, operation)
	}

	switch operation {
	case "sum":
		var sum float64
		for _, v := range data {
			sum += v
		}
		return sum, nil
	case "avg":
		return mean(data), nil
	case "product":
		product := 1.0
		for _, v := range data {
			product *= v
		}
		return product, nil
	case "max":
		best := data[0]
		for _, v := range data[1:] {
			if v > best {
				best = v
			}
		}
		return best, nil
	case "min":
		best := data[0]
		for _, v := range data[1:] {
			if v < best {
				best = v
			}
		}
		return best, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOperation, operation)
	}
}
