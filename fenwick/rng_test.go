package fenwick

import (
	rng "github.com/leesper/go_rng"
)

type sampleRNG interface {
	Int64Range(a, b int64) int64
	Float64Range(a, b float64) float64
}

func newSampleRNG(seed int64) sampleRNG {
	return rng.NewUniformGenerator(seed)
}

func randomInt64s(r sampleRNG, n int) []int64 {
	xs := make([]int64, n)
	for i := range xs {
		xs[i] = r.Int64Range(-1000, 1000)
	}
	return xs
}

func randomFloat64s(r sampleRNG, n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = r.Float64Range(-1, 1)
	}
	return xs
}

func randomIndex(r sampleRNG, n int) int {
	return int(r.Int64Range(0, int64(n)))
}
