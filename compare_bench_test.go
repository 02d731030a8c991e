package strpack

import (
	"fmt"
	"math/rand"
	"slices"
	"strings"
	"testing"
)

const benchAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func randomString(rng *rand.Rand, n int) string {
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		sb.WriteByte(benchAlphabet[rng.Intn(len(benchAlphabet))])
	}
	return sb.String()
}

// Benchmark_Compare mirrors the comparison shape of query processing:
// mostly-distinct strings of a fixed length, prefix deciding early.
func Benchmark_Compare(b *testing.B) {
	for _, n := range []int{4, 10, 20, 50} {
		rng := rand.New(rand.NewSource(int64(n)))
		const pairs = 1024
		as := make([]Str, pairs)
		bs := make([]Str, pairs)
		for i := range as {
			as[i] = MustNew(randomString(rng, n))
			bs[i] = MustNew(randomString(rng, n))
		}

		b.Run(fmt.Sprintf("Str/%dbytes", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				k := i % pairs
				_ = as[k].Compare(&bs[k])
			}
		})
	}

	for _, n := range []int{4, 10, 20, 50} {
		rng := rand.New(rand.NewSource(int64(n)))
		const pairs = 1024
		as := make([]string, pairs)
		bs := make([]string, pairs)
		for i := range as {
			as[i] = randomString(rng, n)
			bs[i] = randomString(rng, n)
		}

		b.Run(fmt.Sprintf("string/%dbytes", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				k := i % pairs
				_ = strings.Compare(as[k], bs[k])
			}
		})
	}
}

// Benchmark_Sort mirrors columnar sort workloads: mixed lengths force
// both storage variants, short lengths stay entirely inline.
func Benchmark_Sort(b *testing.B) {
	ranges := []struct {
		name     string
		min, max int
	}{
		{"Mixed2to50", 2, 50},
		{"Short0to12", 0, 12},
	}
	const count = 1000

	for _, r := range ranges {
		rng := rand.New(rand.NewSource(7))
		raw := make([]string, count)
		for i := range raw {
			raw[i] = randomString(rng, r.min+rng.Intn(r.max-r.min+1))
		}
		vals := make([]Str, count)
		for i, s := range raw {
			vals[i] = MustNew(s)
		}

		b.Run("Str/"+r.name, func(b *testing.B) {
			work := make([]Str, count)
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				copy(work, vals)
				b.StartTimer()
				slices.SortFunc(work, func(x, y Str) int { return x.Compare(&y) })
			}
		})
		b.Run("string/"+r.name, func(b *testing.B) {
			work := make([]string, count)
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				copy(work, raw)
				b.StartTimer()
				slices.Sort(work)
			}
		})
	}
}

func Benchmark_Construct(b *testing.B) {
	for _, n := range []int{4, 12, 13, 50} {
		rng := rand.New(rand.NewSource(int64(n)))
		in := randomString(rng, n)
		b.Run(fmt.Sprintf("%dbytes", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				v := MustNew(in)
				v.Drop()
			}
		})
	}
}

func Benchmark_Hash(b *testing.B) {
	v := MustNew("a representative dictionary key")
	defer v.Drop()
	for i := 0; i < b.N; i++ {
		_ = v.Hash()
	}
}
