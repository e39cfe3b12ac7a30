package apply_test

import (
	"reflect"
	"testing"

	"github.com/hasbyte1/go-rply/apply"
	"github.com/hasbyte1/go-rply/collections"
)

// makeList creates a mixed list of n ints and strings for benchmarks.
func makeList(n int) collections.List {
	items := make(collections.List, n)
	for i := range items {
		if i%2 == 0 {
			items[i] = i
		} else {
			items[i] = "s"
		}
	}
	return items
}

func BenchmarkLapply(b *testing.B) {
	l := makeList(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = apply.Lapply(l, identity)
	}
}

func BenchmarkSapply(b *testing.B) {
	l := makeList(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = apply.Sapply(l, identity)
	}
}

func BenchmarkRapply(b *testing.B) {
	l := makeList(10_000)
	t := reflect.TypeFor[int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = apply.Rapply(l, double, t)
	}
}
