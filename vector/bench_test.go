package vector_test

import (
	"testing"

	"github.com/katalvlaran/vec/vector"
)

// benchmarkPushBack is a helper that appends n elements per iteration,
// optionally through a reserve hint that pre-sizes capacity. It resets
// the timer before entering the loop and fails on unexpected errors.
func benchmarkPushBack(b *testing.B, n int, reserved bool) {
	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		v := vector.New[int]()
		if reserved {
			if err := v.Reserve(n); err != nil {
				b.Fatalf("Reserve failed: %v", err) // report and stop on error
			}
		}
		for j := 0; j < n; j++ {
			if err := v.PushBack(j); err != nil {
				b.Fatalf("PushBack failed: %v", err) // report and stop on error
			}
		}
	}
}

// BenchmarkPushBack_Grow1k measures 1 000 appends under doubling growth.
func BenchmarkPushBack_Grow1k(b *testing.B) {
	benchmarkPushBack(b, 1_000, false)
}

// BenchmarkPushBack_Grow64k measures 65 536 appends under doubling growth.
func BenchmarkPushBack_Grow64k(b *testing.B) {
	benchmarkPushBack(b, 1<<16, false)
}

// BenchmarkPushBack_Reserved1k measures 1 000 appends into pre-reserved capacity.
func BenchmarkPushBack_Reserved1k(b *testing.B) {
	benchmarkPushBack(b, 1_000, true)
}

// BenchmarkPushBack_Reserved64k measures 65 536 appends into pre-reserved capacity.
func BenchmarkPushBack_Reserved64k(b *testing.B) {
	benchmarkPushBack(b, 1<<16, true)
}

// BenchmarkInsertFront measures worst-case insertion: every element shifts.
func BenchmarkInsertFront(b *testing.B) {
	const n = 1_000
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v := vector.New[int]()
		for j := 0; j < n; j++ {
			if err := v.Insert(0, j); err != nil {
				b.Fatalf("Insert failed: %v", err)
			}
		}
	}
}

// BenchmarkEraseFront measures worst-case erasure: every element shifts.
func BenchmarkEraseFront(b *testing.B) {
	const n = 1_000
	src := vector.New[int]()
	for j := 0; j < n; j++ {
		if err := src.PushBack(j); err != nil {
			b.Fatalf("PushBack failed: %v", err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		v := src.Clone() // fresh copy to drain each iteration
		b.StartTimer()
		for !v.IsEmpty() {
			if err := v.Erase(0); err != nil {
				b.Fatalf("Erase failed: %v", err)
			}
		}
	}
}
