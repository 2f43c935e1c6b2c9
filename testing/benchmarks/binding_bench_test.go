package benchmarks

import (
	"fmt"
	"testing"

	"github.com/zoobzio/bindz"
)

func BenchmarkBinding_Emit(b *testing.B) {
	for _, n := range []int{1, 10, 100, 1000} {
		b.Run(fmt.Sprintf("observers=%d", n), func(b *testing.B) {
			binding := bindz.NewBinding[int]()
			sink := 0
			for i := 0; i < n; i++ {
				binding.Observe(func(v int) { sink += v })
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				binding.Emit(i)
			}
			_ = sink
		})
	}
}

func BenchmarkMap_Chain(b *testing.B) {
	root := bindz.NewBinding[int]()
	links := make([]*bindz.Binding[int], 5)
	prev := root
	for i := range links {
		links[i] = bindz.Map(prev, func(v int) int { return v + 1 })
		prev = links[i]
	}
	sink := 0
	links[4].Observe(func(v int) { sink = v })

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		root.Emit(i)
	}
	_ = sink
}

func BenchmarkFlatMap(b *testing.B) {
	src := bindz.NewBinding[[]int]()
	out := bindz.FlatMap(src, func(v int) int { return v * 2 })
	out.Observe(func([]int) {})

	input := make([]int, 64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		src.Emit(input)
	}
}

func BenchmarkState_Set(b *testing.B) {
	s := bindz.NewState(0)
	s.Changes().Observe(func(int) {})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Set(i)
	}
}

func BenchmarkCombine_Update(b *testing.B) {
	for _, n := range []int{2, 8, 32} {
		b.Run(fmt.Sprintf("sources=%d", n), func(b *testing.B) {
			sources := make([]*bindz.State[int], n)
			for i := range sources {
				sources[i] = bindz.NewState(i)
			}
			combined := bindz.Combine(sources...)
			combined.Changes().Observe(func([]int) {})

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sources[i%n].Set(i)
			}
		})
	}
}
