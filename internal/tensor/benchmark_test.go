package tensor

import (
	"fmt"
	"testing"
)

func BenchmarkExtent(b *testing.B) {
	e := MustExtent(8, 1, 16, 1, 32)

	b.Run("NewExtent", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = NewExtent(8, 1, 16, 1, 32)
		}
	})

	b.Run("Compressed", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = e.Compressed()
		}
	})

	b.Run("Strides", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = e.Strides()
		}
	})
}

func BenchmarkViewEval(b *testing.B) {
	shapes := [][]int{
		{1024},
		{64, 64},
		{16, 16, 16},
		{8, 8, 8, 8},
	}

	for _, dims := range shapes {
		a, err := Arange[float32](MustExtent(dims...))
		if err != nil {
			b.Fatal(err)
		}
		v := a.View()

		b.Run(fmt.Sprintf("%v", dims), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = v.Eval()
			}
		})
	}
}

func BenchmarkViewScalar(b *testing.B) {
	a, err := Arange[float32](MustExtent(16, 16, 16))
	if err != nil {
		b.Fatal(err)
	}
	v, err := a.View().Index(3)
	if err != nil {
		b.Fatal(err)
	}
	n := v.NumElements()

	b.Run("Scalar", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = v.Scalar(i % n)
		}
	})

	b.Run("Eval", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = v.Eval()
		}
	})
}
