package calmap

import "testing"

func benchTable(n int) *Table {
	tab := New()
	for i := 0; i < n; i++ {
		x := float64(i)
		tab.AddPoint(x, x-0.001*float64(i%7))
	}

	return tab
}

func BenchmarkErrorValueExact(b *testing.B) {
	tab := benchTable(1000)

	b.ResetTimer()

	for b.Loop() {
		if _, err := tab.ErrorValue(500); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkErrorValueInterpolated(b *testing.B) {
	tab := benchTable(1000)

	b.ResetTimer()

	for b.Loop() {
		if _, err := tab.ErrorValue(500.5); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAddPoint(b *testing.B) {
	tab := benchTable(1000)

	b.ResetTimer()

	for b.Loop() {
		tab.AddPoint(500, 499.9)
	}
}

func BenchmarkCorrectedBlock(b *testing.B) {
	tab := benchTable(1000)

	nominals := make([]float64, 512)
	for i := range nominals {
		nominals[i] = 0.5 + float64(i)*(998.0/512.0)
	}
	dst := make([]float64, len(nominals))

	b.ResetTimer()

	for b.Loop() {
		if err := tab.CorrectedBlock(dst, nominals); err != nil {
			b.Fatal(err)
		}
	}
}
