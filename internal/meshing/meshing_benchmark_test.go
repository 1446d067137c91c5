package meshing

import (
	"testing"

	"terramesh/internal/terrain"
)

func BenchmarkBuild(b *testing.B) {
	g, err := terrain.NewGrid(terrain.Resolution{Rows: 256, Cols: 256}, 0)
	if err != nil {
		b.Fatal(err)
	}
	for row := 0; row < 256; row++ {
		for col := 0; col < 256; col++ {
			g.Set(row, col, float64((row*31+col*17)%97))
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Build(g)
	}
}
