package recommend

import (
	"testing"

	"github.com/RZCN86/jean-prouve-website-sub001/internal/corpus"
	"github.com/RZCN86/jean-prouve-website-sub001/internal/models"
)

func BenchmarkEngine_Recommend(b *testing.B) {
	snap, err := corpus.LoadDefault()
	if err != nil {
		b.Fatal(err)
	}
	e := NewEngine(snap, nil)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.Recommend(models.TypeWork, "maison-tropicale", models.RecommendOptions{})
	}
}
