package ranking

import (
	"reflect"
	"testing"

	"github.com/RZCN86/jean-prouve-website-sub001/internal/models"
)

func TestPlaceTokens(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"南锡, 法国", []string{"南锡", "法国"}},
		{"Meudon / Île-de-France", []string{"meudon", "île-de-france"}},
		{"", []string{}},
	}
	for _, tt := range tests {
		got := PlaceTokens(tt.in)
		if len(got) == 0 && len(tt.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("PlaceTokens(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestProfileOf(t *testing.T) {
	work := &models.SearchableDocument{
		ID: "maison-tropicale", Type: models.TypeWork,
		Keywords: []string{"prefabricatedConstruction", "Housing", "prefabricatedConstruction"},
		Metadata: models.WorkMetadata{Year: 1949, Location: "尼亚美, 尼日尔", Category: "housing"},
	}
	p := ProfileOf(work)
	if p.Year != 1949 || p.Category != "housing" {
		t.Errorf("unexpected profile %+v", p)
	}
	if !reflect.DeepEqual(p.Focus, []string{"housing", "prefabricatedconstruction"}) {
		t.Errorf("Focus = %v", p.Focus)
	}
	if !reflect.DeepEqual(p.Places, []string{"尼亚美", "尼日尔"}) {
		t.Errorf("Places = %v", p.Places)
	}

	scholar := &models.SearchableDocument{
		ID: "s1", Type: models.TypeScholar,
		Metadata: models.ScholarMetadata{Region: "europe", Country: "法国", Specialization: []string{"metalwork"}},
	}
	sp := ProfileOf(scholar)
	if !reflect.DeepEqual(sp.Focus, []string{"metalwork"}) {
		t.Errorf("scholar Focus = %v", sp.Focus)
	}
	if !reflect.DeepEqual(sp.Places, []string{"europe", "法国"}) {
		t.Errorf("scholar Places = %v", sp.Places)
	}

	bio := ProfileOf(&models.SearchableDocument{ID: "teaching", Type: models.TypeBiography,
		Metadata: models.BiographyMetadata{Section: "teaching"}})
	if bio.Section != "teaching" || bio.Year != 0 {
		t.Errorf("biography profile = %+v", bio)
	}
}

func TestSharedTerms(t *testing.T) {
	got := sharedTerms([]string{"a", "c", "e"}, []string{"b", "c", "d", "e"})
	if !reflect.DeepEqual(got, []string{"c", "e"}) {
		t.Errorf("sharedTerms = %v", got)
	}
	if sharedTerms(nil, []string{"a"}) != nil {
		t.Error("nil input should share nothing")
	}
}
