package ranking

import (
	"sort"
	"strings"
	"unicode"

	"github.com/RZCN86/jean-prouve-website-sub001/internal/indexer"
	"github.com/RZCN86/jean-prouve-website-sub001/internal/models"
)

// Profile holds the comparable attributes of one document, folded for
// case-insensitive comparison. Focus and Places are sorted and deduplicated.
type Profile struct {
	Type     models.DocumentType
	Category string
	Section  string
	Year     int
	Focus    []string
	Places   []string
}

// ProfileOf extracts the similarity profile of doc.
func ProfileOf(doc *models.SearchableDocument) *Profile {
	p := &Profile{Type: doc.Type}
	focus := make([]string, 0, len(doc.Keywords)+1)
	for _, kw := range doc.Keywords {
		focus = append(focus, indexer.Fold(kw))
	}

	switch md := doc.Metadata.(type) {
	case models.WorkMetadata:
		p.Year = md.Year
		if md.Category != "" {
			p.Category = indexer.Fold(md.Category)
			focus = append(focus, p.Category)
		}
		p.Places = PlaceTokens(md.Location)
	case models.ScholarMetadata:
		for _, s := range md.Specialization {
			focus = append(focus, indexer.Fold(s))
		}
		p.Places = append(PlaceTokens(md.Region), PlaceTokens(md.Country)...)
	case models.BiographyMetadata:
		p.Section = md.Section
	case models.PublicationMetadata:
		p.Year = md.Year
	}

	p.Focus = uniqueSorted(focus)
	p.Places = uniqueSorted(p.Places)
	return p
}

// PlaceTokens splits a location string such as "南锡, 法国" or
// "Meudon / Île-de-France" into folded place tokens.
func PlaceTokens(s string) []string {
	fields := strings.FieldsFunc(indexer.Fold(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-'
	})
	out := fields[:0]
	for _, f := range fields {
		if f = strings.Trim(f, "-"); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// sharedTerms returns the intersection of two sorted, deduplicated slices.
func sharedTerms(a, b []string) []string {
	var out []string
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return out
}

func removeTerm(terms []string, term string) []string {
	out := terms[:0]
	for _, t := range terms {
		if t != term {
			out = append(out, t)
		}
	}
	return out
}

func uniqueSorted(terms []string) []string {
	if len(terms) == 0 {
		return nil
	}
	sort.Strings(terms)
	out := terms[:1]
	for _, t := range terms[1:] {
		if t != out[len(out)-1] && t != "" {
			out = append(out, t)
		}
	}
	if out[0] == "" {
		out = out[1:]
	}
	return out
}
