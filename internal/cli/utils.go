// Package cli provides output formatting for the prouve-search command.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/RZCN86/jean-prouve-website-sub001/internal/models"
	"github.com/RZCN86/jean-prouve-website-sub001/internal/search"
	"github.com/RZCN86/jean-prouve-website-sub001/internal/service"
	"github.com/RZCN86/jean-prouve-website-sub001/pkg/utils"
)

// OutputFormat is the format for command output.
type OutputFormat string

const (
	// OutputText is human-readable text (default).
	OutputText OutputFormat = "text"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON OutputFormat = "json"
)

const separator = "─────────────────────────────────────────────────────────"

// excerptWidth bounds excerpts in text output.
const excerptWidth = 200

// ParseFormat maps a flag value to an output format. Unknown values fall
// back to text.
func ParseFormat(s string) OutputFormat {
	if OutputFormat(strings.ToLower(s)) == OutputJSON {
		return OutputJSON
	}
	return OutputText
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteSearchResults writes search hits to w. With explain, text output
// includes the per-field hit counts behind each score.
func WriteSearchResults(w io.Writer, term string, hits []search.Hit, format OutputFormat, explain bool) error {
	if format == OutputJSON {
		if explain {
			return writeJSON(w, hits)
		}
		results := make([]models.SearchResult, len(hits))
		for i := range hits {
			results[i] = hits[i].SearchResult
		}
		return writeJSON(w, results)
	}

	fmt.Fprintf(w, "\nFound %d results for %q\n\n", len(hits), term)
	for i, h := range hits {
		fmt.Fprintln(w, separator)
		fmt.Fprintf(w, "Rank: %d | Score: %.2f | Type: %s\n", i+1, h.RelevanceScore, h.Type)
		if explain {
			fmt.Fprintf(w, "Hits: title=%d keyword=%d body=%d\n", h.Hits.Title, h.Hits.Keyword, h.Hits.Body)
		}
		fmt.Fprintf(w, "ID: %s\n", h.ID)
		fmt.Fprintf(w, "Title: %s\n", h.Title)
		if line := describe(h.Metadata); line != "" {
			fmt.Fprintln(w, line)
		}
		if h.Excerpt != "" {
			fmt.Fprintf(w, "\n%s\n", utils.Truncate(h.Excerpt, excerptWidth))
		}
		fmt.Fprintln(w)
	}
	return nil
}

// WriteSuggestions writes autocomplete suggestions to w.
func WriteSuggestions(w io.Writer, suggestions []string, format OutputFormat) error {
	if format == OutputJSON {
		return writeJSON(w, suggestions)
	}
	if len(suggestions) == 0 {
		fmt.Fprintln(w, "No suggestions")
		return nil
	}
	for _, s := range suggestions {
		fmt.Fprintln(w, s)
	}
	return nil
}

// WriteRecommendations writes recommendation items to w.
func WriteRecommendations(w io.Writer, items []models.RecommendationItem, format OutputFormat) error {
	if format == OutputJSON {
		return writeJSON(w, items)
	}
	fmt.Fprintf(w, "\n%d related items\n\n", len(items))
	for i, it := range items {
		fmt.Fprintln(w, separator)
		fmt.Fprintf(w, "Rank: %d | Score: %.2f | Type: %s\n", i+1, it.RelevanceScore, it.Type)
		fmt.Fprintf(w, "ID: %s\n", it.ID)
		fmt.Fprintf(w, "Title: %s\n", it.Title)
		fmt.Fprintf(w, "Reason: %s\n", it.Reason)
		if it.Excerpt != "" {
			fmt.Fprintf(w, "\n%s\n", utils.Truncate(it.Excerpt, excerptWidth))
		}
		fmt.Fprintln(w)
	}
	return nil
}

// WriteFacets writes the filter catalogue to w.
func WriteFacets(w io.Writer, facets models.Facets, format OutputFormat) error {
	if format == OutputJSON {
		return writeJSON(w, facets)
	}
	writeFacetGroup(w, "Types", facets.Types)
	writeFacetGroup(w, "Categories", facets.Categories)
	writeFacetGroup(w, "Regions", facets.Regions)
	fmt.Fprintf(w, "Years: %d-%d\n", facets.YearRange[0], facets.YearRange[1])
	return nil
}

func writeFacetGroup(w io.Writer, name string, facets []models.FilterFacet) {
	fmt.Fprintf(w, "%s:\n", name)
	for _, f := range facets {
		if f.Name != f.ID {
			fmt.Fprintf(w, "  %-12s %-10s %d\n", f.ID, f.Name, f.Count)
		} else {
			fmt.Fprintf(w, "  %-12s %d\n", f.ID, f.Count)
		}
	}
}

// WriteStatus writes the corpus status to w.
func WriteStatus(w io.Writer, st service.Status, format OutputFormat) error {
	if format == OutputJSON {
		return writeJSON(w, st)
	}
	fmt.Fprintf(w, "Version:   %s\n", st.Version)
	fmt.Fprintf(w, "Loaded:    %s\n", st.LoadedAt.Format(time.RFC3339))
	fmt.Fprintf(w, "Source:    %s\n", st.Source)
	fmt.Fprintf(w, "Watching:  %t\n", st.Watching)
	fmt.Fprintf(w, "Documents: %d\n", st.Documents)
	types := make([]string, 0, len(st.ByType))
	for t := range st.ByType {
		types = append(types, t)
	}
	sort.Strings(types)
	for _, t := range types {
		fmt.Fprintf(w, "  %-10s %d\n", t, st.ByType[t])
	}
	return nil
}

// describe renders the metadata of a result as one line.
func describe(md models.Metadata) string {
	var parts []string
	switch m := md.(type) {
	case models.WorkMetadata:
		if m.Year != 0 {
			parts = append(parts, fmt.Sprintf("Year: %d", m.Year))
		}
		parts = appendNonEmpty(parts, "Category", m.Category)
		parts = appendNonEmpty(parts, "Location", m.Location)
	case models.ScholarMetadata:
		parts = appendNonEmpty(parts, "Institution", m.Institution)
		parts = appendNonEmpty(parts, "Region", m.Region)
	case models.BiographyMetadata:
		parts = appendNonEmpty(parts, "Period", m.Period)
	case models.PublicationMetadata:
		if m.Year != 0 {
			parts = append(parts, fmt.Sprintf("Year: %d", m.Year))
		}
		parts = appendNonEmpty(parts, "Author", m.Author)
	}
	return strings.Join(parts, " | ")
}

func appendNonEmpty(parts []string, label, value string) []string {
	if value == "" {
		return parts
	}
	return append(parts, label+": "+value)
}
