package models

// Metadata is the per-type attribute bag of a document. Exactly one concrete
// type exists per DocumentType, so a work's category and a scholar's region
// are distinguished statically instead of through a loosely typed map.
type Metadata interface {
	// DocumentType returns the document type this metadata belongs to.
	DocumentType() DocumentType
}

// WorkMetadata describes an architectural work.
type WorkMetadata struct {
	Year      int    `json:"year,omitempty"`
	Location  string `json:"location,omitempty"`
	Category  string `json:"category,omitempty"`
	Architect string `json:"architect,omitempty"`
}

// ScholarMetadata describes a scholar in the directory.
type ScholarMetadata struct {
	Name           string   `json:"name,omitempty"`
	Institution    string   `json:"institution,omitempty"`
	Region         string   `json:"region,omitempty"`
	Country        string   `json:"country,omitempty"`
	Specialization []string `json:"specialization,omitempty"`
}

// BiographyMetadata describes one section of the biography.
type BiographyMetadata struct {
	Section string `json:"section"`
	Period  string `json:"period,omitempty"`
}

// PublicationMetadata describes a publication.
type PublicationMetadata struct {
	Year      int    `json:"year,omitempty"`
	Author    string `json:"author,omitempty"`
	Publisher string `json:"publisher,omitempty"`
}

func (WorkMetadata) DocumentType() DocumentType        { return TypeWork }
func (ScholarMetadata) DocumentType() DocumentType     { return TypeScholar }
func (BiographyMetadata) DocumentType() DocumentType   { return TypeBiography }
func (PublicationMetadata) DocumentType() DocumentType { return TypePublication }

// YearOf returns the year attribute of md, if it carries one.
func YearOf(md Metadata) (int, bool) {
	switch m := md.(type) {
	case WorkMetadata:
		return m.Year, m.Year != 0
	case PublicationMetadata:
		return m.Year, m.Year != 0
	}
	return 0, false
}

// CategoryOf returns the work category of md, if any.
func CategoryOf(md Metadata) (string, bool) {
	if m, ok := md.(WorkMetadata); ok && m.Category != "" {
		return m.Category, true
	}
	return "", false
}

// RegionOf returns the scholar region of md, if any.
func RegionOf(md Metadata) (string, bool) {
	if m, ok := md.(ScholarMetadata); ok && m.Region != "" {
		return m.Region, true
	}
	return "", false
}

// AuthorOf returns the author-bearing field of md: the architect of a work,
// the name of a scholar, or the author of a publication.
func AuthorOf(md Metadata) (string, bool) {
	var author string
	switch m := md.(type) {
	case WorkMetadata:
		author = m.Architect
	case ScholarMetadata:
		author = m.Name
	case PublicationMetadata:
		author = m.Author
	}
	return author, author != ""
}
