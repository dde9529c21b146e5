// Package corpus loads the site's works, scholars, and biography sections and
// normalizes them into an immutable snapshot of searchable documents.
package corpus

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

//go:embed data/content.yaml
var defaultContent []byte

// Work is an architectural work as supplied by the content provider.
type Work struct {
	ID          string   `yaml:"id" toml:"id"`
	Title       string   `yaml:"title" toml:"title"`
	Description string   `yaml:"description" toml:"description"`
	Excerpt     string   `yaml:"excerpt" toml:"excerpt"`
	Year        int      `yaml:"year" toml:"year"`
	Location    string   `yaml:"location" toml:"location"`
	Category    string   `yaml:"category" toml:"category"`
	Architect   string   `yaml:"architect" toml:"architect"`
	Tags        []string `yaml:"tags" toml:"tags"`
}

// Scholar is a directory entry as supplied by the content provider.
type Scholar struct {
	ID             string   `yaml:"id" toml:"id"`
	Name           string   `yaml:"name" toml:"name"`
	Biography      string   `yaml:"biography" toml:"biography"`
	Excerpt        string   `yaml:"excerpt" toml:"excerpt"`
	Institution    string   `yaml:"institution" toml:"institution"`
	Region         string   `yaml:"region" toml:"region"`
	Country        string   `yaml:"country" toml:"country"`
	Specialization []string `yaml:"specialization" toml:"specialization"`
	Tags           []string `yaml:"tags" toml:"tags"`
	Publications   []string `yaml:"publications" toml:"publications"`
}

// BiographySection is one keyed section of the biography.
type BiographySection struct {
	Key      string   `yaml:"key" toml:"key"`
	Title    string   `yaml:"title" toml:"title"`
	Content  string   `yaml:"content" toml:"content"`
	Excerpt  string   `yaml:"excerpt" toml:"excerpt"`
	Period   string   `yaml:"period" toml:"period"`
	Keywords []string `yaml:"keywords" toml:"keywords"`
}

// Labels maps facet value IDs to display names.
type Labels struct {
	Categories map[string]string `yaml:"categories" toml:"categories"`
	Regions    map[string]string `yaml:"regions" toml:"regions"`
}

// Content is the full static content provided at load time.
type Content struct {
	Labels    Labels             `yaml:"labels" toml:"labels"`
	Works     []Work             `yaml:"works" toml:"works"`
	Scholars  []Scholar          `yaml:"scholars" toml:"scholars"`
	Biography []BiographySection `yaml:"biography" toml:"biography"`
}

// ParseContent parses YAML (or JSON) content.
func ParseContent(data []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse content: %w", err)
	}
	return &c, nil
}

// ParseTOMLContent parses TOML content.
func ParseTOMLContent(data []byte) (*Content, error) {
	var c Content
	if err := toml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse content: %w", err)
	}
	return &c, nil
}

// LoadContentFile reads and parses the content file at path. Files ending in
// .toml are parsed as TOML, everything else as YAML.
func LoadContentFile(path string) (*Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return ParseTOMLContent(data)
	}
	return ParseContent(data)
}

// DefaultContent returns the content embedded in the binary.
func DefaultContent() (*Content, error) {
	return ParseContent(defaultContent)
}
