package widgets

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	manifestVersionV1 = "1"
	// ManifestVersion exposes the current manifest format version for tooling.
	ManifestVersion = manifestVersionV1
)

// CatalogManifest models a YAML/JSON manifest extending the widget catalog
// with deployment-specific templates and data sources.
type CatalogManifest struct {
	Version     string           `json:"version" yaml:"version"`
	Name        string           `json:"name,omitempty" yaml:"name,omitempty"`
	Templates   []WidgetTemplate `json:"templates,omitempty" yaml:"templates,omitempty"`
	DataSources []DataSourceSpec `json:"data_sources,omitempty" yaml:"data_sources,omitempty"`
	Source      string           `json:"-" yaml:"-"`
}

// LoadManifestFile reads a manifest from disk, registers it against the
// registry, and returns the document.
func (r *Registry) LoadManifestFile(path string) (*CatalogManifest, error) {
	doc, err := ReadManifest(path)
	if err != nil {
		return nil, err
	}
	if err := r.LoadManifest(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// LoadManifest registers templates and data sources from a decoded manifest.
func (r *Registry) LoadManifest(doc *CatalogManifest) error {
	if doc == nil {
		return fmt.Errorf("widgets: manifest document is nil")
	}
	for _, tpl := range doc.Templates {
		if err := r.RegisterTemplate(tpl); err != nil {
			return fmt.Errorf("widgets: register template %s from %s: %w", tpl.ID, doc.Source, err)
		}
	}
	for _, spec := range doc.DataSources {
		if err := r.RegisterDataSource(spec); err != nil {
			return fmt.Errorf("widgets: register data source %s from %s: %w", spec.ID, doc.Source, err)
		}
	}
	return nil
}

// ReadManifest loads a manifest file from disk without registering it.
func ReadManifest(path string) (*CatalogManifest, error) {
	f, err := os.Open(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("widgets: open manifest %s: %w", path, err)
	}
	defer f.Close()
	doc, err := DecodeManifest(f)
	if err != nil {
		return nil, fmt.Errorf("widgets: decode manifest %s: %w", path, err)
	}
	doc.Source = path
	return doc, nil
}

// DecodeManifest reads a manifest from any reader.
func DecodeManifest(r io.Reader) (*CatalogManifest, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	var doc CatalogManifest
	if err := decoder.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("widgets: manifest is empty")
		}
		return nil, fmt.Errorf("widgets: parse manifest: %w", err)
	}
	if doc.Version == "" {
		doc.Version = manifestVersionV1
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate ensures the manifest satisfies required fields.
func (doc *CatalogManifest) Validate() error {
	if doc.Version != manifestVersionV1 {
		return fmt.Errorf("widgets: unsupported manifest version %q", doc.Version)
	}
	seenTemplates := make(map[string]struct{}, len(doc.Templates))
	for idx, tpl := range doc.Templates {
		if tpl.ID == "" {
			return fmt.Errorf("widgets: manifest template at index %d is missing id", idx)
		}
		if tpl.Kind == "" {
			return fmt.Errorf("widgets: manifest template %s missing kind", tpl.ID)
		}
		if _, exists := seenTemplates[tpl.ID]; exists {
			return fmt.Errorf("widgets: manifest duplicates template id %s", tpl.ID)
		}
		seenTemplates[tpl.ID] = struct{}{}
	}
	seenSources := make(map[string]struct{}, len(doc.DataSources))
	for idx, spec := range doc.DataSources {
		if spec.ID == "" {
			return fmt.Errorf("widgets: manifest data source at index %d is missing id", idx)
		}
		if len(spec.ApplicableTemplateIDs) == 0 {
			return fmt.Errorf("widgets: manifest data source %s must name applicable templates", spec.ID)
		}
		if _, exists := seenSources[spec.ID]; exists {
			return fmt.Errorf("widgets: manifest duplicates data source id %s", spec.ID)
		}
		seenSources[spec.ID] = struct{}{}
	}
	return nil
}
