package widgets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeManifest(t *testing.T) {
	const payload = `
version: "1"
name: branch-pack
templates:
  - id: branch-banner
    kind: summary-card
    name: Branch Banner
    default_grid_size:
      width: 2
      height: 1
data_sources:
  - id: branch-maturity
    name: Branch Maturities
    category: customer-event
    applicable_templates: ["action-list"]
    query:
      base_table: customer_scenario_events
      scenario_filter:
        codes: ["DEPOSIT_MATURITY"]
    default_sort:
      field: event_date
      direction: asc
`
	doc, err := DecodeManifest(strings.NewReader(payload))
	require.NoError(t, err)
	require.Len(t, doc.Templates, 1)
	require.Len(t, doc.DataSources, 1)

	assert.Equal(t, "branch-banner", doc.Templates[0].ID)
	assert.Equal(t, KindSummaryCard, doc.Templates[0].Kind)
	assert.Equal(t, GridSize{Width: 2, Height: 1}, doc.Templates[0].DefaultGridSize)

	src := doc.DataSources[0]
	assert.Equal(t, "branch-maturity", src.ID)
	assert.Equal(t, CategoryCustomerEvent, src.Category)
	require.NotNil(t, src.Query.ScenarioFilter)
	assert.Equal(t, []string{"DEPOSIT_MATURITY"}, src.Query.ScenarioFilter.Codes)
	assert.Equal(t, SortSpec{Field: "event_date", Direction: "asc"}, src.DefaultSort)
}

func TestRegistryLoadManifest(t *testing.T) {
	doc := &CatalogManifest{
		Version: manifestVersionV1,
		DataSources: []DataSourceSpec{
			{
				ID:                    "branch-vip",
				Name:                  "Branch VIP Watch",
				Category:              CategoryCustomerEvent,
				ApplicableTemplateIDs: []string{"action-list"},
			},
		},
	}
	reg := NewEmptyRegistry()
	require.NoError(t, reg.LoadManifest(doc))

	spec, ok := reg.DataSource("branch-vip")
	require.True(t, ok)
	assert.Equal(t, "Branch VIP Watch", spec.Name)
}

func TestManifestDuplicateIDs(t *testing.T) {
	const payload = `
data_sources:
  - id: dup
    applicable_templates: ["action-list"]
  - id: dup
    applicable_templates: ["action-list"]
`
	_, err := DecodeManifest(strings.NewReader(payload))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicates data source id")
}

func TestManifestRejectsUnknownVersion(t *testing.T) {
	const payload = `
version: "9"
templates:
  - id: future
    kind: summary-card
`
	_, err := DecodeManifest(strings.NewReader(payload))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported manifest version")
}

func TestReadManifestFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	const payload = `
version: "1"
data_sources:
  - id: disk-source
    name: Disk Source
    category: metric
    applicable_templates: ["summary-card"]
`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	doc, err := ReadManifest(path)
	require.NoError(t, err)
	assert.Equal(t, path, doc.Source)
	require.Len(t, doc.DataSources, 1)
	assert.Equal(t, "disk-source", doc.DataSources[0].ID)
}
