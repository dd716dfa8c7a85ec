package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/ettle/strcase"
	"gopkg.in/yaml.v3"

	widgets "github.com/goliatone/go-advisor-dashboard/components/widgets"
	"github.com/goliatone/go-advisor-dashboard/pkg/localstore"
)

type cli struct {
	Seed     seedCmd     `cmd:"" help:"Write the starter widgets into an empty widget store."`
	List     listCmd     `cmd:"" help:"List saved widgets with their resolved configuration."`
	Scaffold scaffoldCmd `cmd:"" help:"Scaffold a data-source manifest entry."`
}

type seedCmd struct {
	Store string `default:"advisor.db" type:"path" help:"Path to the widget store database."`
}

type listCmd struct {
	Store string `default:"advisor.db" type:"path" help:"Path to the widget store database."`
	Page  string `help:"Restrict output to widgets visible on one page."`
	JSON  bool   `help:"Emit raw JSON instead of a summary line per widget."`
}

type scaffoldCmd struct {
	ID           string   `required:"" help:"Data-source identifier (e.g. bond-maturity)."`
	Name         string   `required:"" help:"Display name for the data source."`
	Description  string   `help:"One-line description used in catalogs."`
	Category     string   `default:"customer-event" help:"Data-source category (customer-event, metric, schedule)."`
	Template     []string `required:"" help:"Template ids the data source applies to (use multiple --template flags)."`
	BaseTable    string   `default:"customer_scenario_events" help:"Backend table the query reads from."`
	Scenario     []string `help:"Scenario codes the query filters by."`
	Status       []string `help:"Status values the query filters by."`
	ManifestPath string   `required:"" type:"path" help:"Path to the catalog manifest YAML file to update."`
	Overwrite    bool     `help:"Overwrite an existing manifest entry with the same id."`
}

func main() {
	ctx := kong.Parse(&cli{},
		kong.Description("Widget catalog utility for the advisor dashboard."),
		kong.UsageOnError(),
	)
	err := ctx.Run(context.Background())
	ctx.FatalIfErrorf(err)
}

func (cmd *seedCmd) Run(ctx context.Context) error {
	service, closer, err := openService(cmd.Store)
	if err != nil {
		return err
	}
	defer closer()

	count, err := service.SeedWidgets(ctx)
	if err != nil {
		return err
	}
	if count == 0 {
		fmt.Fprintln(os.Stdout, "store already has widgets, nothing seeded")
		return nil
	}
	fmt.Fprintf(os.Stdout, "✓ Seeded %d widgets into %s\n", count, cmd.Store)
	return nil
}

func (cmd *listCmd) Run(ctx context.Context) error {
	service, closer, err := openService(cmd.Store)
	if err != nil {
		return err
	}
	defer closer()

	var list []widgets.SavedWidget
	if cmd.Page != "" {
		page, ok := widgets.ParsePage(cmd.Page)
		if !ok {
			return fmt.Errorf("dashctl: unknown page %q", cmd.Page)
		}
		list, err = service.AvailableWidgets(ctx, page)
	} else {
		list, err = service.ListWidgets(ctx)
	}
	if err != nil {
		return err
	}

	if cmd.JSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(list)
	}
	for _, w := range list {
		cfg := service.ResolveRuntimeConfig(w)
		pages := make([]string, 0, len(w.Pages))
		for _, p := range w.Pages {
			pages = append(pages, string(p))
		}
		fmt.Fprintf(os.Stdout, "%s\t%s\t%s\t%dx%d\t[%s]\n",
			w.ID, w.TemplateID, w.Title,
			cfg.GridSize.Width, cfg.GridSize.Height,
			strings.Join(pages, ","))
	}
	return nil
}

func (cmd *scaffoldCmd) Run(_ context.Context) error {
	if strings.TrimSpace(cmd.ID) == "" {
		return errors.New("dashctl: data-source id is required")
	}
	manifestPath, err := filepath.Abs(cmd.ManifestPath)
	if err != nil {
		return fmt.Errorf("dashctl: resolve manifest path: %w", err)
	}
	doc, err := loadOrInitManifest(manifestPath)
	if err != nil {
		return err
	}
	if !cmd.Overwrite {
		for _, src := range doc.DataSources {
			if src.ID == cmd.ID {
				return fmt.Errorf("dashctl: manifest already defines data source %s (use --overwrite to replace)", cmd.ID)
			}
		}
	}

	name := cmd.Name
	if name == "" {
		name = strcase.ToCase(cmd.ID, strcase.TitleCase, ' ')
	}
	entry := widgets.DataSourceSpec{
		ID:                    cmd.ID,
		Name:                  name,
		Description:           cmd.Description,
		Category:              widgets.Category(cmd.Category),
		ApplicableTemplateIDs: cmd.Template,
		Query: widgets.QueryDescription{
			BaseTable:    cmd.BaseTable,
			StatusFilter: cmd.Status,
		},
	}
	if len(cmd.Scenario) > 0 {
		entry.Query.ScenarioFilter = &widgets.ScenarioFilter{Codes: cmd.Scenario}
	}

	if cmd.Overwrite {
		replaced := false
		for idx := range doc.DataSources {
			if doc.DataSources[idx].ID == cmd.ID {
				doc.DataSources[idx] = entry
				replaced = true
				break
			}
		}
		if !replaced {
			doc.DataSources = append(doc.DataSources, entry)
		}
	} else {
		doc.DataSources = append(doc.DataSources, entry)
	}

	sort.Slice(doc.DataSources, func(i, j int) bool {
		return doc.DataSources[i].ID < doc.DataSources[j].ID
	})

	if err := writeManifest(manifestPath, doc); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "✓ Added %s to %s\n", cmd.ID, manifestPath)
	return nil
}

func openService(path string) (*widgets.Service, func(), error) {
	db, err := localstore.NewBuntDB(path)
	if err != nil {
		return nil, nil, fmt.Errorf("dashctl: open store %s: %w", path, err)
	}
	store, err := widgets.NewStore(db)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	selections, err := widgets.NewSelectionStore(db)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	service := widgets.NewService(widgets.Options{
		Widgets:    store,
		Selections: selections,
	})
	return service, func() { db.Close() }, nil
}

func loadOrInitManifest(path string) (*widgets.CatalogManifest, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			doc := &widgets.CatalogManifest{
				Version:     widgets.ManifestVersion,
				DataSources: []widgets.DataSourceSpec{},
				Source:      path,
			}
			return doc, nil
		}
		return nil, fmt.Errorf("dashctl: stat manifest: %w", err)
	}
	return widgets.ReadManifest(path)
}

func writeManifest(path string, doc *widgets.CatalogManifest) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("dashctl: mkdir %s: %w", filepath.Dir(path), err)
	}
	tmpDoc := *doc
	tmpDoc.Source = ""

	file, err := os.Create(path) //nolint:gosec
	if err != nil {
		return fmt.Errorf("dashctl: create manifest %s: %w", path, err)
	}
	defer file.Close()

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(2)
	defer encoder.Close()
	if err := encoder.Encode(tmpDoc); err != nil {
		return fmt.Errorf("dashctl: write manifest: %w", err)
	}
	return nil
}
