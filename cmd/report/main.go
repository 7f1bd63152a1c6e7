// Команда report печатает аналитические отчёты по продажам в виде таблиц.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/company-sales-api/internal/config"
	"github.com/company-sales-api/internal/graph"
	"github.com/company-sales-api/internal/report"
	"github.com/company-sales-api/internal/repository"
	"github.com/company-sales-api/internal/seed"
	"github.com/company-sales-api/internal/storage"
	"github.com/spf13/cobra"
	gormlogger "gorm.io/gorm/logger"
)

type options struct {
	seed        bool
	format      string
	top         int
	departments []string
	minTotal    float64
	limit       int
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "report [section...]",
		Short: "Print sales reports for the organisation graph",
		Long: "Print sales reports. Without arguments all sections are printed in order.\n" +
			"Sections: " + strings.Join(sectionNames(), ", "),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.format != "table" && opts.format != "json" {
				return fmt.Errorf("unknown format %q, expected table or json", opts.format)
			}

			sections, err := selectSections(args)
			if err != nil {
				return err
			}

			g, err := loadGraph(cmd.Context(), opts)
			if err != nil {
				return err
			}

			criteria := report.SearchCriteria{
				Departments: opts.departments,
				MinTotal:    opts.minTotal,
				Limit:       opts.limit,
			}

			for _, s := range sections {
				if err := render(out, s, g, opts, criteria); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.seed, "seed", false, "use built-in sample data instead of the database")
	cmd.Flags().StringVar(&opts.format, "format", "table", "output format: table or json")
	cmd.Flags().IntVar(&opts.top, "top", 3, "number of sales in the top-sales section")
	cmd.Flags().StringSliceVar(&opts.departments, "departments", nil, "department filter for the search section")
	cmd.Flags().Float64Var(&opts.minTotal, "min-total", 0, "exclusive lower bound of total sales for the search section")
	cmd.Flags().IntVar(&opts.limit, "limit", 0, "maximum rows in the search section, 0 for no limit")

	return cmd
}

func selectSections(args []string) ([]section, error) {
	if len(args) == 0 {
		return sections, nil
	}

	selected := make([]section, 0, len(args))
	for _, name := range args {
		i := slices.IndexFunc(sections, func(s section) bool { return s.name == name })
		if i < 0 {
			return nil, fmt.Errorf("unknown section %q, expected one of: %s", name, strings.Join(sectionNames(), ", "))
		}
		selected = append(selected, sections[i])
	}
	return selected, nil
}

func loadGraph(ctx context.Context, opts *options) (*graph.Graph, error) {
	if opts.seed {
		return seed.NewGraph()
	}

	cfg := config.Load()
	db, err := storage.Open(cfg.Database, gormlogger.Silent)
	if err != nil {
		return nil, err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}
	if err := storage.Migrate(db, cfg.Database.Driver); err != nil {
		return nil, err
	}

	snapshot, err := repository.NewSnapshotRepository(db).Load(ctx)
	if err != nil {
		return nil, err
	}
	if snapshot.IsEmpty() && cfg.SeedSampleData {
		slog.Warn("storage is empty, falling back to sample data")
		return seed.NewGraph()
	}
	return graph.FromSnapshot(snapshot)
}

func render(out io.Writer, s section, g *graph.Graph, opts *options, criteria report.SearchCriteria) error {
	if opts.format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{s.name: s.data(g, opts.top, criteria)})
	}

	fmt.Fprintf(out, "\n== %s ==\n", s.title)
	s.table(out, g, opts.top, criteria)
	return nil
}
