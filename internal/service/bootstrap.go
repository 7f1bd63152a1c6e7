package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/company-sales-api/internal/graph"
	"github.com/company-sales-api/internal/repository"
	"github.com/company-sales-api/internal/seed"
)

// LoadGraph восстанавливает граф из хранилища. Пустое хранилище при seedIfEmpty
// заполняется демонстрационными данными Acme Inc.
func LoadGraph(ctx context.Context, snapshots repository.SnapshotRepository, seedIfEmpty bool, logger *slog.Logger) (*graph.Graph, error) {
	snapshot, err := snapshots.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	if snapshot.IsEmpty() && seedIfEmpty {
		g, err := seed.NewGraph()
		if err != nil {
			return nil, fmt.Errorf("failed to build sample data: %w", err)
		}
		if err := snapshots.Import(ctx, g.Snapshot()); err != nil {
			return nil, fmt.Errorf("failed to import sample data: %w", err)
		}

		logger.Info("storage seeded with sample data", slog.String("company", seed.CompanyName))
		return g, nil
	}

	g, err := graph.FromSnapshot(snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to restore graph: %w", err)
	}

	stats := g.Stats()
	logger.Info("graph restored from storage",
		slog.Int("companies", stats.Companies),
		slog.Int("departments", stats.Departments),
		slog.Int("employees", stats.Employees),
		slog.Int("sales", stats.Sales),
	)
	return g, nil
}
