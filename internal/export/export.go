// Package export serializes enriched leads to the run's output
// artifacts: JSON, CSV, XLSX, and an HTML dashboard.
package export

import (
	"context"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/leadgen-cli/internal/model"
)

// Output artifact file names.
const (
	JSONFileName      = "leads.json"
	CSVFileName       = "leads.csv"
	XLSXFileName      = "leads.xlsx"
	DashboardFileName = "dashboard.html"
)

// WriteAll writes every output artifact for the batch into outDir. The
// four writers are independent, so they run concurrently; lead order
// within each artifact matches the batch order.
func WriteAll(ctx context.Context, leads []model.EnrichedLead, outDir string) error {
	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error { return WriteJSON(leads, filepath.Join(outDir, JSONFileName)) })
	g.Go(func() error { return WriteCSV(leads, filepath.Join(outDir, CSVFileName)) })
	g.Go(func() error { return WriteXLSX(leads, filepath.Join(outDir, XLSXFileName)) })
	g.Go(func() error { return WriteDashboard(leads, filepath.Join(outDir, DashboardFileName)) })

	if err := g.Wait(); err != nil {
		return err
	}

	zap.L().Info("export complete",
		zap.Int("leads", len(leads)),
		zap.String("output_dir", outDir),
	)
	return nil
}
