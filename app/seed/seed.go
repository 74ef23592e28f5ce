package seed

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
)

// CatalogImporter runs an import over a raw catalog document.
type CatalogImporter interface {
	Import(ctx context.Context, data []byte) (added, total int, err error)
}

// FigureProbe reports whether any figures exist yet.
type FigureProbe interface {
	IsEmpty(ctx context.Context) (bool, error)
}

// Run imports the seed catalog file once at startup, before traffic is
// served. A blank or missing path is not an error: the server starts with
// whatever data is already there. An already-populated store skips the
// import entirely.
func Run(ctx context.Context, log *zap.Logger, path string, figures FigureProbe, importer CatalogImporter) error {
	if path == "" {
		log.Warn("seed data path not set, skipping import")
		return nil
	}

	empty, err := figures.IsEmpty(ctx)
	if err != nil {
		return fmt.Errorf("check catalog: %w", err)
	}
	if !empty {
		log.Info("catalog already populated, skipping seed import")
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Warn("seed data path not found, skipping import", zap.String("path", path))
			return nil
		}
		return fmt.Errorf("read seed data: %w", err)
	}

	added, total, err := importer.Import(ctx, data)
	if err != nil {
		return fmt.Errorf("seed import: %w", err)
	}
	log.Info("startup import complete", zap.Int("parsed", total), zap.Int("added", added))
	return nil
}
