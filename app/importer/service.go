package importer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/brickfolio/figure-catalog/models"
)

// Figure ids map to a 36-character column (wide enough for GUIDs from the
// source data).
const maxFigureIDLen = 36

// ErrMalformedDocument is returned when the import payload is not a valid
// catalog JSON document. Nothing is imported in that case.
var ErrMalformedDocument = errors.New("malformed catalog document")

// CategoryResolver resolves a category name to its persisted row, creating
// the category the first time the name is seen.
type CategoryResolver interface {
	GetOrCreate(ctx context.Context, name string) (*models.Category, error)
}

// FigureWriter persists new figures, skipping ids that already exist.
type FigureWriter interface {
	BulkInsert(ctx context.Context, figures []models.Figure) (int, error)
}

type Service struct {
	figures    FigureWriter
	categories CategoryResolver
}

func NewService(figures FigureWriter, categories CategoryResolver) *Service {
	return &Service{
		figures:    figures,
		categories: categories,
	}
}

// rawItem mirrors the catalog JSON schema. Field names are matched
// case-insensitively by encoding/json and unknown fields are ignored.
type rawItem struct {
	ProductID   string `json:"productId"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	FileName    string `json:"filename"`
}

// Import parses a raw catalog document and persists the entries not already
// in the store. It returns the number of figures actually added and the
// number of entries parsed, which includes entries later skipped for missing
// required fields. Re-running the same document is a no-op: added comes back
// as zero while total stays the same.
func (s *Service) Import(ctx context.Context, data []byte) (added, total int, err error) {
	var items []rawItem
	if err := json.Unmarshal(data, &items); err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	candidates := make([]models.Figure, 0, len(items))
	for _, item := range items {
		id := strings.TrimSpace(item.ProductID)
		name := strings.TrimSpace(item.Name)
		categoryName := strings.TrimSpace(item.Category)
		if id == "" || name == "" || categoryName == "" {
			continue
		}
		if len(id) > maxFigureIDLen {
			// Should not happen with well-formed source data; truncate
			// instead of tripping over the column limit.
			id = id[:maxFigureIDLen]
		}

		category, err := s.categories.GetOrCreate(ctx, categoryName)
		if err != nil {
			if errors.Is(err, models.ErrSlugConflict) {
				// The entry cannot resolve its category; drop it and keep
				// going. It still counts toward the parsed total.
				continue
			}
			return 0, 0, err
		}

		candidates = append(candidates, models.Figure{
			ID:            id,
			Name:          name,
			CategoryID:    category.ID,
			Description:   strings.TrimSpace(item.Description),
			ImageFileName: strings.TrimSpace(item.FileName),
		})
	}

	added, err = s.figures.BulkInsert(ctx, candidates)
	if err != nil {
		return 0, 0, err
	}
	return added, len(items), nil
}
