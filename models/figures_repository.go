package models

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrFigureNotFound is returned when a figure is not found.
var ErrFigureNotFound = errors.New("figure not found")

type FigureFilters struct {
	Category string // matches the category slug or its exact name
	Search   string // case-insensitive substring of the figure name
}

type FiguresRepository struct {
	db *gorm.DB
}

func NewFiguresRepository(db *gorm.DB) *FiguresRepository {
	return &FiguresRepository{
		db: db,
	}
}

func (r *FiguresRepository) IsEmpty(ctx context.Context) (bool, error) {
	count, err := r.Count(ctx)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

func (r *FiguresRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&Figure{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// BulkInsert persists the candidates whose ids are not yet in the store and
// returns how many rows were actually written. Existing ids are loaded once
// up front instead of one query per candidate, and the same in-memory set
// catches duplicate ids within the batch itself. The staged rows go out in a
// single insert with ON CONFLICT DO NOTHING, so a concurrent import racing
// on the same id simply counts the loser's row as not added.
func (r *FiguresRepository) BulkInsert(ctx context.Context, candidates []Figure) (int, error) {
	if len(candidates) == 0 {
		return 0, nil
	}

	var ids []string
	if err := r.db.WithContext(ctx).Model(&Figure{}).Pluck("id", &ids).Error; err != nil {
		return 0, err
	}
	existing := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		existing[id] = struct{}{}
	}

	staged := stageNewFigures(existing, candidates, time.Now().UTC())
	if len(staged) == 0 {
		return 0, nil
	}

	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&staged)
	if res.Error != nil {
		return 0, res.Error
	}
	return int(res.RowsAffected), nil
}

// stageNewFigures keeps the candidates whose id is not in existing, stamps
// their timestamps, and records each kept id so later duplicates within the
// same batch are skipped too. Input order is preserved.
func stageNewFigures(existing map[string]struct{}, candidates []Figure, now time.Time) []Figure {
	staged := make([]Figure, 0, len(candidates))
	for _, f := range candidates {
		if _, ok := existing[f.ID]; ok {
			continue
		}
		f.CreatedAt = now
		f.LastUpdatedAt = now
		staged = append(staged, f)
		existing[f.ID] = struct{}{}
	}
	return staged
}

// GetFilteredFigures returns the full filtered set, ordered ascending by
// figure id. The category filter accepts either the slug or the display
// name; the search filter is a case-insensitive substring match on the
// figure name. No pagination: the catalog is small by construction.
func (r *FiguresRepository) GetFilteredFigures(ctx context.Context, filters FigureFilters) ([]Figure, error) {
	query := r.db.WithContext(ctx).Model(&Figure{}).
		Joins("LEFT JOIN categories ON categories.id = figures.category_id").
		Preload("Category")

	if filters.Category != "" {
		query = query.Where("categories.slug = ? OR categories.name = ?", filters.Category, filters.Category)
	}
	if filters.Search != "" {
		query = query.Where("figures.name ILIKE ?", "%"+filters.Search+"%")
	}

	var figures []Figure
	if err := query.Order("figures.id ASC").Find(&figures).Error; err != nil {
		return nil, err
	}
	return figures, nil
}

func (r *FiguresRepository) GetByID(ctx context.Context, id string) (*Figure, error) {
	var figure Figure
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Where("id = ?", id).
		First(&figure).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFigureNotFound
		}
		return nil, err // Other DB error
	}
	return &figure, nil
}
