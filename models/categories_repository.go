package models

import (
	"context"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ErrSlugConflict is returned when a new category name derives a slug that
// is already taken by a category with a different name.
var ErrSlugConflict = errors.New("category slug conflict")

type CategoriesRepository struct {
	db *gorm.DB
}

func NewCategoriesRepository(db *gorm.DB) *CategoriesRepository {
	return &CategoriesRepository{
		db: db,
	}
}

// GetByName looks up a category by exact, case-sensitive name.
// A missing category is not an error: both return values are nil.
func (r *CategoriesRepository) GetByName(ctx context.Context, name string) (*Category, error) {
	var category Category
	if err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

// GetOrCreate returns the category with the given name, creating it with a
// derived slug when absent. Two callers racing on the same name are resolved
// through the unique constraint: the loser re-fetches the winner's row. A
// unique violation with still no row under the name means a different name
// produced the same slug, reported as ErrSlugConflict.
func (r *CategoriesRepository) GetOrCreate(ctx context.Context, name string) (*Category, error) {
	if existing, err := r.GetByName(ctx, name); err != nil || existing != nil {
		return existing, err
	}

	category := Category{Name: name, Slug: Slugify(name)}
	if err := r.db.WithContext(ctx).Create(&category).Error; err != nil {
		if !isUniqueViolation(err) {
			return nil, err
		}
		existing, lookupErr := r.GetByName(ctx, name)
		if lookupErr != nil {
			return nil, lookupErr
		}
		if existing == nil {
			return nil, fmt.Errorf("category %q: %w", name, ErrSlugConflict)
		}
		return existing, nil
	}
	return &category, nil
}

// GetAllCategories returns every category, ordered alphabetically by name.
func (r *CategoriesRepository) GetAllCategories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// NameIDMap returns a point-in-time snapshot of category name to id, for
// bulk lookups that should not hit the database once per name. Currently
// unused by the import path, which resolves categories one by one.
func (r *CategoriesRepository) NameIDMap(ctx context.Context) (map[string]uint, error) {
	var categories []Category
	if err := r.db.WithContext(ctx).
		Select("id", "name").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	m := make(map[string]uint, len(categories))
	for _, c := range categories {
		m[c.Name] = c.ID
	}
	return m, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
