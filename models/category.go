package models

import (
	"strings"
	"unicode"
)

// Category represents a figure category (e.g. Space Exploration, Medieval).
// It includes a unique name and a unique URL slug derived from it.
type Category struct {
	ID      uint     `gorm:"primaryKey"`
	Name    string   `gorm:"size:64;uniqueIndex;not null"`
	Slug    string   `gorm:"size:64;uniqueIndex;not null"`
	Figures []Figure `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

func (c *Category) TableName() string {
	return "categories"
}

// Slugify derives the URL form of a category name: lower-cased, with only
// letters, digits and spaces kept, and spaces turned into hyphens.
func Slugify(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('-')
		}
	}
	return b.String()
}
