package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStageNewFigures(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("skips ids already in the store", func(t *testing.T) {
		existing := map[string]struct{}{"LF-0001": {}}
		staged := stageNewFigures(existing, []Figure{
			{ID: "LF-0001", Name: "Old"},
			{ID: "LF-0002", Name: "New"},
		}, now)

		assert.Len(t, staged, 1)
		assert.Equal(t, "LF-0002", staged[0].ID)
	})

	t.Run("keeps only the first of duplicate ids within a batch", func(t *testing.T) {
		staged := stageNewFigures(map[string]struct{}{}, []Figure{
			{ID: "LF-0001", Name: "Space Ranger"},
			{ID: "LF-0001", Name: "Dup"},
			{ID: "LF-0002", Name: "Knight"},
		}, now)

		assert.Len(t, staged, 2)
		assert.Equal(t, "LF-0001", staged[0].ID)
		assert.Equal(t, "Space Ranger", staged[0].Name)
		assert.Equal(t, "LF-0002", staged[1].ID)
	})

	t.Run("stamps both timestamps with the staging time", func(t *testing.T) {
		staged := stageNewFigures(map[string]struct{}{}, []Figure{{ID: "LF-0003"}}, now)

		assert.Len(t, staged, 1)
		assert.Equal(t, now, staged[0].CreatedAt)
		assert.Equal(t, now, staged[0].LastUpdatedAt)
	})

	t.Run("preserves input order", func(t *testing.T) {
		staged := stageNewFigures(map[string]struct{}{}, []Figure{
			{ID: "LF-0003"},
			{ID: "LF-0001"},
			{ID: "LF-0002"},
		}, now)

		ids := make([]string, len(staged))
		for i, f := range staged {
			ids[i] = f.ID
		}
		assert.Equal(t, []string{"LF-0003", "LF-0001", "LF-0002"}, ids)
	})

	t.Run("nothing to stage", func(t *testing.T) {
		existing := map[string]struct{}{"LF-0001": {}}
		staged := stageNewFigures(existing, []Figure{{ID: "LF-0001"}}, now)

		assert.Empty(t, staged)
	})
}
