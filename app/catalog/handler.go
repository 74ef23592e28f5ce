package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/brickfolio/figure-catalog/models"
)

type Response struct {
	Total   int      `json:"total"`
	Figures []Figure `json:"figures"`
}

// Category is the flattened summary embedded in figure responses. Embedding
// a summary instead of the model avoids the Category/Figure reference cycle
// in the output by construction.
type Category struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Figure struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Category    Category `json:"category"`
}

type CatalogProvider interface {
	List(ctx context.Context, category, search string) ([]models.Figure, error)
	Get(ctx context.Context, id string) (*models.Figure, error)
}

type CatalogHandler struct {
	service CatalogProvider
}

func NewCatalogHandler(s CatalogProvider) *CatalogHandler {
	return &CatalogHandler{
		service: s,
	}
}

func (h *CatalogHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	search := r.URL.Query().Get("search")

	res, err := h.service.List(r.Context(), category, search)
	if err != nil {
		http.Error(w, "failed to get figures", http.StatusInternalServerError)
		return
	}

	figures := make([]Figure, len(res))
	for i, f := range res {
		figures[i] = mapFigure(f)
	}

	w.Header().Set("Content-Type", "application/json")
	response := Response{
		Total:   len(figures),
		Figures: figures,
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *CatalogHandler) HandleGetFigure(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	figure, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrFigureNotFound) {
			http.Error(w, "Figure not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to get figure", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(mapFigure(*figure)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func mapFigure(f models.Figure) Figure {
	return Figure{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Description,
		Image:       f.ImageFileName,
		Category: Category{
			ID:   f.Category.ID,
			Name: f.Category.Name,
			Slug: f.Category.Slug,
		},
	}
}
