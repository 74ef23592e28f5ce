package importer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"
)

const maxUploadBytes = 8 << 20

// CatalogImporter runs an import over a raw catalog document.
type CatalogImporter interface {
	Import(ctx context.Context, data []byte) (added, total int, err error)
}

// Handler accepts ad-hoc catalog uploads. Requests must present the shared
// import token in the X-Import-Token header.
type Handler struct {
	importer CatalogImporter
	token    string
	log      *zap.Logger
}

func NewHandler(importer CatalogImporter, token string, log *zap.Logger) *Handler {
	return &Handler{
		importer: importer,
		token:    token,
		log:      log,
	}
}

func (h *Handler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	if h.token == "" || r.Header.Get("X-Import-Token") != h.token {
		http.Error(w, "invalid import token", http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "invalid upload", http.StatusBadRequest)
		return
	}
	file, _, err := r.FormFile("catalog")
	if err != nil {
		http.Error(w, "no file selected", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		http.Error(w, "failed to read upload", http.StatusBadRequest)
		return
	}

	added, total, err := h.importer.Import(r.Context(), data)
	if err != nil {
		if errors.Is(err, ErrMalformedDocument) {
			http.Error(w, "invalid catalog document", http.StatusBadRequest)
			return
		}
		h.log.Error("catalog upload import failed", zap.Error(err))
		http.Error(w, "import failed", http.StatusInternalServerError)
		return
	}

	h.log.Info("catalog upload imported", zap.Int("parsed", total), zap.Int("added", added))

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]string{
		"message": fmt.Sprintf("Parsed %d items; added %d new.", total, added),
	}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
