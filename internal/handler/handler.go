package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"recipebox/internal/adapter"
	"recipebox/internal/codec"
	"recipebox/internal/domain"
	"recipebox/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Request body caps
const (
	maxBodyBytes   = 64 << 10
	maxImportBytes = 4 << 20
)

// Services bundles what the handlers need
type Services struct {
	Session *service.Session
	Search  *service.SearchService
	Recipe  *service.RecipeService
	List    *service.ListService
	Likes   *service.LikesService
	Source  adapter.RecipeSource
}

// Handler serves the recipebox API
type Handler struct {
	svc    Services
	logger *zap.Logger
}

// New creates a new handler
func New(svc Services, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{svc: svc, logger: logger.Named("handler")}
}

// ErrorResponse is the body of every error reply
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Request bodies

// ServingsRequest steps the current recipe's servings
type ServingsRequest struct {
	Direction string `json:"direction" validate:"required,oneof=inc dec"`
}

// AddItemRequest adds one shopping list item
type AddItemRequest struct {
	Count      float64 `json:"count" validate:"gte=0"`
	Unit       string  `json:"unit" validate:"max=20"`
	Ingredient string  `json:"ingredient" validate:"required,max=200"`
}

// UpdateCountRequest sets a list item's count
type UpdateCountRequest struct {
	Count *float64 `json:"count" validate:"required,gte=0"`
}

// LikeRequest likes a recipe by id
type LikeRequest struct {
	ID string `json:"id" validate:"required"`
}

// Health reports liveness
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

// GetState returns the whole session state
func (h *Handler) GetState(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, h.svc.Session.Snapshot(), http.StatusOK)
}

// ResetState empties the shopping list and likes
func (h *Handler) ResetState(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Session.Reset(r.Context()); err != nil {
		h.writeServiceError(w, "Failed to reset state", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Search runs a query when q is given, then returns the requested page
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	page := 1
	if p := r.URL.Query().Get("page"); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil {
			h.writeError(w, "Invalid page", err.Error(), http.StatusBadRequest)
			return
		}
		page = n
	}

	if q := r.URL.Query().Get("q"); q != "" {
		result, err := h.svc.Search.Search(r.Context(), q)
		if err != nil {
			h.writeServiceError(w, "Search failed", err)
			return
		}
		if page == 1 {
			h.writeJSON(w, result, http.StatusOK)
			return
		}
	}

	result, err := h.svc.Search.Page(page)
	if err != nil {
		h.writeServiceError(w, "Failed to get page", err)
		return
	}
	h.writeJSON(w, result, http.StatusOK)
}

// LoadRecipe fetches a recipe and makes it current
func (h *Handler) LoadRecipe(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.Recipe.Load(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeServiceError(w, "Failed to load recipe", err)
		return
	}
	h.writeJSON(w, view, http.StatusOK)
}

// CurrentRecipe returns the current recipe
func (h *Handler) CurrentRecipe(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.Recipe.Current()
	if err != nil {
		h.writeServiceError(w, "No current recipe", err)
		return
	}
	h.writeJSON(w, view, http.StatusOK)
}

// UpdateServings steps the current recipe's servings
func (h *Handler) UpdateServings(w http.ResponseWriter, r *http.Request) {
	var req ServingsRequest
	if !h.decode(w, r, &req) {
		return
	}
	view, err := h.svc.Recipe.UpdateServings(r.Context(), domain.ServingsDirection(req.Direction))
	if err != nil {
		h.writeServiceError(w, "Failed to update servings", err)
		return
	}
	h.writeJSON(w, view, http.StatusOK)
}

// AddRecipeToList adds the current recipe's ingredients to the list
func (h *Handler) AddRecipeToList(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List.AddRecipe(r.Context())
	if err != nil {
		h.writeServiceError(w, "Failed to add ingredients", err)
		return
	}
	h.writeJSON(w, items, http.StatusCreated)
}

// ToggleLike likes or unlikes the current recipe
func (h *Handler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	like, liked, err := h.svc.Likes.Toggle(r.Context())
	if err != nil {
		h.writeServiceError(w, "Failed to toggle like", err)
		return
	}
	h.writeJSON(w, map[string]interface{}{"like": like, "liked": liked}, http.StatusOK)
}

// ListItems returns the shopping list
func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, h.svc.List.Items(), http.StatusOK)
}

// AddItem adds one item to the list
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if !h.decode(w, r, &req) {
		return
	}
	item, err := h.svc.List.Add(r.Context(), req.Count, req.Unit, req.Ingredient)
	if err != nil {
		h.writeServiceError(w, "Failed to add item", err)
		return
	}
	h.writeJSON(w, item, http.StatusCreated)
}

// UpdateItem sets a list item's count
func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req UpdateCountRequest
	if !h.decode(w, r, &req) {
		return
	}
	item, err := h.svc.List.UpdateCount(r.Context(), chi.URLParam(r, "id"), *req.Count)
	if err != nil {
		h.writeServiceError(w, "Failed to update item", err)
		return
	}
	h.writeJSON(w, item, http.StatusOK)
}

// DeleteItem removes a list item
func (h *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.List.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeServiceError(w, "Failed to delete item", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListLikes returns the likes
func (h *Handler) ListLikes(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, h.svc.Likes.All(), http.StatusOK)
}

// AddLike likes a recipe by id
func (h *Handler) AddLike(w http.ResponseWriter, r *http.Request) {
	var req LikeRequest
	if !h.decode(w, r, &req) {
		return
	}
	like, err := h.svc.Likes.Like(r.Context(), h.svc.Source, req.ID)
	if err != nil {
		h.writeServiceError(w, "Failed to add like", err)
		return
	}
	h.writeJSON(w, like, http.StatusCreated)
}

// DeleteLike removes a like
func (h *Handler) DeleteLike(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Likes.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeServiceError(w, "Failed to delete like", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Export writes the list and likes in the requested format
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	c, err := codec.ForFormat(format)
	if err != nil {
		h.writeServiceError(w, "Failed to export", err)
		return
	}

	contentType := "application/json"
	if c.Format() == "yaml" {
		contentType = "application/x-yaml"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", "attachment; filename=recipebox."+format)

	if err := c.Export(h.svc.Session.Export(), w); err != nil {
		// Can't write error response as we already set headers
		h.logger.Error("failed to export", zap.String("format", format), zap.Error(err))
	}
}

// Import replaces the list and likes from the request body
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	body := http.MaxBytesReader(w, r.Body, maxImportBytes)
	snap, err := h.svc.Session.ImportFrom(r.Context(), body, chi.URLParam(r, "format"))
	if err != nil {
		h.writeServiceError(w, "Failed to import", err)
		return
	}
	h.writeJSON(w, map[string]int{"list": len(snap.List), "likes": len(snap.Likes)}, http.StatusOK)
}

// Helper methods

// decode reads a JSON body into req and validates it, writing a 4xx on failure
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(req); err != nil {
		status := http.StatusBadRequest
		if tooLarge(err) {
			status = http.StatusRequestEntityTooLarge
		}
		h.writeError(w, "Invalid request body", err.Error(), status)
		return false
	}
	if err := validateStruct(req); err != nil {
		h.writeError(w, "Validation error", err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

// statusFor maps service errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case tooLarge(err):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, adapter.ErrNoResults):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateID),
		errors.Is(err, service.ErrNoRecipe),
		errors.Is(err, service.ErrNoSearch):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidRecord),
		errors.Is(err, domain.ErrInvalidServings),
		errors.Is(err, domain.ErrInvalidCount),
		errors.Is(err, domain.ErrInvalidPage),
		errors.Is(err, domain.ErrEmptyQuery),
		errors.Is(err, codec.ErrUnsupportedFormat):
		return http.StatusBadRequest
	case errors.Is(err, adapter.ErrUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func tooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}

func (h *Handler) writeServiceError(w http.ResponseWriter, message string, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error(message, zap.Error(err))
	}
	h.writeError(w, message, err.Error(), status)
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON", zap.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, error, details string, statusCode int) {
	h.writeJSON(w, ErrorResponse{Error: error, Details: details}, statusCode)
}
