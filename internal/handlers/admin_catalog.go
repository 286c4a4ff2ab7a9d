package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/oklog/ulid/v2"

	"github.com/tendas-mozambique/api/internal/platform/httpx"
	"github.com/tendas-mozambique/api/internal/services"
)

// AdminHandlers exposes the catalog management endpoints. The surface is
// unauthenticated; access control is expected in front of the service.
type AdminHandlers struct {
	catalog          services.CatalogService
	query            services.CatalogQueryService
	imageFolderRoot  string
	maxImageRefBytes int

	mu       sync.Mutex
	sessions map[string]*services.ImageSession
}

// AdminOption customises construction of AdminHandlers.
type AdminOption func(*AdminHandlers)

// WithAdminCatalogService injects the catalog service dependency.
func WithAdminCatalogService(svc services.CatalogService) AdminOption {
	return func(h *AdminHandlers) {
		h.catalog = svc
	}
}

// WithAdminQueryService injects the catalog query dependency.
func WithAdminQueryService(svc services.CatalogQueryService) AdminOption {
	return func(h *AdminHandlers) {
		h.query = svc
	}
}

// WithAdminImageFolderRoot sets the root for suggested local image paths.
func WithAdminImageFolderRoot(root string) AdminOption {
	return func(h *AdminHandlers) {
		h.imageFolderRoot = root
	}
}

// WithAdminMaxImageRefBytes caps pasted data URLs in editor sessions.
func WithAdminMaxImageRefBytes(limit int) AdminOption {
	return func(h *AdminHandlers) {
		h.maxImageRefBytes = limit
	}
}

// NewAdminHandlers constructs handlers for catalog management endpoints.
func NewAdminHandlers(opts ...AdminOption) *AdminHandlers {
	handler := &AdminHandlers{
		sessions: make(map[string]*services.ImageSession),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(handler)
		}
	}
	return handler
}

// Routes registers admin endpoints against the provided router.
func (h *AdminHandlers) Routes(r chi.Router) {
	if r == nil {
		return
	}
	r.Put("/products/{productID}/images", h.updateImages)
	r.Post("/products/{productID}/images/session", h.openSession)
	r.Get("/images/sessions/{sessionID}", h.getSession)
	r.Post("/images/sessions/{sessionID}/ops", h.applySessionOp)
	r.Post("/images/sessions/{sessionID}/save", h.saveSession)
	r.Delete("/images/sessions/{sessionID}", h.cancelSession)
	r.Post("/catalog/reset", h.resetCatalog)
	r.Get("/language", h.getLanguage)
	r.Put("/language", h.setLanguage)
}

type updateImagesRequest struct {
	Images []string `json:"images"`
}

// updateImages replaces a product's image list in one call, bypassing the
// session workflow.
func (h *AdminHandlers) updateImages(w http.ResponseWriter, r *http.Request) {
	if h.catalog == nil {
		httpx.WriteError(r.Context(), w, httpx.NewError("catalog_unavailable", "catalog is unavailable", http.StatusServiceUnavailable))
		return
	}
	productID, err := parseProductID(r)
	if err != nil {
		httpx.WriteError(r.Context(), w, httpx.NewError("invalid_product_id", err.Error(), http.StatusBadRequest))
		return
	}

	var payload updateImagesRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httpx.WriteError(r.Context(), w, httpx.NewError("invalid_request", "request body must be JSON", http.StatusBadRequest))
		return
	}

	if err := h.catalog.UpdateImages(r.Context(), productID, payload.Images); err != nil {
		writeCatalogError(r, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"productId": productID,
		"revision":  h.catalog.Revision(),
	})
}

type sessionResponse struct {
	SessionID string   `json:"sessionId"`
	ProductID int      `json:"productId"`
	Folder    string   `json:"folder"`
	Working   []string `json:"working"`
}

// openSession starts an image editing session seeded from the product's
// current images.
func (h *AdminHandlers) openSession(w http.ResponseWriter, r *http.Request) {
	if h.catalog == nil || h.query == nil {
		httpx.WriteError(r.Context(), w, httpx.NewError("catalog_unavailable", "catalog is unavailable", http.StatusServiceUnavailable))
		return
	}
	productID, err := parseProductID(r)
	if err != nil {
		httpx.WriteError(r.Context(), w, httpx.NewError("invalid_product_id", err.Error(), http.StatusBadRequest))
		return
	}
	product, err := h.query.Product(r.Context(), productID)
	if err != nil {
		writeCatalogError(r, w, err)
		return
	}

	session, err := services.NewImageSession(r.Context(), services.ImageSessionDeps{
		Catalog:          h.catalog,
		FolderRoot:       h.imageFolderRoot,
		MaxImageRefBytes: h.maxImageRefBytes,
	}, product)
	if err != nil {
		httpx.WriteError(r.Context(), w, httpx.NewError("internal_error", "unable to open session", http.StatusInternalServerError))
		return
	}

	sessionID := ulid.Make().String()
	h.mu.Lock()
	h.sessions[sessionID] = session
	h.mu.Unlock()

	httpx.WriteJSON(w, http.StatusCreated, sessionResponse{
		SessionID: sessionID,
		ProductID: productID,
		Folder:    session.Folder(),
		Working:   session.Working(),
	})
}

func (h *AdminHandlers) getSession(w http.ResponseWriter, r *http.Request) {
	sessionID, session, ok := h.lookupSession(r)
	if !ok {
		httpx.WriteError(r.Context(), w, httpx.NewError("session_not_found", "unknown session", http.StatusNotFound))
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"sessionId": sessionID,
		"folder":    session.Folder(),
		"working":   session.Working(),
	})
}

type sessionOpRequest struct {
	Op    string `json:"op"`
	Ref   string `json:"ref,omitempty"`
	Index int    `json:"index,omitempty"`
}

// applySessionOp applies one working-list operation. Supported ops:
// add_local, add_url, add_data, remove, move_up, move_down, reset.
func (h *AdminHandlers) applySessionOp(w http.ResponseWriter, r *http.Request) {
	sessionID, session, ok := h.lookupSession(r)
	if !ok {
		httpx.WriteError(r.Context(), w, httpx.NewError("session_not_found", "unknown session", http.StatusNotFound))
		return
	}

	var payload sessionOpRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httpx.WriteError(r.Context(), w, httpx.NewError("invalid_request", "request body must be JSON", http.StatusBadRequest))
		return
	}

	var err error
	switch payload.Op {
	case "add_local":
		_, err = session.AddLocal()
	case "add_url":
		err = session.AddURL(payload.Ref)
	case "add_data":
		err = session.AddDataURL(payload.Ref)
	case "remove":
		err = session.Remove(payload.Index)
	case "move_up":
		err = session.MoveUp(payload.Index)
	case "move_down":
		err = session.MoveDown(payload.Index)
	case "reset":
		err = session.ResetWorking()
	default:
		httpx.WriteError(r.Context(), w, httpx.NewError("invalid_op", "unknown session operation", http.StatusBadRequest))
		return
	}
	if err != nil {
		writeSessionError(r, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"sessionId": sessionID,
		"working":   session.Working(),
	})
}

func (h *AdminHandlers) saveSession(w http.ResponseWriter, r *http.Request) {
	sessionID, session, ok := h.lookupSession(r)
	if !ok {
		httpx.WriteError(r.Context(), w, httpx.NewError("session_not_found", "unknown session", http.StatusNotFound))
		return
	}

	if err := session.Save(r.Context()); err != nil {
		writeSessionError(r, w, err)
		return
	}

	h.dropSession(sessionID)
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"sessionId": sessionID,
		"saved":     true,
		"revision":  h.catalog.Revision(),
	})
}

func (h *AdminHandlers) cancelSession(w http.ResponseWriter, r *http.Request) {
	sessionID, session, ok := h.lookupSession(r)
	if !ok {
		httpx.WriteError(r.Context(), w, httpx.NewError("session_not_found", "unknown session", http.StatusNotFound))
		return
	}

	if err := session.Cancel(); err != nil {
		writeSessionError(r, w, err)
		return
	}
	h.dropSession(sessionID)
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandlers) resetCatalog(w http.ResponseWriter, r *http.Request) {
	if h.catalog == nil {
		httpx.WriteError(r.Context(), w, httpx.NewError("catalog_unavailable", "catalog is unavailable", http.StatusServiceUnavailable))
		return
	}
	products, err := h.catalog.Reset(r.Context())
	if err != nil {
		writeCatalogError(r, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"products": products,
		"revision": h.catalog.Revision(),
	})
}

func (h *AdminHandlers) getLanguage(w http.ResponseWriter, r *http.Request) {
	if h.catalog == nil {
		httpx.WriteError(r.Context(), w, httpx.NewError("catalog_unavailable", "catalog is unavailable", http.StatusServiceUnavailable))
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"language": h.catalog.Language(r.Context())})
}

type languageRequest struct {
	Language string `json:"language"`
}

func (h *AdminHandlers) setLanguage(w http.ResponseWriter, r *http.Request) {
	if h.catalog == nil {
		httpx.WriteError(r.Context(), w, httpx.NewError("catalog_unavailable", "catalog is unavailable", http.StatusServiceUnavailable))
		return
	}
	var payload languageRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httpx.WriteError(r.Context(), w, httpx.NewError("invalid_request", "request body must be JSON", http.StatusBadRequest))
		return
	}
	if err := h.catalog.SetLanguage(r.Context(), payload.Language); err != nil {
		writeCatalogError(r, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"language": strings.ToLower(strings.TrimSpace(payload.Language))})
}

func (h *AdminHandlers) lookupSession(r *http.Request) (string, *services.ImageSession, bool) {
	sessionID := strings.TrimSpace(chi.URLParam(r, "sessionID"))
	if sessionID == "" {
		return "", nil, false
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	session, ok := h.sessions[sessionID]
	return sessionID, session, ok
}

func (h *AdminHandlers) dropSession(sessionID string) {
	h.mu.Lock()
	delete(h.sessions, sessionID)
	h.mu.Unlock()
}

func writeSessionError(r *http.Request, w http.ResponseWriter, err error) {
	ctx := r.Context()
	switch {
	case errors.Is(err, services.ErrSessionClosed):
		httpx.WriteError(ctx, w, httpx.NewError("session_closed", "session is already saved or cancelled", http.StatusConflict))
	case errors.Is(err, services.ErrEmptyWorkingList):
		httpx.WriteError(ctx, w, httpx.NewError("empty_working_list", "cannot save an empty image list", http.StatusUnprocessableEntity))
	case errors.Is(err, services.ErrImageRefRequired):
		httpx.WriteError(ctx, w, httpx.NewError("image_ref_required", "image reference is required", http.StatusUnprocessableEntity))
	case errors.Is(err, services.ErrInvalidPosition):
		httpx.WriteError(ctx, w, httpx.NewError("invalid_position", "position is out of range", http.StatusUnprocessableEntity))
	default:
		writeCatalogError(r, w, err)
	}
}
