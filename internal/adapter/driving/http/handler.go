package httphandler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/twomenstudio/studiopanel/internal/application"
	"github.com/twomenstudio/studiopanel/internal/domain/model"
	"github.com/twomenstudio/studiopanel/internal/domain/port/driven"
	"github.com/twomenstudio/studiopanel/internal/imaging"
)

// maxUploadBytes caps image upload request bodies. The pipeline shrinks
// whatever arrives to well under the storage budget, but there is no point
// decoding a multi-hundred-megabyte original.
const maxUploadBytes = 32 << 20

// Handler is the HTTP driving adapter that serves the admin JSON API. It
// models the original's single-browser trust model: one process-wide
// session, no cookies or tokens.
type Handler struct {
	store  *application.ContentService
	docs   driven.DocumentStore
	budget int64
	logger *slog.Logger
}

// NewHandler creates a Handler with all required dependencies.
func NewHandler(store *application.ContentService, docs driven.DocumentStore, budget int64, logger *slog.Logger) *Handler {
	return &Handler{
		store:  store,
		docs:   docs,
		budget: budget,
		logger: logger,
	}
}

// NewServeMux creates an http.Handler with all routes registered and wrapped
// with logging and recovery middleware. Reads of public content are open;
// everything that mutates, plus the account list and storage introspection,
// goes through the admin gate.
func NewServeMux(h *Handler, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/v1/login", h.Login)
	mux.HandleFunc("POST /api/v1/logout", h.Logout)
	mux.HandleFunc("GET /api/v1/session", h.Session)

	mux.HandleFunc("GET /api/v1/services", h.ListServices)
	mux.HandleFunc("POST /api/v1/services", h.requireAdmin(h.AddService))
	mux.HandleFunc("PUT /api/v1/services/{id}", h.requireAdmin(h.UpdateService))
	mux.HandleFunc("DELETE /api/v1/services/{id}", h.requireAdmin(h.DeleteService))

	mux.HandleFunc("GET /api/v1/blog", h.ListBlogPosts)
	mux.HandleFunc("GET /api/v1/blog/{id}/html", h.BlogPostHTML)
	mux.HandleFunc("POST /api/v1/blog", h.requireAdmin(h.AddBlogPost))
	mux.HandleFunc("PUT /api/v1/blog/{id}", h.requireAdmin(h.UpdateBlogPost))
	mux.HandleFunc("DELETE /api/v1/blog/{id}", h.requireAdmin(h.DeleteBlogPost))

	mux.HandleFunc("GET /api/v1/destinations", h.ListDestinations)
	mux.HandleFunc("POST /api/v1/destinations", h.requireAdmin(h.AddDestination))
	mux.HandleFunc("PUT /api/v1/destinations/{id}", h.requireAdmin(h.UpdateDestination))
	mux.HandleFunc("DELETE /api/v1/destinations/{id}", h.requireAdmin(h.DeleteDestination))

	mux.HandleFunc("GET /api/v1/users", h.requireAdmin(h.ListUsers))
	mux.HandleFunc("POST /api/v1/users", h.requireAdmin(h.AddUser))
	mux.HandleFunc("PUT /api/v1/users/{id}", h.requireAdmin(h.UpdateUser))
	mux.HandleFunc("DELETE /api/v1/users/{id}", h.requireAdmin(h.DeleteUser))

	mux.HandleFunc("GET /api/v1/settings", h.GetSettings)
	mux.HandleFunc("PATCH /api/v1/settings", h.requireAdmin(h.UpdateSettings))

	mux.HandleFunc("POST /api/v1/images", h.requireAdmin(h.UploadImage))
	mux.HandleFunc("GET /api/v1/storage", h.requireAdmin(h.Storage))

	// Recovery innermost so panics are caught before logging.
	wrapped := recoveryMiddleware(logger, mux)
	wrapped = loggingMiddleware(logger, wrapped)

	return wrapped
}

// requireAdmin gates a handler behind the single authorization predicate.
func (h *Handler) requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !application.CanManage(h.store.CurrentUser()) {
			writeError(w, http.StatusForbidden, "admin access required")
			return
		}
		next(w, r)
	}
}

// Login authenticates with a username/password pair. Failure is a plain
// 401, not an exception; no rate limiting or lockout by design.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !h.store.Login(r.Context(), req.Username, req.Password) {
		writeError(w, http.StatusUnauthorized, "invalid username or password")
		return
	}

	user := toUserResponse(*h.store.CurrentUser())
	writeJSON(w, http.StatusOK, SessionResponse{Authenticated: true, User: &user})
}

// Logout clears the current session.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.store.Logout(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// Session reports the current authentication state.
func (h *Handler) Session(w http.ResponseWriter, _ *http.Request) {
	current := h.store.CurrentUser()
	if current == nil {
		writeJSON(w, http.StatusOK, SessionResponse{Authenticated: false})
		return
	}

	user := toUserResponse(*current)
	writeJSON(w, http.StatusOK, SessionResponse{Authenticated: true, User: &user})
}

// ListServices returns all services, newest first.
func (h *Handler) ListServices(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Services())
}

// AddService stores a new service.
func (h *Handler) AddService(w http.ResponseWriter, r *http.Request) {
	var svc model.Service
	if err := json.NewDecoder(r.Body).Decode(&svc); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if svc.Category != "" && !svc.Category.Valid() {
		writeError(w, http.StatusBadRequest, "unknown service category")
		return
	}

	writeJSON(w, http.StatusCreated, h.store.AddService(r.Context(), svc))
}

// UpdateService replaces the service with the id from the path.
func (h *Handler) UpdateService(w http.ResponseWriter, r *http.Request) {
	var svc model.Service
	if err := json.NewDecoder(r.Body).Decode(&svc); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	svc.ID = r.PathValue("id")
	if svc.Category != "" && !svc.Category.Valid() {
		writeError(w, http.StatusBadRequest, "unknown service category")
		return
	}

	if !h.store.UpdateService(r.Context(), svc) {
		writeError(w, http.StatusNotFound, "service not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteService removes the service with the id from the path.
func (h *Handler) DeleteService(w http.ResponseWriter, r *http.Request) {
	if !h.store.DeleteService(r.Context(), r.PathValue("id")) {
		writeError(w, http.StatusNotFound, "service not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListBlogPosts returns all posts, newest first.
func (h *Handler) ListBlogPosts(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.store.BlogPosts())
}

// BlogPostHTML returns one post's Markdown content rendered to sanitized HTML.
func (h *Handler) BlogPostHTML(w http.ResponseWriter, r *http.Request) {
	post, found := h.store.BlogPost(r.PathValue("id"))
	if !found {
		writeError(w, http.StatusNotFound, "blog post not found")
		return
	}

	writeJSON(w, http.StatusOK, BlogHTMLResponse{ID: post.ID, HTML: RenderMarkdown(post.Content)})
}

// AddBlogPost stores a new post. The returned record carries the reset date.
func (h *Handler) AddBlogPost(w http.ResponseWriter, r *http.Request) {
	var post model.BlogPost
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	writeJSON(w, http.StatusCreated, h.store.AddBlogPost(r.Context(), post))
}

// UpdateBlogPost replaces the post with the id from the path.
func (h *Handler) UpdateBlogPost(w http.ResponseWriter, r *http.Request) {
	var post model.BlogPost
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	post.ID = r.PathValue("id")

	if !h.store.UpdateBlogPost(r.Context(), post) {
		writeError(w, http.StatusNotFound, "blog post not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteBlogPost removes the post with the id from the path.
func (h *Handler) DeleteBlogPost(w http.ResponseWriter, r *http.Request) {
	if !h.store.DeleteBlogPost(r.Context(), r.PathValue("id")) {
		writeError(w, http.StatusNotFound, "blog post not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListDestinations returns all destinations in insertion order.
func (h *Handler) ListDestinations(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Destinations())
}

// AddDestination stores a new destination.
func (h *Handler) AddDestination(w http.ResponseWriter, r *http.Request) {
	var dest model.Destination
	if err := json.NewDecoder(r.Body).Decode(&dest); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	writeJSON(w, http.StatusCreated, h.store.AddDestination(r.Context(), dest))
}

// UpdateDestination replaces the destination with the id from the path.
func (h *Handler) UpdateDestination(w http.ResponseWriter, r *http.Request) {
	var dest model.Destination
	if err := json.NewDecoder(r.Body).Decode(&dest); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	dest.ID = r.PathValue("id")

	if !h.store.UpdateDestination(r.Context(), dest) {
		writeError(w, http.StatusNotFound, "destination not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteDestination removes the destination with the id from the path.
func (h *Handler) DeleteDestination(w http.ResponseWriter, r *http.Request) {
	if !h.store.DeleteDestination(r.Context(), r.PathValue("id")) {
		writeError(w, http.StatusNotFound, "destination not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListUsers returns all accounts without passwords.
func (h *Handler) ListUsers(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, toUserResponses(h.store.Users()))
}

// AddUser stores a new account. At the fixed two-account capacity the add
// is silently ignored and the response reports stored=false.
func (h *Handler) AddUser(w http.ResponseWriter, r *http.Request) {
	var user model.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	stored, ok := h.store.AddUser(r.Context(), user)
	if !ok {
		writeJSON(w, http.StatusOK, AddUserResponse{Stored: false})
		return
	}

	resp := toUserResponse(stored)
	writeJSON(w, http.StatusCreated, AddUserResponse{Stored: true, User: &resp})
}

// UpdateUser replaces the account with the id from the path. Updating the
// authenticated account refreshes the active session in lockstep.
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var user model.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	user.ID = r.PathValue("id")

	if !h.store.UpdateUser(r.Context(), user) {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteUser removes the account with the id from the path.
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if !h.store.DeleteUser(r.Context(), r.PathValue("id")) {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetSettings returns the singleton site settings.
func (h *Handler) GetSettings(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Settings())
}

// UpdateSettings shallow-merges the posted patch into the singleton record.
func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var patch model.SettingsPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	writeJSON(w, http.StatusOK, h.store.UpdateSettings(r.Context(), patch))
}

// UploadImage runs a multipart upload through the ingestion pipeline and
// returns the embeddable data URI. A pipeline failure must not mutate any
// state; the caller decides what to do with the result.
func (h *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, _, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing image file")
		return
	}
	defer file.Close()

	uri, err := imaging.Process(r.Context(), file)
	if err != nil {
		h.logger.Error("image processing failed", "error", err)
		writeError(w, http.StatusUnprocessableEntity, "failed to process image")
		return
	}

	writeJSON(w, http.StatusOK, ImageResponse{DataURI: uri})
}

// Storage reports durable storage usage against the configured budget.
func (h *Handler) Storage(w http.ResponseWriter, r *http.Request) {
	used, err := h.docs.UsedBytes(r.Context())
	if err != nil {
		h.logger.Error("failed to measure storage", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, StorageResponse{UsedBytes: used, BudgetBytes: h.budget})
}
