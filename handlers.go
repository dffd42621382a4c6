package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Handler handles HTTP requests for the portal's resources.
type Handler struct {
	store    *Store
	updates  *Broadcaster
	activity *ActivityLog
	logger   zerolog.Logger
}

// NewHandler creates a Handler with dependencies.
func NewHandler(store *Store, updates *Broadcaster, activity *ActivityLog, logger zerolog.Logger) *Handler {
	return &Handler{store: store, updates: updates, activity: activity, logger: logger}
}

// Routes builds the portal router. Management endpoints are gated behind the
// admin credential when one is configured; an empty adminToken leaves them
// open for local development.
func (h *Handler) Routes(adminToken string) chi.Router {
	r := chi.NewRouter()
	r.Use(requestLogger(h.logger))

	r.Get("/health", h.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/updates", h.handleUpdates)
		r.Get("/documents", h.handleDocuments)

		r.Get("/announcements", h.handleListAnnouncements)
		r.Get("/hotlines", h.handleListHotlines)
		r.Get("/officials", h.handleListOfficials)
		r.Get("/applications", h.handleListApplications)
		r.Get("/reports", h.handleListReports)

		// Residents submit applications and reports without credentials.
		r.Post("/applications", h.handleCreateApplication)
		r.Post("/reports", h.handleCreateReport)

		r.Group(func(r chi.Router) {
			if adminToken != "" {
				r.Use(adminAuth(adminToken))
			}
			r.Post("/announcements", h.handleCreateAnnouncement)
			r.Put("/announcements", h.handleUpdateAnnouncement)
			r.Delete("/announcements", h.handleDeleteAnnouncement)

			r.Post("/hotlines", h.handleCreateHotline)
			r.Put("/hotlines", h.handleUpdateHotline)
			r.Delete("/hotlines", h.handleDeleteHotline)

			r.Post("/officials", h.handleCreateOfficial)
			r.Put("/officials", h.handleUpdateOfficial)
			r.Delete("/officials", h.handleDeleteOfficial)

			r.Put("/applications", h.handleUpdateApplication)
			r.Put("/reports", h.handleUpdateReport)

			r.Get("/logs", h.handleActivityLogs)
		})
	})

	return r
}

// handleHealth processes GET /health.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleUpdates processes GET /api/updates. It always answers 200 with all
// known resource types present; storage trouble degrades to the in-process
// timestamps.
func (h *Handler) handleUpdates(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.updates.Timestamps(r.Context()))
}

// handleDocuments processes GET /api/documents.
func (h *Handler) handleDocuments(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, documentCatalog())
}

// handleActivityLogs processes GET /api/logs.
func (h *Handler) handleActivityLogs(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.activity.Entries())
}

// --- announcements ---

func (h *Handler) handleListAnnouncements(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.Announcements(r.Context()))
}

func (h *Handler) handleCreateAnnouncement(w http.ResponseWriter, r *http.Request) {
	var req CreateAnnouncementRequest
	if err := decodeBody(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		http.Error(w, "title and content are required", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	rec := Announcement{
		ID:        uuid.NewString(),
		Title:     req.Title,
		Category:  req.Category,
		Content:   req.Content,
		Date:      req.Date,
		CreatedAt: nowStamp(),
		PosterURL: req.PosterURL,
	}
	// Newest first.
	items := append([]Announcement{rec}, h.store.Announcements(ctx)...)
	h.store.SetAnnouncements(ctx, items)
	h.updates.RecordUpdate(ctx, TypeAnnouncements)
	h.activity.Record("Created announcement", rec.Title)

	respondJSON(w, http.StatusCreated, rec)
}

func (h *Handler) handleUpdateAnnouncement(w http.ResponseWriter, r *http.Request) {
	var rec Announcement
	if err := decodeBody(r, &rec); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if rec.ID == "" {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	items := h.store.Announcements(ctx)
	idx := slices.IndexFunc(items, func(a Announcement) bool { return a.ID == rec.ID })
	if idx < 0 {
		http.Error(w, "announcement not found", http.StatusNotFound)
		return
	}
	rec.CreatedAt = items[idx].CreatedAt
	items[idx] = rec
	h.store.SetAnnouncements(ctx, items)
	h.updates.RecordUpdate(ctx, TypeAnnouncements)
	h.activity.Record("Updated announcement", rec.Title)

	respondJSON(w, http.StatusOK, rec)
}

func (h *Handler) handleDeleteAnnouncement(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	items := h.store.Announcements(ctx)
	idx := slices.IndexFunc(items, func(a Announcement) bool { return a.ID == id })
	if idx < 0 {
		http.Error(w, "announcement not found", http.StatusNotFound)
		return
	}
	title := items[idx].Title
	items = slices.Delete(items, idx, idx+1)
	h.store.SetAnnouncements(ctx, items)
	h.updates.RecordUpdate(ctx, TypeAnnouncements)
	h.activity.Record("Deleted announcement", title)

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// --- hotlines ---

func (h *Handler) handleListHotlines(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.Hotlines(r.Context()))
}

func (h *Handler) handleCreateHotline(w http.ResponseWriter, r *http.Request) {
	var req CreateHotlineRequest
	if err := decodeBody(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Number) == "" {
		http.Error(w, "name and number are required", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	rec := Hotline{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Department:  req.Department,
		Number:      req.Number,
		Description: req.Description,
		Category:    req.Category,
	}
	items := append(h.store.Hotlines(ctx), rec)
	h.store.SetHotlines(ctx, items)
	h.updates.RecordUpdate(ctx, TypeHotlines)
	h.activity.Record("Created hotline", rec.Name)

	respondJSON(w, http.StatusCreated, rec)
}

func (h *Handler) handleUpdateHotline(w http.ResponseWriter, r *http.Request) {
	var rec Hotline
	if err := decodeBody(r, &rec); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if rec.ID == "" {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	items := h.store.Hotlines(ctx)
	idx := slices.IndexFunc(items, func(hl Hotline) bool { return hl.ID == rec.ID })
	if idx < 0 {
		http.Error(w, "hotline not found", http.StatusNotFound)
		return
	}
	items[idx] = rec
	h.store.SetHotlines(ctx, items)
	h.updates.RecordUpdate(ctx, TypeHotlines)
	h.activity.Record("Updated hotline", rec.Name)

	respondJSON(w, http.StatusOK, rec)
}

func (h *Handler) handleDeleteHotline(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	items := h.store.Hotlines(ctx)
	idx := slices.IndexFunc(items, func(hl Hotline) bool { return hl.ID == id })
	if idx < 0 {
		http.Error(w, "hotline not found", http.StatusNotFound)
		return
	}
	name := items[idx].Name
	items = slices.Delete(items, idx, idx+1)
	h.store.SetHotlines(ctx, items)
	h.updates.RecordUpdate(ctx, TypeHotlines)
	h.activity.Record("Deleted hotline", name)

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// --- officials ---

func (h *Handler) handleListOfficials(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.Officials(r.Context()))
}

func (h *Handler) handleCreateOfficial(w http.ResponseWriter, r *http.Request) {
	var req CreateOfficialRequest
	if err := decodeBody(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Position) == "" {
		http.Error(w, "name and position are required", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	rec := Official{
		ID:       uuid.NewString(),
		Name:     req.Name,
		Position: req.Position,
		Contact:  req.Contact,
		Status:   req.Status,
		Category: req.Category,
		ImageURL: req.ImageURL,
	}
	items := append(h.store.Officials(ctx), rec)
	h.store.SetOfficials(ctx, items)
	h.updates.RecordUpdate(ctx, TypeOfficials)
	h.activity.Record("Created official", rec.Name)

	respondJSON(w, http.StatusCreated, rec)
}

func (h *Handler) handleUpdateOfficial(w http.ResponseWriter, r *http.Request) {
	var rec Official
	if err := decodeBody(r, &rec); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if rec.ID == "" {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	items := h.store.Officials(ctx)
	idx := slices.IndexFunc(items, func(o Official) bool { return o.ID == rec.ID })
	if idx < 0 {
		http.Error(w, "official not found", http.StatusNotFound)
		return
	}
	items[idx] = rec
	h.store.SetOfficials(ctx, items)
	h.updates.RecordUpdate(ctx, TypeOfficials)
	h.activity.Record("Updated official", rec.Name)

	respondJSON(w, http.StatusOK, rec)
}

func (h *Handler) handleDeleteOfficial(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	items := h.store.Officials(ctx)
	idx := slices.IndexFunc(items, func(o Official) bool { return o.ID == id })
	if idx < 0 {
		http.Error(w, "official not found", http.StatusNotFound)
		return
	}
	name := items[idx].Name
	items = slices.Delete(items, idx, idx+1)
	h.store.SetOfficials(ctx, items)
	h.updates.RecordUpdate(ctx, TypeOfficials)
	h.activity.Record("Deleted official", name)

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// --- document applications ---

func (h *Handler) handleListApplications(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.Applications(r.Context()))
}

func (h *Handler) handleCreateApplication(w http.ResponseWriter, r *http.Request) {
	var req CreateApplicationRequest
	if err := decodeBody(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.FullName) == "" || strings.TrimSpace(req.DocumentType) == "" {
		http.Error(w, "fullName and documentType are required", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	now := nowStamp()
	rec := Application{
		ID:            uuid.NewString(),
		FullName:      req.FullName,
		Address:       req.Address,
		ContactNumber: req.ContactNumber,
		DocumentType:  req.DocumentType,
		Purpose:       req.Purpose,
		Status:        StatusPending,
		SubmittedAt:   now,
		UpdatedAt:     now,
	}
	items := append(h.store.Applications(ctx), rec)
	h.store.SetApplications(ctx, items)
	h.updates.RecordUpdate(ctx, TypeApplications)

	respondJSON(w, http.StatusCreated, rec)
}

func (h *Handler) handleUpdateApplication(w http.ResponseWriter, r *http.Request) {
	var rec Application
	if err := decodeBody(r, &rec); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if rec.ID == "" {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	items := h.store.Applications(ctx)
	idx := slices.IndexFunc(items, func(a Application) bool { return a.ID == rec.ID })
	if idx < 0 {
		http.Error(w, "application not found", http.StatusNotFound)
		return
	}
	rec.SubmittedAt = items[idx].SubmittedAt
	rec.UpdatedAt = nowStamp()
	items[idx] = rec
	h.store.SetApplications(ctx, items)
	h.updates.RecordUpdate(ctx, TypeApplications)
	h.activity.Record("Updated application", fmt.Sprintf("%s (%s): %s", rec.FullName, rec.DocumentType, rec.Status))

	respondJSON(w, http.StatusOK, rec)
}

// --- issue reports ---

func (h *Handler) handleListReports(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.Reports(r.Context()))
}

func (h *Handler) handleCreateReport(w http.ResponseWriter, r *http.Request) {
	var req CreateReportRequest
	if err := decodeBody(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.IssueType) == "" || strings.TrimSpace(req.Description) == "" {
		http.Error(w, "issueType and description are required", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	now := nowStamp()
	rec := Report{
		ID:          uuid.NewString(),
		Name:        req.Name,
		IssueType:   req.IssueType,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Status:      StatusPending,
		SubmittedAt: now,
		UpdatedAt:   now,
	}
	items := append(h.store.Reports(ctx), rec)
	h.store.SetReports(ctx, items)
	h.updates.RecordUpdate(ctx, TypeReports)

	respondJSON(w, http.StatusCreated, rec)
}

func (h *Handler) handleUpdateReport(w http.ResponseWriter, r *http.Request) {
	var rec Report
	if err := decodeBody(r, &rec); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if rec.ID == "" {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	items := h.store.Reports(ctx)
	idx := slices.IndexFunc(items, func(rp Report) bool { return rp.ID == rec.ID })
	if idx < 0 {
		http.Error(w, "report not found", http.StatusNotFound)
		return
	}
	rec.SubmittedAt = items[idx].SubmittedAt
	rec.UpdatedAt = nowStamp()
	items[idx] = rec
	h.store.SetReports(ctx, items)
	h.updates.RecordUpdate(ctx, TypeReports)
	h.activity.Record("Updated report", fmt.Sprintf("%s: %s", rec.IssueType, rec.Status))

	respondJSON(w, http.StatusOK, rec)
}

// --- helpers ---

func nowStamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// decodeBody decodes a single JSON object from the request body.
func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid request payload: %w", err)
	}
	return ensureSingleJSON(dec)
}

// ensureSingleJSON ensures only a single JSON object is in the request body.
func ensureSingleJSON(dec *json.Decoder) error {
	if t, err := dec.Token(); err != io.EOF || t != nil {
		return fmt.Errorf("request body must only contain a single JSON object")
	}
	return nil
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
