package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"

	"maricheck/internal/applicant/models"
	"maricheck/internal/applicant/service"
	ratelimitmodels "maricheck/internal/ratelimit/models"
	"maricheck/internal/uploads"
	id "maricheck/pkg/domain"
	dErrors "maricheck/pkg/domain-errors"
	"maricheck/pkg/platform/httputil"
	"maricheck/pkg/requestcontext"
)

// multipartMemory is how much of a form is buffered before spilling to disk.
const multipartMemory = 8 << 20

// Service defines the applicant operations exposed over HTTP.
type Service interface {
	RegisterCrew(ctx context.Context, reg models.CrewRegistration, uploads []service.Upload) (*models.CrewMember, error)
	RegisterStaff(ctx context.Context, reg models.StaffRegistration, uploads []service.Upload) (*models.StaffMember, error)
	TrackCrew(ctx context.Context, passport string) (*models.CrewMember, error)
	OpenPrivateProfile(ctx context.Context, crewID id.CrewID, token string) (*models.CrewMember, error)
	UploadCrewDocuments(ctx context.Context, crewID id.CrewID, token string, uploads []service.Upload) (*models.CrewMember, []string, error)
	GetCrew(ctx context.Context, crewID id.CrewID) (*models.CrewMember, error)
	GetStaff(ctx context.Context, staffID id.StaffID) (*models.StaffMember, error)
	ListCrew(ctx context.Context, filter models.ListFilter) ([]*models.CrewMember, error)
	ListStaff(ctx context.Context, filter models.ListFilter) ([]*models.StaffMember, error)
	TransitionCrew(ctx context.Context, crewID id.CrewID, action models.Action, note string) (*models.CrewMember, bool, error)
	TransitionStaff(ctx context.Context, staffID id.StaffID, action models.Action, note string) (*models.StaffMember, bool, error)
	Dashboard(ctx context.Context) (*models.Dashboard, error)
	ExportCrewCSV(ctx context.Context, w io.Writer) error
	ExportStaffCSV(ctx context.Context, w io.Writer) error
}

// RateLimiter provides per-class request limiting for public routes.
type RateLimiter interface {
	RateLimit(class ratelimitmodels.EndpointClass) func(http.Handler) http.Handler
}

// DocumentOpener resolves a stored document reference.
type DocumentOpener interface {
	Open(ref string) (*os.File, error)
}

// Handler serves the public registration pages and the admin review API.
type Handler struct {
	service        Service
	documents      DocumentOpener
	limiter        RateLimiter
	logger         *slog.Logger
	maxUploadBytes int64
}

type Option func(*Handler)

// WithDocumentOpener enables GET /uploads/*.
func WithDocumentOpener(documents DocumentOpener) Option {
	return func(h *Handler) {
		h.documents = documents
	}
}

// WithRateLimiter limits the public routes per client IP.
func WithRateLimiter(limiter RateLimiter) Option {
	return func(h *Handler) {
		h.limiter = limiter
	}
}

func WithMaxUploadBytes(n int64) Option {
	return func(h *Handler) {
		if n > 0 {
			h.maxUploadBytes = n
		}
	}
}

// New creates an applicant Handler.
func New(svc Service, logger *slog.Logger, opts ...Option) *Handler {
	h := &Handler{
		service:        svc,
		logger:         logger,
		maxUploadBytes: uploads.DefaultMaxBytes,
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.logger == nil {
		h.logger = slog.Default()
	}
	return h
}

// Register registers the public routes.
func (h *Handler) Register(r chi.Router) {
	r.With(h.limit(ratelimitmodels.ClassRegister)).Post("/register/crew", h.HandleRegisterCrew)
	r.With(h.limit(ratelimitmodels.ClassRegister)).Post("/register/staff", h.HandleRegisterStaff)
	r.With(h.limit(ratelimitmodels.ClassTrack)).Get("/track", h.HandleTrack)
	r.With(h.limit(ratelimitmodels.ClassProfile)).Get("/my-profile/{crewID:[0-9]+}-{token}", h.HandlePrivateProfile)
	r.With(h.limit(ratelimitmodels.ClassProfile)).Post("/my-profile/{crewID:[0-9]+}-{token}/documents", h.HandleUploadDocuments)
}

func (h *Handler) limit(class ratelimitmodels.EndpointClass) func(http.Handler) http.Handler {
	if h.limiter == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	return h.limiter.RateLimit(class)
}

// RegisterAdmin registers the review routes. The caller is responsible for
// putting them behind the admin session middleware.
func (h *Handler) RegisterAdmin(r chi.Router) {
	r.Get("/admin/dashboard", h.HandleDashboard)
	r.Get("/admin/crew", h.HandleListCrew)
	r.Get("/admin/crew/export", h.HandleExportCrew)
	r.Get("/admin/crew/{id}", h.HandleGetCrew)
	r.Post("/admin/crew/{id}/status", h.HandleCrewStatus)
	r.Get("/admin/staff", h.HandleListStaff)
	r.Get("/admin/staff/export", h.HandleExportStaff)
	r.Get("/admin/staff/{id}", h.HandleGetStaff)
	r.Post("/admin/staff/{id}/status", h.HandleStaffStatus)
	if h.documents != nil {
		r.Get("/uploads/*", h.HandleDocument)
	}
}

func (h *Handler) HandleRegisterCrew(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	form, ok := h.parseMultipart(w, r)
	if !ok {
		return
	}
	reg, err := crewRegistrationFromForm(form.Value)
	if err != nil {
		h.logger.WarnContext(ctx, "invalid crew registration form",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	files, closeFiles, err := uploadsFromForm(form, models.CrewSlots())
	defer closeFiles()
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	member, err := h.service.RegisterCrew(ctx, reg, files)
	if err != nil {
		h.logFailure(ctx, "crew registration failed", err)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, &RegistrationResponse{
		ID:          int64(member.ID),
		Status:      crewStatusView(member.Status),
		Message:     "Registration successful! Your application has been submitted. Our team will review your profile and contact you with the next steps.",
		ProfilePath: profilePath(member.ID, member.ProfileToken),
		TrackPath:   "/track?passport=" + member.Passport.String(),
	})
}

func (h *Handler) HandleRegisterStaff(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	form, ok := h.parseMultipart(w, r)
	if !ok {
		return
	}
	reg, err := staffRegistrationFromForm(form.Value)
	if err != nil {
		h.logger.WarnContext(ctx, "invalid staff registration form",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	files, closeFiles, err := uploadsFromForm(form, models.StaffSlots())
	defer closeFiles()
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	member, err := h.service.RegisterStaff(ctx, reg, files)
	if err != nil {
		h.logFailure(ctx, "staff registration failed", err)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, &RegistrationResponse{
		ID:      int64(member.ID),
		Status:  staffStatusView(member.Status),
		Message: "Registration successful! Your application has been submitted.",
	})
}

func (h *Handler) HandleTrack(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	member, err := h.service.TrackCrew(ctx, r.URL.Query().Get("passport"))
	if err != nil {
		h.logFailure(ctx, "status lookup failed", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toTrackResponse(member))
}

func (h *Handler) HandlePrivateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	crewID, token, ok := profileParams(w, r)
	if !ok {
		return
	}
	member, err := h.service.OpenPrivateProfile(ctx, crewID, token)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toPrivateProfile(member))
}

func (h *Handler) HandleUploadDocuments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	crewID, token, ok := profileParams(w, r)
	if !ok {
		return
	}
	form, ok := h.parseMultipart(w, r)
	if !ok {
		return
	}
	files, closeFiles, err := uploadsFromForm(form, models.CrewSlots())
	defer closeFiles()
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	member, updated, err := h.service.UploadCrewDocuments(ctx, crewID, token, files)
	if err != nil {
		h.logFailure(ctx, "document upload failed", err)
		httputil.WriteError(w, err)
		return
	}

	message := "No files were selected for upload."
	if len(updated) > 0 {
		message = "Successfully uploaded: " + strings.Join(updated, ", ")
	}
	httputil.WriteJSON(w, http.StatusOK, &UploadResponse{
		Message:              message,
		Updated:              updated,
		CompletionPercentage: member.CompletionPercentage(),
	})
}

func (h *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	dash, err := h.service.Dashboard(ctx)
	if err != nil {
		h.logFailure(ctx, "dashboard failed", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toDashboardResponse(dash))
}

func (h *Handler) HandleListCrew(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	filter, err := listFilterFromQuery(r.URL.Query())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	members, err := h.service.ListCrew(ctx, filter)
	if err != nil {
		h.logFailure(ctx, "list crew failed", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, &ListResponse[CrewSummary]{
		Items:  toCrewSummaries(members),
		Count:  len(members),
		Search: filter.Search,
		Status: filter.Statuses,
	})
}

func (h *Handler) HandleListStaff(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	filter, err := listFilterFromQuery(r.URL.Query())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	members, err := h.service.ListStaff(ctx, filter)
	if err != nil {
		h.logFailure(ctx, "list staff failed", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, &ListResponse[StaffSummary]{
		Items:  toStaffSummaries(members),
		Count:  len(members),
		Search: filter.Search,
		Status: filter.Statuses,
	})
}

func (h *Handler) HandleGetCrew(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	crewID, err := id.ParseCrewID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	member, err := h.service.GetCrew(ctx, crewID)
	if err != nil {
		h.logFailure(ctx, "get crew failed", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toCrewDetail(member))
}

func (h *Handler) HandleGetStaff(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	staffID, err := id.ParseStaffID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	member, err := h.service.GetStaff(ctx, staffID)
	if err != nil {
		h.logFailure(ctx, "get staff failed", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toStaffDetail(member))
}

func (h *Handler) HandleCrewStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	crewID, err := id.ParseCrewID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[StatusRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	action := models.Action(req.Action)
	member, applied, err := h.service.TransitionCrew(ctx, crewID, action, req.Notes)
	if err != nil {
		h.logFailure(ctx, "crew status update failed", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, &TransitionResponse{
		ID:      int64(member.ID),
		Action:  req.Action,
		Applied: applied,
		Status:  crewStatusView(member.Status),
		Message: transitionMessage("Crew member", action, applied),
	})
}

func (h *Handler) HandleStaffStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	staffID, err := id.ParseStaffID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[StatusRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	action := models.Action(req.Action)
	member, applied, err := h.service.TransitionStaff(ctx, staffID, action, req.Notes)
	if err != nil {
		h.logFailure(ctx, "staff status update failed", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, &TransitionResponse{
		ID:      int64(member.ID),
		Action:  req.Action,
		Applied: applied,
		Status:  staffStatusView(member.Status),
		Message: transitionMessage("Staff member", action, applied),
	})
}

func (h *Handler) HandleExportCrew(w http.ResponseWriter, r *http.Request) {
	h.writeExport(w, r, "crew", h.service.ExportCrewCSV)
}

func (h *Handler) HandleExportStaff(w http.ResponseWriter, r *http.Request) {
	h.writeExport(w, r, "staff", h.service.ExportStaffCSV)
}

// writeExport buffers the CSV so a failed export still gets a JSON error.
func (h *Handler) writeExport(w http.ResponseWriter, r *http.Request, variant string, export func(context.Context, io.Writer) error) {
	ctx := r.Context()
	var buf strings.Builder
	if err := export(ctx, &buf); err != nil {
		h.logFailure(ctx, variant+" export failed", err)
		httputil.WriteError(w, err)
		return
	}
	name := fmt.Sprintf("%s_export_%s.csv", variant, requestcontext.Now(ctx).Format("20060102_150405"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename="+name)
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, buf.String())
}

func (h *Handler) HandleDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ref := chi.URLParam(r, "*")
	f, err := h.documents.Open(ref)
	if err != nil {
		h.logger.WarnContext(ctx, "document not served",
			"request_id", requestcontext.RequestID(ctx),
			"reference", ref,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to read document"))
		return
	}
	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}

// parseMultipart enforces the upload cap and parses the form. Oversized
// requests get 413.
func (h *Handler) parseMultipart(w http.ResponseWriter, r *http.Request) (*multipart.Form, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.logger.WarnContext(r.Context(), "upload too large",
				"request_id", requestcontext.RequestID(r.Context()),
				"limit_bytes", tooLarge.Limit,
			)
			httputil.WriteJSON(w, http.StatusRequestEntityTooLarge, &httputil.ErrorResponse{
				Error:            "payload_too_large",
				ErrorDescription: fmt.Sprintf("upload exceeds the %d MB limit", h.maxUploadBytes>>20),
			})
			return nil, false
		}
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "request must be multipart/form-data"))
		return nil, false
	}
	return r.MultipartForm, true
}

func profileParams(w http.ResponseWriter, r *http.Request) (id.CrewID, string, bool) {
	crewID, err := id.ParseCrewID(chi.URLParam(r, "crewID"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "invalid or expired profile link"))
		return 0, "", false
	}
	return crewID, chi.URLParam(r, "token"), true
}

// logFailure logs expected client errors at warn and everything else at error.
func (h *Handler) logFailure(ctx context.Context, msg string, err error) {
	level := slog.LevelError
	if code, ok := dErrors.CodeOf(err); ok && code != dErrors.CodeInternal && code != dErrors.CodeTimeout {
		level = slog.LevelWarn
	}
	h.logger.Log(ctx, level, msg,
		"request_id", requestcontext.RequestID(ctx),
		"error", err,
	)
}
