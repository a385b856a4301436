package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/fisiomuv/preventa-api/internal/entity"
	"github.com/fisiomuv/preventa-api/internal/infra/http/middleware"
	"github.com/fisiomuv/preventa-api/internal/usecase"
	"github.com/fisiomuv/preventa-api/pkg/logging"
)

type PreventaHandler struct {
	CreateLeadUC *usecase.CreateLeadUseCase
	LeadRepo     entity.LeadRepositoryInterface
	Production   bool
}

func NewPreventaHandler(uc *usecase.CreateLeadUseCase, leadRepo entity.LeadRepositoryInterface, production bool) *PreventaHandler {
	return &PreventaHandler{
		CreateLeadUC: uc,
		LeadRepo:     leadRepo,
		Production:   production,
	}
}

type createLeadResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
	ID      string `json:"id"`
}

type errorResponse struct {
	Error   string               `json:"error"`
	Message string               `json:"message"`
	Details []usecase.FieldError `json:"details,omitempty"`
}

// HandleCreate implements POST /api/preventa.
func (h *PreventaHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateLeadInput

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		detail := usecase.FieldError{Field: "body", Message: "JSON inválido", Code: "invalid_json"}
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			detail = usecase.FieldError{Field: typeErr.Field, Message: "Tipo de dato inválido", Code: "invalid_type"}
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:   "validation_error",
			Message: "Datos inválidos",
			Details: []usecase.FieldError{detail},
		})
		return
	}

	// Marketing attribution rides on the query string and the Referer header.
	input.UTM = extractUTM(r)
	input.Referer = r.Referer()
	input.Origin = entity.OriginLanding

	output, err := h.CreateLeadUC.Execute(r.Context(), input)
	if err != nil {
		h.writeError(w, err)
		return
	}

	middleware.RecordLeadCaptured(input.Interest)
	writeJSON(w, http.StatusCreated, createLeadResponse{
		OK:      true,
		Message: output.Message,
		ID:      output.ID,
	})
}

// HandleGetByID implements GET /api/preventa/{id}.
func (h *PreventaHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:   "validation_error",
			Message: "ID es requerido",
		})
		return
	}

	// A non-uuid id can never match a row; answering 404 up front keeps
	// Postgres from raising a uuid syntax error on the lookup.
	if _, err := uuid.Parse(id); err != nil {
		writeJSON(w, http.StatusNotFound, errorResponse{
			Error:   "lead_not_found",
			Message: "No existe una reserva con ese identificador",
		})
		return
	}

	lead, err := h.LeadRepo.FindByID(r.Context(), id)
	if errors.Is(err, entity.ErrLeadNotFound) {
		writeJSON(w, http.StatusNotFound, errorResponse{
			Error:   "lead_not_found",
			Message: "No existe una reserva con ese identificador",
		})
		return
	}
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, lead)
}

func (h *PreventaHandler) writeError(w http.ResponseWriter, err error) {
	var validationErrors usecase.ValidationErrors
	if errors.As(err, &validationErrors) {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:   "validation_error",
			Message: "Datos inválidos",
			Details: validationErrors,
		})
		return
	}

	var domainErr *usecase.DomainError
	if errors.As(err, &domainErr) {
		if domainErr == usecase.ErrDuplicateLead {
			middleware.RecordDuplicateLead()
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:   domainErr.Code,
			Message: domainErr.Message,
		})
		return
	}

	logging.GetLogger().WithError(err).Error("preventa request failed")

	message := "Error interno del servidor"
	if !h.Production {
		message = err.Error()
	}
	writeJSON(w, http.StatusInternalServerError, errorResponse{
		Error:   "internal_error",
		Message: message,
	})
}

func extractUTM(r *http.Request) *entity.UTM {
	q := r.URL.Query()

	utm := &entity.UTM{
		Source:   q.Get("utm_source"),
		Medium:   q.Get("utm_medium"),
		Campaign: q.Get("utm_campaign"),
		Term:     q.Get("utm_term"),
		Content:  q.Get("utm_content"),
	}
	if utm.IsEmpty() {
		return nil
	}
	return utm
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
