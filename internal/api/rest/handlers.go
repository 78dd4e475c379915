package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	derrors "github.com/priit2000/out-of-android/internal/domain/errors"
	"github.com/priit2000/out-of-android/internal/domain/screening"
	"github.com/priit2000/out-of-android/internal/infrastructure/repository"
	"github.com/priit2000/out-of-android/internal/infrastructure/settings"
	screeningsvc "github.com/priit2000/out-of-android/internal/service/screening"
)

// DecisionLog records screening outcomes for later inspection. The engine
// itself never writes; recording happens here at the boundary, after the
// verdict is made.
type DecisionLog interface {
	Record(ctx context.Context, d repository.Decision) error
	ListRecent(ctx context.Context, limit int) ([]repository.Decision, error)
	GetByCallID(ctx context.Context, callID uuid.UUID) (repository.Decision, error)
}

// Handler serves the screening and settings API
type Handler struct {
	service   screeningsvc.Service
	store     settings.Store
	decisions DecisionLog
	validator *validator.Validate
	logger    *slog.Logger
}

// NewHandler creates the API handler. decisions may be nil when the decision
// log is disabled.
func NewHandler(service screeningsvc.Service, store settings.Store, decisions DecisionLog, logger *slog.Logger) *Handler {
	v := validator.New()
	_ = v.RegisterValidation("hhmm", validateHHMM)

	return &Handler{
		service:   service,
		store:     store,
		decisions: decisions,
		validator: v,
		logger:    logger,
	}
}

func validateHHMM(fl validator.FieldLevel) bool {
	_, err := screening.ParseTimeOfDay(fl.Field().String())
	return err == nil
}

// validationFields flattens validator errors into a field -> messages map
func validationFields(err error) map[string][]string {
	fields := make(map[string][]string)
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			fields[fe.Field()] = append(fields[fe.Field()], fe.Tag())
		}
	}
	return fields
}

// ScreenRequest is one incoming call event. A null phone_number means the
// caller's number was not delivered.
type ScreenRequest struct {
	PhoneNumber *string    `json:"phone_number"`
	ReceivedAt  *time.Time `json:"received_at"`
}

// ScreenResponse carries the verdict back to the telephony collaborator,
// which ends the call and sends the message when the action says so.
type ScreenResponse struct {
	CallID  string `json:"call_id"`
	Action  string `json:"action"`
	Message string `json:"message,omitempty"`
	Reason  string `json:"reason"`
}

func (h *Handler) handleScreen(w http.ResponseWriter, r *http.Request) {
	var req ScreenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, derrors.NewValidationError("INVALID_BODY", "request body must be valid JSON"))
		return
	}

	number := ""
	if req.PhoneNumber != nil {
		number = *req.PhoneNumber
	}
	receivedAt := time.Now()
	if req.ReceivedAt != nil {
		receivedAt = *req.ReceivedAt
	}

	event := screening.NewCallEvent(number, receivedAt)

	verdict, err := h.service.Screen(r.Context(), event)
	if err != nil {
		// Fail open: the verdict is already Allow, and its reason says why.
		h.logger.ErrorContext(r.Context(), "screening degraded",
			"call_id", event.ID,
			"error", err,
		)
	}

	h.recordDecision(r.Context(), event, verdict)

	writeJSON(w, r, http.StatusOK, ScreenResponse{
		CallID:  event.ID.String(),
		Action:  verdict.Action.String(),
		Message: verdict.Message,
		Reason:  verdict.Reason,
	})
}

func (h *Handler) recordDecision(ctx context.Context, event screening.CallEvent, verdict screening.Verdict) {
	if h.decisions == nil {
		return
	}

	d := repository.Decision{
		CallID:    event.ID,
		Number:    event.Number,
		Action:    verdict.Action.String(),
		Reason:    verdict.Reason,
		Message:   verdict.Message,
		DecidedAt: time.Now(),
	}

	// Best effort: a decision log outage must not affect call handling.
	if err := h.decisions.Record(ctx, d); err != nil {
		h.logger.WarnContext(ctx, "decision log write failed",
			"call_id", event.ID,
			"error", err,
		)
	}
}

func (h *Handler) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.store.Snapshot(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, snapshot)
}

// UpdateSettingsRequest updates any subset of the settings. Absent fields are
// left untouched.
type UpdateSettingsRequest struct {
	AutoResponseEnabled *bool     `json:"auto_response_enabled"`
	AutoResponseMessage *string   `json:"auto_response_message" validate:"omitempty,min=1"`
	WhitelistEnabled    *bool     `json:"whitelist_enabled"`
	WhitelistNumbers    *[]string `json:"whitelist_numbers"`
	ScheduledEnabled    *bool     `json:"scheduled_enabled"`
	ScheduleStartTime   *string   `json:"schedule_start_time" validate:"omitempty,hhmm"`
	ScheduleEndTime     *string   `json:"schedule_end_time" validate:"omitempty,hhmm"`
}

func (h *Handler) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, derrors.NewValidationError("INVALID_BODY", "request body must be valid JSON"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		writeValidationError(w, r, validationFields(err))
		return
	}

	ctx := r.Context()
	if req.AutoResponseEnabled != nil {
		if err := h.store.SetAutoResponseEnabled(ctx, *req.AutoResponseEnabled); err != nil {
			writeError(w, r, err)
			return
		}
	}
	if req.AutoResponseMessage != nil {
		if err := h.store.SetAutoResponseMessage(ctx, *req.AutoResponseMessage); err != nil {
			writeError(w, r, err)
			return
		}
	}
	if req.WhitelistEnabled != nil {
		if err := h.store.SetWhitelistEnabled(ctx, *req.WhitelistEnabled); err != nil {
			writeError(w, r, err)
			return
		}
	}
	if req.WhitelistNumbers != nil {
		if err := h.store.SetWhitelistNumbers(ctx, *req.WhitelistNumbers); err != nil {
			writeError(w, r, err)
			return
		}
	}
	if req.ScheduledEnabled != nil {
		if err := h.store.SetScheduledModeEnabled(ctx, *req.ScheduledEnabled); err != nil {
			writeError(w, r, err)
			return
		}
	}
	if req.ScheduleStartTime != nil {
		t, err := screening.ParseTimeOfDay(*req.ScheduleStartTime)
		if err != nil {
			writeValidationError(w, r, map[string][]string{"schedule_start_time": {"hhmm"}})
			return
		}
		if err := h.store.SetScheduleStart(ctx, t); err != nil {
			writeError(w, r, err)
			return
		}
	}
	if req.ScheduleEndTime != nil {
		t, err := screening.ParseTimeOfDay(*req.ScheduleEndTime)
		if err != nil {
			writeValidationError(w, r, map[string][]string{"schedule_end_time": {"hhmm"}})
			return
		}
		if err := h.store.SetScheduleEnd(ctx, t); err != nil {
			writeError(w, r, err)
			return
		}
	}

	snapshot, err := h.store.Snapshot(ctx)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, snapshot)
}

// WhitelistRequest adds one number to the whitelist
type WhitelistRequest struct {
	Number string `json:"number" validate:"required"`
}

func (h *Handler) handleAddWhitelistNumber(w http.ResponseWriter, r *http.Request) {
	var req WhitelistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, derrors.NewValidationError("INVALID_BODY", "request body must be valid JSON"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		writeValidationError(w, r, validationFields(err))
		return
	}

	if err := h.store.AddWhitelistNumber(r.Context(), req.Number); err != nil {
		writeError(w, r, err)
		return
	}

	numbers, err := h.store.WhitelistNumbers(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]interface{}{"whitelist_numbers": numbers})
}

func (h *Handler) handleRemoveWhitelistNumber(w http.ResponseWriter, r *http.Request) {
	number := r.PathValue("number")
	if number == "" {
		writeError(w, r, derrors.NewValidationError("INVALID_INPUT", "number path segment is required"))
		return
	}

	if err := h.store.RemoveWhitelistNumber(r.Context(), number); err != nil {
		writeError(w, r, err)
		return
	}

	numbers, err := h.store.WhitelistNumbers(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]interface{}{"whitelist_numbers": numbers})
}

func (h *Handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.service.StatusText(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]string{"status": status})
}

func (h *Handler) handleListDecisions(w http.ResponseWriter, r *http.Request) {
	if h.decisions == nil {
		writeError(w, r, derrors.NewUnavailableError("decision_log", "decision log is disabled"))
		return
	}

	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > 500 {
			writeError(w, r, derrors.NewValidationError("INVALID_INPUT", "limit must be an integer between 1 and 500"))
			return
		}
		limit = parsed
	}

	decisions, err := h.decisions.ListRecent(r.Context(), limit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]interface{}{"decisions": decisions})
}

func (h *Handler) handleGetDecision(w http.ResponseWriter, r *http.Request) {
	if h.decisions == nil {
		writeError(w, r, derrors.NewUnavailableError("decision_log", "decision log is disabled"))
		return
	}

	callID, err := uuid.Parse(r.PathValue("call_id"))
	if err != nil {
		writeError(w, r, derrors.NewValidationError("INVALID_INPUT", "call_id must be a valid UUID"))
		return
	}

	decision, err := h.decisions.GetByCallID(r.Context(), callID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, r, derrors.NewNotFoundError("decision"))
			return
		}
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, decision)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "healthy"})
}
