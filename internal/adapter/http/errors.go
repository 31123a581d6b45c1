package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"

	"crowdfund-ledger/internal/core/domain"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

var errorStatus = []struct {
	err    error
	status int
	code   string
}{
	{domain.ErrAlreadyInitialized, http.StatusConflict, "already_initialized"},
	{domain.ErrUninitialized, http.StatusNotFound, "uninitialized"},
	{domain.ErrInvalidTarget, http.StatusBadRequest, "invalid_target"},
	{domain.ErrInvalidDeadline, http.StatusBadRequest, "invalid_deadline"},
	{domain.ErrInvalidAmount, http.StatusBadRequest, "invalid_amount"},
	{domain.ErrInvalidAddress, http.StatusBadRequest, "invalid_address"},
	{domain.ErrUnauthorized, http.StatusForbidden, "unauthorized"},
	{domain.ErrCampaignFinalized, http.StatusConflict, "campaign_finalized"},
	{domain.ErrAlreadyFinalized, http.StatusConflict, "already_finalized"},
	{domain.ErrDeadlinePassed, http.StatusConflict, "deadline_passed"},
	{domain.ErrDeadlineNotReached, http.StatusConflict, "deadline_not_reached"},
	{domain.ErrTargetNotReached, http.StatusConflict, "target_not_reached"},
	{domain.ErrCampaignSucceeded, http.StatusConflict, "campaign_succeeded"},
	{domain.ErrNoDeposit, http.StatusConflict, "no_deposit"},
	{domain.ErrTransferFailed, http.StatusUnprocessableEntity, "transfer_failed"},
}

// writeError maps ledger errors to HTTP responses. Anything unrecognised is
// logged and reported as an internal error without details.
func (h *Handler) writeError(w http.ResponseWriter, op string, err error) {
	for _, e := range errorStatus {
		if errors.Is(err, e.err) {
			writeJSONError(w, e.status, e.code, err.Error())
			return
		}
	}
	h.logger.Error(op+" error", "error", err)
	writeJSONError(w, http.StatusInternalServerError, "internal", "internal error")
}

func writeJSONError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, errorResponse{Error: code, Message: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
