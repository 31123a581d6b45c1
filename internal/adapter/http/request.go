package httpadapter

import (
	"encoding/json"
	"net/http"

	"crowdfund-ledger/internal/core/domain"
)

type initializeRequest struct {
	Owner        string `json:"owner"`
	Token        string `json:"token"`
	TargetAmount int64  `json:"target_amount"`
	Deadline     uint32 `json:"deadline"`
}

type depositRequest struct {
	Contributor string `json:"contributor"`
	Amount      int64  `json:"amount"`
}

type refundRequest struct {
	Contributor string `json:"contributor"`
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_json", "invalid JSON")
		return false
	}
	return true
}

// handleInitialize creates the campaign. The owner must sign the request.
func (h *Handler) handleInitialize(w http.ResponseWriter, r *http.Request) {
	var req initializeRequest
	if !decode(w, r, &req) {
		return
	}
	owner, err := domain.ParseAddress(req.Owner)
	if err != nil {
		h.writeError(w, "initialize", err)
		return
	}
	token, err := domain.ParseAddress(req.Token)
	if err != nil {
		h.writeError(w, "initialize", err)
		return
	}
	if err = h.svc.Initialize(r.Context(), owner, token, req.TargetAmount, req.Deadline); err != nil {
		h.writeError(w, "initialize", err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

// handleDeposit pledges amount on behalf of the signing contributor.
func (h *Handler) handleDeposit(w http.ResponseWriter, r *http.Request) {
	var req depositRequest
	if !decode(w, r, &req) {
		return
	}
	contributor, err := domain.ParseAddress(req.Contributor)
	if err != nil {
		h.writeError(w, "deposit", err)
		return
	}
	if err = h.svc.Deposit(r.Context(), contributor, req.Amount); err != nil {
		h.writeError(w, "deposit", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleWithdraw pays out a successful campaign to the signing owner.
func (h *Handler) handleWithdraw(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Withdraw(r.Context()); err != nil {
		h.writeError(w, "withdraw", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleRefund returns the signing contributor's deposit after a failed
// campaign.
func (h *Handler) handleRefund(w http.ResponseWriter, r *http.Request) {
	var req refundRequest
	if !decode(w, r, &req) {
		return
	}
	contributor, err := domain.ParseAddress(req.Contributor)
	if err != nil {
		h.writeError(w, "refund", err)
		return
	}
	if err = h.svc.Refund(r.Context(), contributor); err != nil {
		h.writeError(w, "refund", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
