package httpadapter

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"crowdfund-ledger/internal/core/domain"
)

const (
	defaultEventLimit = 50
	maxEventLimit     = 500
)

type statusResponse struct {
	domain.CampaignStatus
	TotalRaisedDisplay  string `json:"total_raised_display"`
	TargetAmountDisplay string `json:"target_amount_display"`
	WithdrawAvailable   bool   `json:"withdraw_available"`
	RefundAvailable     bool   `json:"refund_available"`
}

type depositResponse struct {
	Contributor string `json:"contributor"`
	Amount      int64  `json:"amount"`
	Display     string `json:"amount_display"`
}

type ledgerResponse struct {
	Sequence uint32 `json:"sequence"`
}

type balanceResponse struct {
	Token   string `json:"token"`
	Address string `json:"address"`
	Balance int64  `json:"balance"`
	Display string `json:"balance_display"`
}

// handleStatus returns totals, derived flags and display amounts. It never
// fails for an uninitialized campaign.
func (h *Handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.Status(r.Context())
	if err != nil {
		h.writeError(w, "status", err)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{
		CampaignStatus:      st,
		TotalRaisedDisplay:  domain.FormatAmount(st.TotalRaised),
		TargetAmountDisplay: domain.FormatAmount(st.TargetAmount),
		WithdrawAvailable:   st.WithdrawAvailable(),
		RefundAvailable:     st.RefundAvailable(),
	})
}

// handleGetDeposit returns the outstanding deposit of {address}.
func (h *Handler) handleGetDeposit(w http.ResponseWriter, r *http.Request) {
	contributor, err := domain.ParseAddress(chi.URLParam(r, "address"))
	if err != nil {
		h.writeError(w, "get deposit", err)
		return
	}
	amount, err := h.svc.DepositOf(r.Context(), contributor)
	if err != nil {
		h.writeError(w, "get deposit", err)
		return
	}
	writeJSON(w, http.StatusOK, depositResponse{
		Contributor: contributor.String(),
		Amount:      amount,
		Display:     domain.FormatAmount(amount),
	})
}

// handleEvents lists notifications oldest first. It accepts optional
// `limit` (default 50, at most 500) and `offset` query parameters.
func (h *Handler) handleEvents(w http.ResponseWriter, r *http.Request) {
	if h.opts.Events == nil {
		writeJSONError(w, http.StatusNotImplemented, "unavailable", "event log not configured")
		return
	}
	var (
		q      = r.URL.Query()
		limit  = defaultEventLimit
		offset = 0
		err    error
	)
	if s := q.Get("limit"); s != "" {
		limit, err = strconv.Atoi(s)
		if err != nil || limit <= 0 {
			writeJSONError(w, http.StatusBadRequest, "invalid_limit", "invalid 'limit'")
			return
		}
		limit = min(limit, maxEventLimit)
	}
	if s := q.Get("offset"); s != "" {
		offset, err = strconv.Atoi(s)
		if err != nil || offset < 0 {
			writeJSONError(w, http.StatusBadRequest, "invalid_offset", "invalid 'offset'")
			return
		}
	}
	events, err := h.opts.Events.List(r.Context(), limit, offset)
	if err != nil {
		h.writeError(w, "list events", err)
		return
	}
	writeJSON(w, http.StatusOK, events)
}

// handleLedger returns the current ledger sequence deadlines compare against.
func (h *Handler) handleLedger(w http.ResponseWriter, r *http.Request) {
	if h.opts.Clock == nil {
		writeJSONError(w, http.StatusNotImplemented, "unavailable", "clock not configured")
		return
	}
	seq, err := h.opts.Clock.Sequence(r.Context())
	if err != nil {
		h.writeError(w, "ledger", err)
		return
	}
	writeJSON(w, http.StatusOK, ledgerResponse{Sequence: seq})
}

// handleBalance returns the token balance of {address}. The token defaults
// to the configured one and may be overridden with `token`.
func (h *Handler) handleBalance(w http.ResponseWriter, r *http.Request) {
	if h.opts.Tokens == nil {
		writeJSONError(w, http.StatusNotImplemented, "unavailable", "token ledger not configured")
		return
	}
	addr, err := domain.ParseAddress(chi.URLParam(r, "address"))
	if err != nil {
		h.writeError(w, "balance", err)
		return
	}
	token := h.opts.DefaultToken
	if s := r.URL.Query().Get("token"); s != "" {
		if token, err = domain.ParseAddress(s); err != nil {
			h.writeError(w, "balance", err)
			return
		}
	}
	balance, err := h.opts.Tokens.Balance(r.Context(), token, addr)
	if err != nil {
		h.writeError(w, "balance", err)
		return
	}
	writeJSON(w, http.StatusOK, balanceResponse{
		Token:   token.String(),
		Address: addr.String(),
		Balance: balance,
		Display: domain.FormatAmount(balance),
	})
}
