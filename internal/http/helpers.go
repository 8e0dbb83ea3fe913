package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"networth/internal/core"
	"networth/internal/log"
)

// API wire shapes. Amounts travel as decimal strings to keep precision
// across clients.
type (
	entryResponse struct {
		ID          int64          `json:"id"`
		Kind        string         `json:"kind"`
		Category    string         `json:"category"`
		Subcategory string         `json:"subcategory"`
		Name        string         `json:"name"`
		Currency    string         `json:"currency"`
		Amount      string         `json:"amount"`
		Owner       string         `json:"owner,omitempty"`
		Details     map[string]any `json:"details"`
		CreatedAt   string         `json:"created_at"`
	}

	createEntryRequest struct {
		Kind        string            `json:"kind"`
		Category    string            `json:"category"`
		Subcategory string            `json:"subcategory"`
		Name        string            `json:"name"`
		Currency    string            `json:"currency"`
		Owner       string            `json:"owner"`
		Amount      string            `json:"amount"`
		Details     map[string]string `json:"details"`
	}

	fieldResponse struct {
		Key     string   `json:"key"`
		Label   string   `json:"label"`
		Type    string   `json:"type"`
		Choices []string `json:"choices,omitempty"`
	}

	summaryResponse struct {
		TotalAssets      string          `json:"total_assets"`
		TotalLiabilities string          `json:"total_liabilities"`
		NetWorth         string          `json:"net_worth"`
		Recent           []entryResponse `json:"recent"`
	}

	errorResponse struct {
		Error string `json:"error"`
		Field string `json:"field,omitempty"`
		Code  string `json:"code,omitempty"`
	}
)

func toEntryResponse(e core.Entry) entryResponse {
	details := e.Details
	if details == nil {
		details = map[string]any{}
	}
	return entryResponse{
		ID:          e.ID,
		Kind:        string(e.Kind),
		Category:    e.Category,
		Subcategory: e.Subcategory,
		Name:        e.Name,
		Currency:    e.Currency,
		Amount:      e.Amount.String(),
		Owner:       e.Owner,
		Details:     details,
		CreatedAt:   e.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toEntryResponses(entries []core.Entry) []entryResponse {
	out := make([]entryResponse, len(entries))
	for i, e := range entries {
		out[i] = toEntryResponse(e)
	}
	return out
}

func toFieldResponses(schema core.Schema) []fieldResponse {
	out := make([]fieldResponse, len(schema))
	for i, f := range schema {
		out[i] = fieldResponse{
			Key:     f.Key,
			Label:   f.Label,
			Type:    string(f.Type),
			Choices: f.Choices,
		}
	}
	return out
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.FromContext(r.Context()).ErrorContext(r.Context(), "Response encoding failed", "error", err, "url", r.URL.Path)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, errorResponse{Error: msg})
}

// validationCode maps a validation failure to its stable wire code.
func validationCode(err error) string {
	switch {
	case errors.Is(err, core.ErrEmptyName):
		return "empty_name"
	case errors.Is(err, core.ErrNonPositiveAmount):
		return "non_positive_amount"
	case errors.Is(err, core.ErrInvalidNumber):
		return "invalid_number"
	case errors.Is(err, core.ErrInvalidDate):
		return "invalid_date"
	case errors.Is(err, core.ErrInvalidChoice):
		return "invalid_choice"
	}
	return "invalid_entry"
}

func writeValidationError(w http.ResponseWriter, r *http.Request, err error) {
	resp := errorResponse{Error: err.Error(), Code: validationCode(err)}
	var fieldErr *core.FieldError
	if errors.As(err, &fieldErr) {
		resp.Field = fieldErr.Field
	}
	writeJSON(w, r, http.StatusUnprocessableEntity, resp)
}

func isValidationError(err error) bool {
	return errors.Is(err, core.ErrEmptyName) ||
		errors.Is(err, core.ErrNonPositiveAmount) ||
		errors.Is(err, core.ErrInvalidNumber) ||
		errors.Is(err, core.ErrInvalidDate) ||
		errors.Is(err, core.ErrInvalidChoice)
}
