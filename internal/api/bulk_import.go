package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/tcp_snm/raffle/internal/raffle_errors"
	"github.com/tcp_snm/raffle/internal/service/entry_service"
)

// bulkImportPayload absorbs the snake_case/camelCase field name split
// between the original clients. snake_case is the canonical contract.
type bulkImportPayload struct {
	PrizeID        string `json:"prize_id"`
	PrizeIDCamel   string `json:"prizeId"`
	CSVText        string `json:"csv_text"`
	ConflictPolicy string `json:"conflict_policy"`
	PolicyCamel    string `json:"conflictPolicy"`
}

func (p bulkImportPayload) prizeID() string {
	if id := strings.TrimSpace(p.PrizeID); id != "" {
		return id
	}
	return strings.TrimSpace(p.PrizeIDCamel)
}

func (p bulkImportPayload) policy() string {
	if p.ConflictPolicy != "" {
		return p.ConflictPolicy
	}
	return p.PolicyCamel
}

func (a *Api) HandlerBulkImport(w http.ResponseWriter, r *http.Request) {
	var payload bulkImportPayload
	if err := decodeJsonBody(r.Body, &payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	policy, err := entry_service.ParseConflictPolicy(payload.policy())
	if err != nil {
		handlerError(err, w)
		return
	}

	result, rowErrs, err := a.EntryServiceConfig.ImportEntries(
		r.Context(),
		entry_service.ImportRequest{
			PrizeID: payload.prizeID(),
			CSVText: payload.CSVText,
			Policy:  policy,
		},
	)
	if err != nil {
		if errors.Is(err, raffle_errors.ErrCSVValidation) {
			marshalAndRespond(w, http.StatusBadRequest, map[string]any{
				"error":  err.Error(),
				"errors": rowErrs,
			})
			return
		}
		handlerError(err, w)
		return
	}

	marshalAndRespond(w, http.StatusOK, result)
}
