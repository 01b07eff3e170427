package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/tcp_snm/raffle/internal/service/lottery_service"
)

// checkPayload accepts both the canonical snake_case fields and the
// camelCase names the original participant page sends.
type checkPayload struct {
	PrizeID          string `json:"prize_id"`
	PrizeIDCamel     string `json:"prizeId"`
	EntryNumber      string `json:"entry_number"`
	EntryNumberCamel string `json:"entryNumber"`
	Password         string `json:"password"`
}

func (p checkPayload) toRequest() lottery_service.CheckRequest {
	request := lottery_service.CheckRequest{
		PrizeID:     strings.TrimSpace(p.PrizeID),
		EntryNumber: strings.TrimSpace(p.EntryNumber),
		Password:    p.Password,
	}
	if request.PrizeID == "" {
		request.PrizeID = strings.TrimSpace(p.PrizeIDCamel)
	}
	if request.EntryNumber == "" {
		request.EntryNumber = strings.TrimSpace(p.EntryNumberCamel)
	}
	return request
}

func (a *Api) HandlerLotteryCheck(w http.ResponseWriter, r *http.Request) {
	var payload checkPayload
	if err := decodeJsonBody(r.Body, &payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := a.LotteryServiceConfig.Check(r.Context(), payload.toRequest())
	if err != nil {
		handlerError(err, w)
		return
	}

	marshalAndRespond(w, http.StatusOK, result)
}

func (a *Api) HandlerPublishStatus(w http.ResponseWriter, r *http.Request) {
	status, err := a.LotteryServiceConfig.PublishStatus(
		r.Context(),
		chi.URLParam(r, "prizeId"),
	)
	if err != nil {
		handlerError(err, w)
		return
	}
	marshalAndRespond(w, http.StatusOK, status)
}
