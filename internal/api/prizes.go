package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tcp_snm/raffle/internal/service/prize_service"
)

func (a *Api) HandlerListPrizes(w http.ResponseWriter, r *http.Request) {
	prizes, err := a.PrizeServiceConfig.ListPrizes(r.Context())
	if err != nil {
		handlerError(err, w)
		return
	}
	marshalAndRespond(w, http.StatusOK, prizes)
}

func (a *Api) HandlerGetPrize(w http.ResponseWriter, r *http.Request) {
	prize, err := a.PrizeServiceConfig.GetPrizeByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handlerError(err, w)
		return
	}
	marshalAndRespond(w, http.StatusOK, prize)
}

func (a *Api) HandlerCreatePrize(w http.ResponseWriter, r *http.Request) {
	var prize prize_service.Prize
	if err := decodeJsonBody(r.Body, &prize); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := a.PrizeServiceConfig.CreatePrize(r.Context(), prize)
	if err != nil {
		handlerError(err, w)
		return
	}

	marshalAndRespond(w, http.StatusCreated, created)
}

func (a *Api) HandlerUpdatePrize(w http.ResponseWriter, r *http.Request) {
	prizeID := chi.URLParam(r, "id")

	var update prize_service.PrizeUpdate
	if err := decodeJsonBody(r.Body, &update); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := a.PrizeServiceConfig.UpdatePrize(r.Context(), prizeID, update)
	if err != nil {
		handlerError(err, w)
		return
	}

	// a changed publish time must be visible to checks immediately
	a.LotteryServiceConfig.Invalidate(prizeID)

	marshalAndRespond(w, http.StatusOK, updated)
}

func (a *Api) HandlerDeletePrize(w http.ResponseWriter, r *http.Request) {
	prizeID := chi.URLParam(r, "id")

	entriesDeleted, err := a.PrizeServiceConfig.DeletePrize(r.Context(), prizeID)
	if err != nil {
		handlerError(err, w)
		return
	}

	a.LotteryServiceConfig.Invalidate(prizeID)

	marshalAndRespond(w, http.StatusOK, map[string]any{
		"ok":              true,
		"entries_deleted": entriesDeleted,
	})
}

func (a *Api) HandlerPublishNow(w http.ResponseWriter, r *http.Request) {
	prizeID := chi.URLParam(r, "id")

	prize, err := a.PrizeServiceConfig.PublishNow(r.Context(), prizeID)
	if err != nil {
		handlerError(err, w)
		return
	}

	a.LotteryServiceConfig.Invalidate(prizeID)

	marshalAndRespond(w, http.StatusOK, prize)
}
