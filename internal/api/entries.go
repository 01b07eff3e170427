package api

import (
	"net/http"

	"github.com/tcp_snm/raffle/internal/service/entry_service"
)

func (a *Api) HandlerListEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := a.EntryServiceConfig.ListEntries(
		r.Context(),
		r.URL.Query().Get("prize_id"),
	)
	if err != nil {
		handlerError(err, w)
		return
	}
	marshalAndRespond(w, http.StatusOK, entries)
}

func (a *Api) HandlerCountEntries(w http.ResponseWriter, r *http.Request) {
	count, err := a.EntryServiceConfig.CountEntries(
		r.Context(),
		r.URL.Query().Get("prize_id"),
	)
	if err != nil {
		handlerError(err, w)
		return
	}
	marshalAndRespond(w, http.StatusOK, map[string]int64{"count": count})
}

func (a *Api) HandlerCreateEntry(w http.ResponseWriter, r *http.Request) {
	var entry entry_service.Entry
	if err := decodeJsonBody(r.Body, &entry); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := a.EntryServiceConfig.CreateEntry(r.Context(), entry)
	if err != nil {
		handlerError(err, w)
		return
	}

	marshalAndRespond(w, http.StatusCreated, created)
}

func (a *Api) HandlerUpsertEntry(w http.ResponseWriter, r *http.Request) {
	var entry entry_service.Entry
	if err := decodeJsonBody(r.Body, &entry); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	stored, err := a.EntryServiceConfig.UpsertEntry(r.Context(), entry)
	if err != nil {
		handlerError(err, w)
		return
	}

	marshalAndRespond(w, http.StatusOK, stored)
}
