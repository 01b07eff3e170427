package api

import "net/http"

func (a *Api) HandlerReadiness(w http.ResponseWriter, r *http.Request) {
	marshalAndRespond(w, http.StatusOK, map[string]string{"status": "ok"})
}
