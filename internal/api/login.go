package api

import (
	"fmt"
	"net/http"

	"github.com/tcp_snm/raffle/internal/service/auth_service"
	"github.com/tcp_snm/raffle/middleware"
)

func (a *Api) HandlerLogin(w http.ResponseWriter, r *http.Request) {
	var request auth_service.AdminLoginRequest

	// decode from the json body
	err := decodeJsonBody(r.Body, &request)
	if err != nil {
		msg := fmt.Sprintf("invalid request payload, %s", err.Error())
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	// verify the secret and gen a jwt token
	response, jwtToken, tokenExpiry, err := a.AuthServiceConfig.Login(
		r.Context(),
		request,
	)
	if err != nil {
		handlerError(err, w)
		return
	}

	// set jwt session cookie
	cookie := &http.Cookie{
		Name:     middleware.KeyJwtSessionCookieName,
		Value:    jwtToken,
		Expires:  tokenExpiry,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	}
	http.SetCookie(w, cookie)

	marshalAndRespond(w, http.StatusOK, response)
}
