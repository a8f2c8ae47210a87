package controllers

import "net/http"

// RootController serves the landing route and hands new callers their
// author token.
type RootController struct{}

// NewRootController creates a new RootController
func NewRootController() *RootController {
	return &RootController{}
}

// Index greets the caller and sets a fresh token cookie when the
// request carries none.
func (rc *RootController) Index(w http.ResponseWriter, r *http.Request) {
	if tokenFromRequest(r) == "" {
		token, err := mintToken()
		if err != nil {
			sendError(w, "Failed to mint token: "+err.Error(), http.StatusInternalServerError)
			return
		}
		setTokenCookie(w, token)
	}

	sendJSON(w, http.StatusOK, map[string]string{"msg": "pinboard"})
}
