package controllers

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
)

// tokenCookieName is the cookie carrying the caller's author token.
const tokenCookieName = "token"

// tokenFromRequest extracts the author token from the request cookie.
// Returns the empty string when no cookie is present.
func tokenFromRequest(r *http.Request) string {
	cookie, err := r.Cookie(tokenCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// mintToken generates a fresh opaque author token: 32 random bytes,
// hex-encoded.
func mintToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// setTokenCookie hands the token to the caller as an opaque cookie.
func setTokenCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     tokenCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})
}
