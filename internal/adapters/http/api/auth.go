package api

import (
	"crypto/subtle"
	"net/http"
)

// SecretHeader is the request header carrying the shared service secret.
// Header lookup is case-insensitive, so any casing sent by callers matches.
const SecretHeader = "X-Service-Secret"

// authFailureDetail is the fixed 401 body detail. Existing callers match on
// this exact string.
const authFailureDetail = "Invalid or missing service secret"

// secretVerifier applies the single authentication rule: the raw header
// value, absent or not, must exactly equal the configured secret. A missing
// header yields an empty value, which never matches a non-empty secret.
type secretVerifier struct {
	secret string
}

func newSecretVerifier(secret string) secretVerifier {
	return secretVerifier{secret: secret}
}

func (v secretVerifier) verify(r *http.Request) bool {
	got := r.Header.Get(SecretHeader)
	return subtle.ConstantTimeCompare([]byte(got), []byte(v.secret)) == 1
}
