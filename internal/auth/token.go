package auth

import (
	"encoding/base64"
	"time"
)

// CreateToken issues an opaque bearer token for the given email.
//
// The token is the base64 encoding of "email:timestamp" and carries no
// signature; it is returned to clients for bookkeeping only and is never
// verified server-side.
func CreateToken(email string) string {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	return base64.StdEncoding.EncodeToString([]byte(email + ":" + timestamp))
}
