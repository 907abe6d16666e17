package mockapi

import (
	"crypto/rand"
	"encoding/base64"
	"time"
)

// TokenPrefix marks issued registration tokens as mock-issued so they can
// never be mistaken for a real control-plane token.
const TokenPrefix = "MOCK_REG_"

// tokenTTL is how long an issued registration token claims to be valid.
const tokenTTL = time.Hour

// NewToken returns a fresh registration token and its expiry time.
// The token is 32 cryptographically random bytes, base64-encoded and
// prefixed with TokenPrefix. Tokens are not recorded anywhere; every call
// produces an independent value.
func NewToken() (string, time.Time) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic("crypto/rand failed: " + err.Error())
	}
	return TokenPrefix + base64.RawURLEncoding.EncodeToString(b), time.Now().UTC().Add(tokenTTL)
}
