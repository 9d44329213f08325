// Package signature implements HMAC-SHA256 signing and constant-time
// verification for webhook payloads.
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Sign returns the lowercase hex HMAC-SHA256 of payload under secret, the
// form carried in the signature header.
func Sign(secret, payload []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether providedHex is the valid HMAC-SHA256 of payload
// under secret. The comparison runs in constant time on the decoded bytes;
// malformed hex and wrong-length signatures are rejected through the same
// path without revealing where the mismatch occurred.
func Verify(secret, payload []byte, providedHex string) bool {
	provided, err := hex.DecodeString(providedHex)
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, secret)
	mac.Write(payload)
	expected := mac.Sum(nil)

	return hmac.Equal(expected, provided)
}
