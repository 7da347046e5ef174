package circuitir

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// Fingerprint returns the SHA3-256 hex digest of a compiled circuit's
// text, letting callers cheaply confirm two compiler runs produced
// byte-identical output without diffing the full text.
func Fingerprint(circuit string) string {
	sum := sha3.Sum256([]byte(circuit))
	return hex.EncodeToString(sum[:])
}
