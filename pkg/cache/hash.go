package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// hashKey builds a namespaced key of the form prefix:hash(parts...).
// The parts are JSON-encoded before hashing so that slide indexes,
// format strings and deck hashes all contribute unambiguously.
func hashKey(prefix string, parts ...interface{}) string {
	data, _ := json.Marshal(parts)
	sum := sha256.Sum256(data)
	// Full SHA-256 so two decks can never share an artifact key.
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(sum[:]))
}

// Hash returns the SHA-256 of data as a 64-character hex string.
// The preview server hashes the serialized deck with this to detect
// config or readings changes between reloads.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
