package utils

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"strings"
)

// PhotoHash returns the hex SHA-256 of raw photo bytes
func PhotoHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// PhotoHashFromBase64 hashes a base64 photo, with or without a data URL prefix.
// Returns "" when the payload cannot be decoded.
func PhotoHashFromBase64(encoded string) string {
	data, err := DecodeBase64Image(encoded)
	if err != nil {
		return ""
	}
	return PhotoHash(data)
}

// DecodeBase64Image decodes a base64 image, stripping a "data:image/...;base64," prefix if present
func DecodeBase64Image(encoded string) ([]byte, error) {
	if idx := strings.Index(encoded, ","); idx >= 0 && strings.HasPrefix(encoded, "data:") {
		encoded = encoded[idx+1:]
	}
	return base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
}
