package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashBytes retorna o sha256 em hexadecimal do conteúdo
func HashBytes(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
