package common

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/google/uuid"
)

// GenerateUUID 生成 UUID
func GenerateUUID() string {
	return uuid.New().String()
}

// HashString 計算字串的 SHA-256 十六進位雜湊
func HashString(s string) string {
	return HashBytes([]byte(s))
}

// HashBytes 計算位元組的 SHA-256 十六進位雜湊
func HashBytes(b []byte) string {
	hash := sha256.Sum256(b)
	return hex.EncodeToString(hash[:])
}
