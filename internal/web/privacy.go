package web

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"

	"github.com/gin-gonic/gin"
)

// visitorHasher derives stable, non-reversible visitor keys.
type visitorHasher struct {
	salt string
}

// key hashes the client address with the salt, truncated for storage.
func (h visitorHasher) key(ip string) string {
	hash := sha256.New()
	hash.Write([]byte(ip + h.salt))
	return hex.EncodeToString(hash.Sum(nil))[:16]
}

// trackingAllowed respects the Do Not Track header.
func trackingAllowed(c *gin.Context) bool {
	return c.GetHeader("DNT") != "1"
}

func randomToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
