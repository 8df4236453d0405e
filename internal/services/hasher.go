package services

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashContent derives the cache key for an analysis request: the hex SHA-256
// digest of the resume bytes followed by the UTF-8 job description. Resume
// bytes always precede the description, so swapping content between the two
// inputs changes the key.
func HashContent(resume []byte, jobDescription string) string {
	h := sha256.New()
	h.Write(resume)
	h.Write([]byte(jobDescription))
	return hex.EncodeToString(h.Sum(nil))
}
