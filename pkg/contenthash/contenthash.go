// Package contenthash derives the content-addressed identity of uploaded
// artifacts: the same bytes always produce the same digest regardless of
// filename or upload time.
package contenthash

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
)

// Sum returns the lowercase hex SHA-256 digest of data.
func Sum(data []byte) string {
	digest := sha256.Sum256(data)
	return hex.EncodeToString(digest[:])
}

// File returns the lowercase hex SHA-256 digest of the file at path.
func File(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
