package hashio

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
)

// SHA256 hashes the given file with crypto.SHA256 and returns the checksum as a
// base-16 (hex) string.
func SHA256(filename string) (string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return "", err
	}
	defer file.Close()

	return SHA256Reader(file)
}

// SHA256Reader consumes r and returns the hex encoded SHA-256 of its content.
func SHA256Reader(r io.Reader) (string, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", fmt.Errorf("failed to read content: %w", err)
	}
	return fmt.Sprintf("%x", h.Sum(nil)), nil
}
