package utils

import (
	"crypto/rand"
	"fmt"
)

const (
	passwordPrefix  = "PnG"
	passwordLength  = 8
	passwordCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// GenerateDriverPassword produces the one-time credential sent with a driver
// approval so the backend can provision the driver's login. Format is the
// brand prefix followed by 8 random base-36 uppercase characters.
func GenerateDriverPassword() (string, error) {
	buf := make([]byte, passwordLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate password: %v", err)
	}

	for i, b := range buf {
		buf[i] = passwordCharset[int(b)%len(passwordCharset)]
	}

	return passwordPrefix + string(buf), nil
}
