package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDriverPasswordFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^PnG[A-Z0-9]{8}$`)

	for i := 0; i < 50; i++ {
		password, err := GenerateDriverPassword()
		require.NoError(t, err)
		assert.Regexp(t, pattern, password)
	}
}

func TestGenerateDriverPasswordsDiffer(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		password, err := GenerateDriverPassword()
		require.NoError(t, err)
		assert.False(t, seen[password], "duplicate password %s", password)
		seen[password] = true
	}
}
