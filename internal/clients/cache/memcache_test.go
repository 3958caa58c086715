package cache

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_formatKey_ShouldEscapeSpaces(t *testing.T) {
	assert.Equal(t, "dev.finances:alice:transactions", formatKey("dev.finances:alice:transactions"))
	assert.Equal(t, "dev.finances:John%20Doe:transactions", formatKey("dev.finances:John Doe:transactions"))
}

func Test_formatKey_ShouldHashLongKeys(t *testing.T) {
	key := formatKey("dev.finances:" + strings.Repeat("a", 300) + ":transactions")

	assert.Len(t, key, 64)
	assert.NotContains(t, key, " ")
}
