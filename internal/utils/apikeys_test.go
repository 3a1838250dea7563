package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func resetAPIKeys() {
	apiKeys.Lock()
	apiKeys.set = nil
	apiKeys.Unlock()
}

func TestLoadAPIKeysAndValidation(t *testing.T) {
	defer resetAPIKeys()

	assert.False(t, APIKeysEnabled())

	LoadAPIKeys([]string{"a", "b", ""})

	assert.True(t, APIKeysEnabled())
	assert.True(t, ValidateAPIKey("a"))
	assert.True(t, ValidateAPIKey("b"))
	assert.False(t, ValidateAPIKey("c"))
	assert.False(t, ValidateAPIKey(""))
}

func TestLoadAPIKeysReplacesSet(t *testing.T) {
	defer resetAPIKeys()

	LoadAPIKeys([]string{"a", "b"})
	LoadAPIKeys([]string{"c"})

	assert.False(t, ValidateAPIKey("a"))
	assert.True(t, ValidateAPIKey("c"))

	LoadAPIKeys(nil)
	assert.False(t, APIKeysEnabled())
}
