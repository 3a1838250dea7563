package utils

import "sync"

var apiKeys struct {
	sync.RWMutex
	set map[string]struct{}
}

// LoadAPIKeys replaces the in-memory API key set. Empty keys are skipped.
func LoadAPIKeys(keys []string) {
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		if k != "" {
			set[k] = struct{}{}
		}
	}
	apiKeys.Lock()
	apiKeys.set = set
	apiKeys.Unlock()
}

// APIKeysEnabled reports whether at least one API key is configured.
func APIKeysEnabled() bool {
	apiKeys.RLock()
	defer apiKeys.RUnlock()
	return len(apiKeys.set) > 0
}

// ValidateAPIKey checks whether the given key is in the configured set.
func ValidateAPIKey(key string) bool {
	apiKeys.RLock()
	defer apiKeys.RUnlock()
	_, ok := apiKeys.set[key]
	return ok
}
