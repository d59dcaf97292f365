package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"
)

//go:embed *.json
var i18nFiles embed.FS

const DefaultLocale = "en"

var (
	mu       sync.RWMutex
	messages map[string]string
)

func init() {
	_ = Load(DefaultLocale)
}

// Load replaces the active message table with the embedded <locale>.json.
func Load(locale string) error {
	if locale == "" {
		locale = DefaultLocale
	}
	filename := locale + ".json"

	data, err := i18nFiles.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read embedded i18n file %s: %w", filename, err)
	}

	loaded := make(map[string]string)
	if err := json.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to parse i18n file %s: %w", filename, err)
	}

	mu.Lock()
	messages = loaded
	mu.Unlock()
	return nil
}

func T(code string) string {
	mu.RLock()
	defer mu.RUnlock()
	if msg, ok := messages[code]; ok {
		return msg
	}
	return code // fallback
}
