package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// Settings are the couple of user-entered scalars the dashboard persists
// across sessions. Kept in a small JSON file rather than the database -
// they are per-installation preferences, not market data.
type Settings struct {
	Budget float64 `json:"budget"`
	TopN   int     `json:"topN"`
}

type SettingsRepository interface {
	Get() (Settings, error)
	Save(s Settings) error
}

func NewSettingsRepository(path string, defaults Settings) SettingsRepository {
	return &settingsRepositoryHandler{
		path:     path,
		defaults: defaults,
	}
}

type settingsRepositoryHandler struct {
	path     string
	defaults Settings
	mu       sync.Mutex
}

func (h *settingsRepositoryHandler) Get() (Settings, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	data, err := os.ReadFile(h.path)
	if os.IsNotExist(err) {
		return h.defaults, nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read settings file: %w", err)
	}

	s := h.defaults
	if err := json.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings file: %w", err)
	}

	return s, nil
}

func (h *settingsRepositoryHandler) Save(s Settings) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	data, err := json.MarshalIndent(s, "", "    ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(h.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
