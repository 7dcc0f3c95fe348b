package bridge

import (
	"taskbar/backend/jsonfile"
)

// Settings returns the front-end settings document, or an empty object
// when it is missing or unreadable.
func (b *Bridge) Settings() map[string]any {
	settings := map[string]any{}
	if _, err := jsonfile.Read(b.settingsPath, &settings); err != nil {
		b.logger.Printf("bridge: settings: %v; using defaults", err)
		return map[string]any{}
	}
	if settings == nil {
		return map[string]any{}
	}
	return settings
}

// SaveSettings replaces the settings document.
func (b *Bridge) SaveSettings(settings map[string]any) error {
	if settings == nil {
		settings = map[string]any{}
	}
	return jsonfile.Write(b.settingsPath, settings, "    ")
}
