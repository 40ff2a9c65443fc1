package config

import (
	"encoding/json"
	"fmt"
)

// Names of the settings seeded into every fresh configuration.
const (
	SettingCacheExpiry  = "cache_expiry"
	SettingMaxCacheSize = "max_cache_size"
)

// Default values for the seeded settings.
const (
	DefaultCacheExpiry  = 300 // seconds
	DefaultMaxCacheSize = 50  // cached entries
)

// JSON keys of the two known top-level fields.
const (
	repositoriesKey = "custom_repositories"
	settingsKey     = "settings"
)

// Configuration is the persisted configuration document.
//
// Top-level keys other than the two known ones are carried through
// load and save untouched, so files shared with newer versions of the
// tool round-trip without losing anything.
type Configuration struct {
	CustomRepositories []string
	Settings           map[string]int

	extra map[string]json.RawMessage
}

// DefaultConfiguration returns the built-in fallback configuration:
// no custom repositories and the seeded cache settings.
func DefaultConfiguration() Configuration {
	return Configuration{
		CustomRepositories: []string{},
		Settings: map[string]int{
			SettingCacheExpiry:  DefaultCacheExpiry,
			SettingMaxCacheSize: DefaultMaxCacheSize,
		},
	}
}

// UnmarshalJSON decodes a stored configuration document. The document
// must be a JSON object; the two known keys decode into their typed
// fields and any other key is retained raw.
func (c *Configuration) UnmarshalJSON(data []byte) error {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	*c = Configuration{}
	for key, raw := range doc {
		switch key {
		case repositoriesKey:
			if err := json.Unmarshal(raw, &c.CustomRepositories); err != nil {
				return fmt.Errorf("invalid %s: %w", repositoriesKey, err)
			}
		case settingsKey:
			if err := json.Unmarshal(raw, &c.Settings); err != nil {
				return fmt.Errorf("invalid %s: %w", settingsKey, err)
			}
		default:
			if c.extra == nil {
				c.extra = make(map[string]json.RawMessage)
			}
			c.extra[key] = raw
		}
	}

	return nil
}

// MarshalJSON encodes the configuration together with any retained
// unknown keys. Nil fields encode as empty containers rather than null
// so a saved document always carries both known keys.
func (c Configuration) MarshalJSON() ([]byte, error) {
	doc := make(map[string]json.RawMessage, len(c.extra)+2)

	repos := c.CustomRepositories
	if repos == nil {
		repos = []string{}
	}
	rawRepos, err := json.Marshal(repos)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s: %w", repositoriesKey, err)
	}
	doc[repositoriesKey] = rawRepos

	settings := c.Settings
	if settings == nil {
		settings = map[string]int{}
	}
	rawSettings, err := json.Marshal(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s: %w", settingsKey, err)
	}
	doc[settingsKey] = rawSettings

	for key, raw := range c.extra {
		doc[key] = raw
	}

	return json.Marshal(doc)
}

// mergeDefaults back-fills any missing top-level key with its default.
// The merge is shallow on purpose: a settings object present in the
// stored file is used as-is, even when it lacks the seeded keys.
func (c *Configuration) mergeDefaults() {
	defaults := DefaultConfiguration()
	if c.CustomRepositories == nil {
		c.CustomRepositories = defaults.CustomRepositories
	}
	if c.Settings == nil {
		c.Settings = defaults.Settings
	}
}

// HasRepository checks if a repository URL is present in the configuration
func (c Configuration) HasRepository(url string) bool {
	for _, repo := range c.CustomRepositories {
		if repo == url {
			return true
		}
	}
	return false
}
