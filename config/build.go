package config

import "fmt"

// BuildConfig tunes the derivation engine.
type BuildConfig struct {
	// MissingDayPolicy selects the fallback for a weekday absent from the
	// recurring rules: "empty" or "synthetic".
	MissingDayPolicy string `json:"missing_day_policy"`
	// SnackCode is the pack-item code appended by snack inference.
	SnackCode string `json:"snack_code"`
	// SnackLabel labels the snack code when no dictionary entry exists.
	SnackLabel string `json:"snack_label"`
}

// SetDefaults applies sane defaults.
func (c *BuildConfig) SetDefaults() {
	if c.MissingDayPolicy == "" {
		c.MissingDayPolicy = "empty"
	}
	if c.SnackCode == "" {
		c.SnackCode = "snack"
	}
	if c.SnackLabel == "" {
		c.SnackLabel = "Snack"
	}
}

// Validate checks mandatory fields.
func (c BuildConfig) Validate() error {
	if c.MissingDayPolicy != "empty" && c.MissingDayPolicy != "synthetic" {
		return fmt.Errorf("unknown missing_day_policy %s", c.MissingDayPolicy)
	}
	return nil
}
