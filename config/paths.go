package config

// PathsConfig locates the four input documents and the generated outputs.
type PathsConfig struct {
	// Rules is the recurring weekday rules document.
	Rules string `json:"rules"`
	// Clubs is the club schedule document.
	Clubs string `json:"clubs"`
	// Pack is the pack schedule document.
	Pack string `json:"pack"`
	// Overrides is the date-keyed overrides document.
	Overrides string `json:"overrides"`
	// Today and Week are the two generated feed files.
	Today string `json:"today"`
	Week  string `json:"week"`
}

// SetDefaults applies the conventional data and serving locations.
func (c *PathsConfig) SetDefaults() {
	if c.Rules == "" {
		c.Rules = "data/rules.json"
	}
	if c.Clubs == "" {
		c.Clubs = "data/clubs.json"
	}
	if c.Pack == "" {
		c.Pack = "data/pack.json"
	}
	if c.Overrides == "" {
		c.Overrides = "data/overrides.json"
	}
	if c.Today == "" {
		c.Today = "public/today.json"
	}
	if c.Week == "" {
		c.Week = "public/week.json"
	}
}
