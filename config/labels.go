package config

// LabelsConfig carries the built-in display dictionaries. Entries here are
// merged under any per-dataset label overrides, which win on collision.
type LabelsConfig struct {
	Clothing       map[string]string `json:"clothing"`
	Pack           map[string]string `json:"pack"`
	ClubShortNames map[string]string `json:"club_short_names"`
}

// SetDefaults fills the compiled-in dictionaries without clobbering
// configured entries.
func (c *LabelsConfig) SetDefaults() {
	c.Clothing = underlay(c.Clothing, map[string]string{
		"uniform": "Uniform",
		"sport":   "Sports Kit",
		"casual":  "Casual",
		"smart":   "Smart",
	})
	c.Pack = underlay(c.Pack, map[string]string{
		"snack":    "Snack",
		"water":    "Water Bottle",
		"homework": "Homework Folder",
		"reading":  "Reading Folder",
		"pe_kit":   "PE Kit",
		"library":  "Library Book",
		"swim":     "Swim Bag",
	})
	c.ClubShortNames = underlay(c.ClubShortNames, map[string]string{
		"Creative Art Club": "Art",
		"Chess Club":        "Chess",
		"Street Dance Club": "Dance",
		"Multi Sports Club": "Sports",
		"Homework Club":     "Homework",
		"Choir Club":        "Choir",
		"Drama Club":        "Drama",
	})
}

// underlay adds defaults for keys absent from m.
func underlay(m, defaults map[string]string) map[string]string {
	if m == nil {
		m = make(map[string]string, len(defaults))
	}
	for k, v := range defaults {
		if _, ok := m[k]; !ok {
			m[k] = v
		}
	}
	return m
}
