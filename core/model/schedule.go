package model

// ParticipantID is the opaque identifier of one child in all generated
// documents. Real names never appear in output data; the display widget maps
// ids to names on its side.
type ParticipantID string

// DayRules holds the recurring weekly template for one participant on one
// weekday: what to wear, what to pack and the usual drop-off and pick-up
// times. Fields left empty fall back to built-in defaults at build time.
type DayRules struct {
	Clothing string   `json:"clothing"`
	Pack     []string `json:"pack"`
	Dropoff  string   `json:"dropoff"`
	Pickup   string   `json:"pickup"`
}

// ClubEntry is one scheduled activity occurrence. Time carries an
// "HH:MM-HH:MM" range; Participants lists the ids attending.
type ClubEntry struct {
	Time         string          `json:"time"`
	Participants []ParticipantID `json:"participants"`
	Name         string          `json:"name"`
}

// RulesDoc is the recurring weekday rules document. Days is keyed by full
// English weekday name. The optional label maps override the built-in
// dictionaries (document wins on key collision).
type RulesDoc struct {
	Days           map[string]map[ParticipantID]DayRules `json:"days"`
	ClothingLabels map[string]string                     `json:"clothing_labels"`
	PackLabels     map[string]string                     `json:"pack_labels"`
}

// ClubsDoc is the club schedule document, keyed by weekday name. ShortNames
// optionally extends the abbreviation table used for display names.
type ClubsDoc struct {
	Days       map[string][]ClubEntry `json:"days"`
	ShortNames map[string]string      `json:"short_names"`
}

// PackDoc optionally overrides pack-item codes per weekday and participant.
// An entry here takes precedence over the recurring rules' pack codes.
type PackDoc struct {
	Days map[string]map[ParticipantID][]string `json:"days"`
}
