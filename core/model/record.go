package model

// SlotPlaceholder fills an unoccupied display slot field.
const SlotPlaceholder = "-"

// LabeledItem pairs a raw code with its resolved display label.
type LabeledItem struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// SlotDisplay is one of the four fixed daily time buckets shown by the
// widget. Unfilled slots carry the placeholder in every field.
type SlotDisplay struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Name  string `json:"name"`
}

// PlaceholderSlot returns an unoccupied slot.
func PlaceholderSlot() SlotDisplay {
	return SlotDisplay{Start: SlotPlaceholder, End: SlotPlaceholder, Name: SlotPlaceholder}
}

// ClubRef is one club occurrence as it appears in a child's raw clubs list.
type ClubRef struct {
	Time string `json:"time"`
	Name string `json:"name"`
}

// ChildView is the fully resolved per-participant view of one day.
// ClubsDisplay always has exactly 4 entries in morning/lunch/afternoon/
// after-school order; the pack convenience fields always cover 3 positions.
type ChildView struct {
	Clothing     LabeledItem   `json:"clothing"`
	Pack         []LabeledItem `json:"pack"`
	PackItem1    string        `json:"pack_item1"`
	PackItem2    string        `json:"pack_item2"`
	PackItem3    string        `json:"pack_item3"`
	Dropoff      string        `json:"dropoff"`
	Pickup       string        `json:"pickup"`
	Clubs        []ClubRef     `json:"clubs"`
	ClubsDisplay []SlotDisplay `json:"clubs_display"`
}

// DayRecord is the denormalized output document for one calendar day.
type DayRecord struct {
	Day        string                      `json:"day"`
	Date       string                      `json:"date"`
	DateNumber int                         `json:"date_number"`
	DateSuffix string                      `json:"date_suffix"`
	DateMonth  string                      `json:"date_month"`
	Children   map[ParticipantID]ChildView `json:"children"`
}

// WeekRecord is the denormalized output document for one week. WeekOrder
// lists, in chronological order, only the weekdays present in the recurring
// rules.
type WeekRecord struct {
	WeekOrder []string             `json:"week_order"`
	Week      map[string]DayRecord `json:"week"`
}
