package schedule

import (
	"strconv"
	"strings"
	"time"

	"github.com/hallboard/schoolfeed/core/model"
	"github.com/hallboard/schoolfeed/infra/logger"
)

// MissingDayPolicy selects the fallback when a weekday has no entry in the
// recurring rules.
type MissingDayPolicy string

const (
	// MissingDayEmpty emits an all-blank record for every participant.
	MissingDayEmpty MissingDayPolicy = "empty"
	// MissingDaySynthetic runs the normal derivation with empty rules so the
	// default drop-off/pick-up anchors still appear in the display.
	MissingDaySynthetic MissingDayPolicy = "synthetic"
)

// The four fixed display slots, in output order.
const (
	slotMorning = iota
	slotLunch
	slotAfternoon
	slotAfterSchool
	slotCount
)

// Slot boundaries and the snack window, in minutes from midnight.
const (
	lunchStartMin       = 11 * 60
	afternoonStartMin   = 14 * 60
	afterSchoolStartMin = 17 * 60
	snackFromMin        = 15 * 60
	snackUntilMin       = 17 * 60
)

// Participant couples an anonymized id with its built-in default times.
type Participant struct {
	ID             model.ParticipantID
	DefaultDropoff string
	DefaultPickup  string
}

// BuilderConfig carries the loaded documents and the injected dictionaries.
type BuilderConfig struct {
	Rules            model.RulesDoc
	Clubs            model.ClubsDoc
	Pack             model.PackDoc
	Labels           Labels
	Participants     []Participant
	MissingDayPolicy MissingDayPolicy
	SnackCode        string
	SnackLabel       string
}

// Builder derives day and week records from the schedule documents.
type Builder struct {
	cfg BuilderConfig
	log logger.Logger
}

// NewBuilder creates a Builder. Dictionaries and defaults are taken from cfg
// so tests can substitute alternates without shared state.
func NewBuilder(cfg BuilderConfig, log logger.Logger) *Builder {
	if log == nil {
		log = logger.NopLogger{}
	}
	if cfg.SnackCode == "" {
		cfg.SnackCode = "snack"
	}
	if cfg.SnackLabel == "" {
		cfg.SnackLabel = "Snack"
	}
	if cfg.MissingDayPolicy == "" {
		cfg.MissingDayPolicy = MissingDayEmpty
	}
	return &Builder{cfg: cfg, log: log}
}

// BuildDay produces the denormalized record for one weekday and calendar
// date. A weekday absent from the recurring rules degrades per the
// configured MissingDayPolicy instead of failing.
func (b *Builder) BuildDay(weekday, isoDate string) model.DayRecord {
	num, suffix, month := dateParts(isoDate)
	rec := model.DayRecord{
		Day:        weekday,
		Date:       isoDate,
		DateNumber: num,
		DateSuffix: suffix,
		DateMonth:  month,
		Children:   make(map[model.ParticipantID]model.ChildView, len(b.cfg.Participants)),
	}

	rules, ok := b.cfg.Rules.Days[weekday]
	if !ok {
		b.log.Debugw("weekday has no recurring rules", map[string]any{
			"weekday": weekday, "policy": string(b.cfg.MissingDayPolicy),
		})
		if b.cfg.MissingDayPolicy == MissingDayEmpty {
			for _, p := range b.cfg.Participants {
				rec.Children[p.ID] = emptyChild()
			}
			return rec
		}
		rules = map[model.ParticipantID]model.DayRules{}
	}

	for _, p := range b.cfg.Participants {
		rec.Children[p.ID] = b.buildChild(p, rules[p.ID], weekday)
	}
	return rec
}

func (b *Builder) buildChild(p Participant, r model.DayRules, weekday string) model.ChildView {
	labels := b.cfg.Labels

	codes, _ := resolve(
		func() ([]string, bool) {
			day, ok := b.cfg.Pack.Days[weekday]
			if !ok {
				return nil, false
			}
			c, ok := day[p.ID]
			return c, ok
		},
		func() ([]string, bool) { return r.Pack, r.Pack != nil },
	)

	dropoff, _ := resolve(
		func() (string, bool) { return r.Dropoff, r.Dropoff != "" },
		func() (string, bool) { return p.DefaultDropoff, true },
	)
	pickup, _ := resolve(
		func() (string, bool) { return r.Pickup, r.Pickup != "" },
		func() (string, bool) { return p.DefaultPickup, true },
	)

	clubs := make([]model.ClubRef, 0, 2)
	slots := placeholderSlots()
	var occupied [slotCount]bool
	for _, entry := range b.cfg.Clubs.Days[weekday] {
		if !attends(entry.Participants, p.ID) {
			continue
		}
		clubs = append(clubs, model.ClubRef{Time: entry.Time, Name: entry.Name})
		start, end, ok := splitTimeRange(entry.Time)
		if !ok {
			b.log.Warnf("club %q has malformed time range %q", entry.Name, entry.Time)
			continue
		}
		startMin, ok := parseClock(start)
		if !ok {
			continue
		}
		// First-seen-wins: later entries never displace an occupied slot.
		idx := slotFor(startMin)
		if occupied[idx] {
			continue
		}
		slots[idx] = model.SlotDisplay{Start: start, End: end, Name: labels.ClubShort(entry.Name)}
		occupied[idx] = true
	}

	// The display keeps a drop-off anchor in the morning slot and a pick-up
	// anchor in the afternoon slot whenever no activity claims them.
	if !occupied[slotMorning] && dropoff != "" {
		slots[slotMorning].Start = dropoff
	}
	if !occupied[slotAfternoon] && pickup != "" {
		slots[slotAfternoon].Start = pickup
		slots[slotAfternoon].End = pickup
	}

	if b.slotsNeedSnack(slots) && !hasCode(codes, b.cfg.SnackCode) {
		codes = append(append([]string{}, codes...), b.cfg.SnackCode)
	}

	pack := make([]model.LabeledItem, 0, len(codes))
	for _, code := range codes {
		label := labels.Pack(code)
		if code == b.cfg.SnackCode && label == code {
			label = b.cfg.SnackLabel
		}
		pack = append(pack, model.LabeledItem{Code: code, Label: label})
	}
	items := packItems(pack)

	return model.ChildView{
		Clothing:     model.LabeledItem{Code: r.Clothing, Label: labels.Clothing(r.Clothing)},
		Pack:         pack,
		PackItem1:    items[0],
		PackItem2:    items[1],
		PackItem3:    items[2],
		Dropoff:      dropoff,
		Pickup:       pickup,
		Clubs:        clubs,
		ClubsDisplay: slots,
	}
}

// slotsNeedSnack reports whether any displayed slot starts inside the snack
// window, anchors included.
func (b *Builder) slotsNeedSnack(slots []model.SlotDisplay) bool {
	for _, s := range slots {
		m, ok := parseClock(s.Start)
		if ok && m >= snackFromMin && m < snackUntilMin {
			return true
		}
	}
	return false
}

func emptyChild() model.ChildView {
	return model.ChildView{
		Pack:         []model.LabeledItem{},
		Clubs:        []model.ClubRef{},
		ClubsDisplay: placeholderSlots(),
	}
}

func placeholderSlots() []model.SlotDisplay {
	slots := make([]model.SlotDisplay, slotCount)
	for i := range slots {
		slots[i] = model.PlaceholderSlot()
	}
	return slots
}

// packItems pads the convenience fields to exactly three positions.
func packItems(pack []model.LabeledItem) [3]string {
	var items [3]string
	for i := 0; i < len(items) && i < len(pack); i++ {
		items[i] = pack[i].Label
	}
	return items
}

func slotFor(startMin int) int {
	switch {
	case startMin < lunchStartMin:
		return slotMorning
	case startMin < afternoonStartMin:
		return slotLunch
	case startMin < afterSchoolStartMin:
		return slotAfternoon
	default:
		return slotAfterSchool
	}
}

func attends(ids []model.ParticipantID, id model.ParticipantID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func hasCode(codes []string, code string) bool {
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}

// splitTimeRange splits an "HH:MM-HH:MM" range.
func splitTimeRange(s string) (start, end string, ok bool) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), true
}

// parseClock converts "HH:MM" to minutes from midnight.
func parseClock(s string) (int, bool) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// dateParts derives the calendar decorations from an ISO date.
func dateParts(isoDate string) (num int, suffix, month string) {
	t, err := time.Parse(isoLayout, isoDate)
	if err != nil {
		return 0, "", ""
	}
	num = t.Day()
	return num, ordinalSuffix(num), t.Format("Jan")
}

func ordinalSuffix(n int) string {
	if n%100 >= 11 && n%100 <= 13 {
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
