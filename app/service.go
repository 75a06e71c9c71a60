package app

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hallboard/schoolfeed/config"
	"github.com/hallboard/schoolfeed/core/model"
	"github.com/hallboard/schoolfeed/core/schedule"
	"github.com/hallboard/schoolfeed/infra/docstore"
	"github.com/hallboard/schoolfeed/infra/logger"
)

// Service runs one build of the schedule feed: load the four documents,
// derive today and the current week, apply date overrides and write both
// outputs together.
type Service struct {
	cfg *config.Config
	log logger.Logger
}

// New creates a Service from the configuration. Each run carries a fresh
// correlation id in its logs.
func New(cfg *config.Config) *Service {
	return &Service{
		cfg: cfg,
		log: logger.NewWithFields("pipeline", map[string]any{"run_id": uuid.NewString()}),
	}
}

// Run builds and writes the feed for the given target date. Input absence
// degrades silently; only output writes are fatal.
func (s *Service) Run(target time.Time) error {
	rules := docstore.LoadDocument[model.RulesDoc](s.cfg.Paths.Rules, s.log)
	clubs := docstore.LoadDocument[model.ClubsDoc](s.cfg.Paths.Clubs, s.log)
	pack := docstore.LoadDocument[model.PackDoc](s.cfg.Paths.Pack, s.log)
	overrides := docstore.LoadTree(s.cfg.Paths.Overrides, s.log)

	builder := schedule.NewBuilder(schedule.BuilderConfig{
		Rules: rules,
		Clubs: clubs,
		Pack:  pack,
		Labels: schedule.NewLabels(schedule.LabelDefaults{
			Clothing:       s.cfg.Labels.Clothing,
			Pack:           s.cfg.Labels.Pack,
			ClubShortNames: s.cfg.Labels.ClubShortNames,
		}, rules.ClothingLabels, rules.PackLabels, clubs.ShortNames),
		Participants:     participants(s.cfg),
		MissingDayPolicy: schedule.MissingDayPolicy(s.cfg.Build.MissingDayPolicy),
		SnackCode:        s.cfg.Build.SnackCode,
		SnackLabel:       s.cfg.Build.SnackLabel,
	}, s.log)

	iso := schedule.ISODate(target)
	weekday := schedule.WeekdayName(target)
	s.log.Infof("building feed for %s (%s)", iso, weekday)

	today, err := schedule.ApplyOverrides(builder.BuildDay(weekday, iso), overrides)
	if err != nil {
		return err
	}

	week := builder.BuildWeek(schedule.MondayOf(target))
	mergedWeek := make(map[string]any, len(week.Week))
	for name, day := range week.Week {
		merged, err := schedule.ApplyOverrides(day, overrides)
		if err != nil {
			return err
		}
		mergedWeek[name] = merged
	}
	weekOut := map[string]any{
		"week_order": week.WeekOrder,
		"week":       mergedWeek,
	}

	// Both outputs are written together, only after all derivation succeeded.
	if err := docstore.WriteJSON(s.cfg.Paths.Today, today); err != nil {
		return fmt.Errorf("write today feed: %w", err)
	}
	if err := docstore.WriteJSON(s.cfg.Paths.Week, weekOut); err != nil {
		return fmt.Errorf("write week feed: %w", err)
	}
	s.log.Infof("wrote %s and %s (%d weekdays)", s.cfg.Paths.Today, s.cfg.Paths.Week, len(week.WeekOrder))
	return nil
}

func participants(cfg *config.Config) []schedule.Participant {
	out := make([]schedule.Participant, 0, len(cfg.Participants))
	for _, p := range cfg.Participants {
		out = append(out, schedule.Participant{
			ID:             model.ParticipantID(p.ID),
			DefaultDropoff: p.DefaultDropoff,
			DefaultPickup:  p.DefaultPickup,
		})
	}
	return out
}
