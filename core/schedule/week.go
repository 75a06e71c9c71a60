package schedule

import (
	"time"

	"github.com/hallboard/schoolfeed/core/model"
)

// BuildWeek produces the week record for the 7 days starting at monday.
// Days whose weekday has no entry in the recurring rules are skipped
// entirely, even when club or pack data exists for them. WeekOrder keeps
// chronological order.
func (b *Builder) BuildWeek(monday time.Time) model.WeekRecord {
	rec := model.WeekRecord{
		WeekOrder: []string{},
		Week:      make(map[string]model.DayRecord, 7),
	}
	for i := 0; i < 7; i++ {
		d := monday.AddDate(0, 0, i)
		name := WeekdayName(d)
		if _, ok := b.cfg.Rules.Days[name]; !ok {
			continue
		}
		rec.WeekOrder = append(rec.WeekOrder, name)
		rec.Week[name] = b.BuildDay(name, ISODate(d))
	}
	return rec
}
