package scheduling

import (
	"strings"
	"time"

	"github.com/shifacare/medcenter-booking/internal/domain/entity"
)

// Interval is a clinic's working window for one calendar date,
// both bounds in zero-padded "HH:MM".
type Interval struct {
	Start string
	End   string
}

// canonicalDayKeys indexes lowercase English day names by time.Weekday
// (0=Sunday..6=Saturday).
var canonicalDayKeys = [7]string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

// dayKeyAliases normalizes stored working-hours keys back to canonical day
// keys. Legacy rows were written by a UI that formatted weekday names
// locale-dependently, so Arabic names and common abbreviations show up in
// production data.
var dayKeyAliases = map[string]string{
	"sun": "sunday", "mon": "monday", "tue": "tuesday", "tues": "tuesday",
	"wed": "wednesday", "thu": "thursday", "thur": "thursday", "thurs": "thursday",
	"fri": "friday", "sat": "saturday",

	"الأحد": "sunday", "الاحد": "sunday",
	"الاثنين": "monday", "الإثنين": "monday",
	"الثلاثاء": "tuesday",
	"الأربعاء": "wednesday", "الاربعاء": "wednesday",
	"الخميس": "thursday",
	"الجمعة": "friday",
	"السبت":  "saturday",
}

// DayKeyForDate returns the canonical working-hours key for a date's weekday.
func DayKeyForDate(date time.Time) string {
	return canonicalDayKeys[int(date.Weekday())]
}

// NormalizeDayKey maps a stored working-hours key (English, abbreviated or
// Arabic, any case) to its canonical form. Unrecognized keys are returned
// lowercased unchanged.
func NormalizeDayKey(key string) string {
	k := strings.ToLower(strings.TrimSpace(key))
	for _, canonical := range canonicalDayKeys {
		if k == canonical {
			return canonical
		}
	}
	if canonical, ok := dayKeyAliases[k]; ok {
		return canonical
	}
	return k
}

// ResolveWorkingInterval produces the canonical working window for a clinic
// on a specific date, or nil when the clinic is closed that day. A missing
// working-hours map, a day marked closed, a missing boundary, or an
// unparsable boundary all resolve to closed.
func ResolveWorkingInterval(wh entity.WorkingHours, date time.Time) *Interval {
	if len(wh) == 0 {
		return nil
	}

	dayKey := DayKeyForDate(date)

	day, ok := wh[dayKey]
	if !ok {
		for storedKey, stored := range wh {
			if NormalizeDayKey(storedKey) == dayKey {
				day, ok = stored, true
				break
			}
		}
	}
	if !ok {
		return nil
	}

	start, end, open := day.Bounds()
	if !open {
		return nil
	}

	startH, startM, err := ParseClock(start)
	if err != nil {
		return nil
	}
	endH, endM, err := ParseClock(end)
	if err != nil {
		return nil
	}
	if endH*60+endM <= startH*60+startM {
		return nil
	}

	return &Interval{Start: FormatClock(startH, startM), End: FormatClock(endH, endM)}
}
