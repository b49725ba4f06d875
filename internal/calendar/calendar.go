// Package calendar places tasks on calendar days and hourly buckets.
//
// Month placement compares calendar dates only. Day placement uses the
// exact instants of tasks that have both dates set. All calendar dates
// are taken in the location of the reference time passed in.
package calendar

import (
	"fmt"
	"time"

	"github.com/nhle/inspion/internal/model"
)

// Mode selects the calendar layout.
type Mode string

// Calendar modes.
const (
	ModeMonth Mode = "month"
	ModeDay   Mode = "day"
)

// Toggle switches between month and day.
func (m Mode) Toggle() Mode {
	if m == ModeDay {
		return ModeMonth
	}
	return ModeDay
}

// Navigate moves ref by step days in day mode and by step months otherwise.
// Month moves keep the day of month, clamped to the target month's length.
func Navigate(ref time.Time, mode Mode, step int) time.Time {
	if mode == ModeDay {
		return ref.AddDate(0, 0, step)
	}
	first := time.Date(ref.Year(), ref.Month(), 1, ref.Hour(), ref.Minute(), ref.Second(), ref.Nanosecond(), ref.Location())
	target := first.AddDate(0, step, 0)
	day := min(ref.Day(), daysIn(target))
	return target.AddDate(0, 0, day-1)
}

// StartOfDay returns midnight of t's calendar date in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar date in loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

func daysIn(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

// ParseWeekStart maps "sunday" to time.Sunday and anything else to Monday.
func ParseWeekStart(s string) time.Weekday {
	if s == "sunday" {
		return time.Sunday
	}
	return time.Monday
}

var weekdayShort = map[model.Locale][7]string{
	model.LocaleEN: {"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	model.LocaleRU: {"Вс", "Пн", "Вт", "Ср", "Чт", "Пт", "Сб"},
}

var weekdayLong = map[model.Locale][7]string{
	model.LocaleEN: {"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	model.LocaleRU: {"воскресенье", "понедельник", "вторник", "среда", "четверг", "пятница", "суббота"},
}

var monthNames = map[model.Locale][12]string{
	model.LocaleEN: {
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
	model.LocaleRU: {
		"январь", "февраль", "март", "апрель", "май", "июнь",
		"июль", "август", "сентябрь", "октябрь", "ноябрь", "декабрь",
	},
}

// genitive month names used in full Russian dates ("5 марта").
var monthGenitiveRU = [12]string{
	"января", "февраля", "марта", "апреля", "мая", "июня",
	"июля", "августа", "сентября", "октября", "ноября", "декабря",
}

// WeekdayHeaders returns the seven column titles starting at weekStart.
func WeekdayHeaders(weekStart time.Weekday, locale model.Locale) []string {
	names, ok := weekdayShort[locale]
	if !ok {
		names = weekdayShort[model.LocaleEN]
	}
	out := make([]string, 7)
	for i := range out {
		out[i] = names[(int(weekStart)+i)%7]
	}
	return out
}

// MonthTitle renders "March 2024" / "март 2024".
func MonthTitle(t time.Time, locale model.Locale) string {
	names, ok := monthNames[locale]
	if !ok {
		names = monthNames[model.LocaleEN]
	}
	return fmt.Sprintf("%s %d", names[t.Month()-1], t.Year())
}

// DayTitle renders a full date with weekday.
func DayTitle(t time.Time, locale model.Locale) string {
	if locale == model.LocaleRU {
		return fmt.Sprintf("%s, %d %s %d г.", weekdayLong[model.LocaleRU][t.Weekday()], t.Day(), monthGenitiveRU[t.Month()-1], t.Year())
	}
	return fmt.Sprintf("%s, %s %d, %d", weekdayLong[model.LocaleEN][t.Weekday()], monthNames[model.LocaleEN][t.Month()-1], t.Day(), t.Year())
}
