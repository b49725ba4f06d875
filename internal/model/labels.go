package model

import (
	"fmt"
	"time"
)

// Locale selects a label table.
type Locale string

// Supported locales.
const (
	LocaleEN Locale = "en"
	LocaleRU Locale = "ru"
)

// ParseLocale returns the locale for s, defaulting to English.
func ParseLocale(s string) Locale {
	if Locale(s) == LocaleRU {
		return LocaleRU
	}
	return LocaleEN
}

var statusLabels = map[Locale]map[Status]string{
	LocaleEN: {
		StatusProject:    "Planned",
		StatusInProgress: "In progress",
		StatusPostponed:  "Postponed",
		StatusCompleted:  "Completed",
		StatusCancelled:  "Cancelled",
		StatusUnknown:    "Unknown",
	},
	LocaleRU: {
		StatusProject:    "В планах",
		StatusInProgress: "В работе",
		StatusPostponed:  "Отложено",
		StatusCompleted:  "Выполнено",
		StatusCancelled:  "Отменено",
		StatusUnknown:    "Неизвестно",
	},
}

var priorityLabels = map[Locale]map[PriorityLevel]string{
	LocaleEN: {
		PriorityVeryHigh: "Very high",
		PriorityHigh:     "High",
		PriorityMedium:   "Medium",
		PriorityLow:      "Low",
		PriorityVeryLow:  "Very low",
		PriorityUnknown:  "Unknown",
	},
	LocaleRU: {
		PriorityVeryHigh: "Очень высокий",
		PriorityHigh:     "Высокий",
		PriorityMedium:   "Средний",
		PriorityLow:      "Низкий",
		PriorityVeryLow:  "Очень низкий",
		PriorityUnknown:  "Неизвестно",
	},
}

var levelLabels = map[Locale]map[Level]string{
	LocaleEN: {
		LevelHigh:   "High",
		LevelMedium: "Medium",
		LevelLow:    "Low",
	},
	LocaleRU: {
		LevelHigh:   "Высокая",
		LevelMedium: "Средняя",
		LevelLow:    "Низкая",
	},
}

var frequencyLabels = map[Locale]map[Frequency]string{
	LocaleEN: {
		FrequencyOneTime:  "One-time",
		FrequencyPeriodic: "Periodic",
	},
	LocaleRU: {
		FrequencyOneTime:  "Разовая",
		FrequencyPeriodic: "Периодическая",
	},
}

// lookup resolves key in the locale table, falling back to English and
// then to a marked raw value so unmapped values stay visible.
func lookup[K comparable](tables map[Locale]map[K]string, locale Locale, key K) string {
	if l, ok := tables[locale][key]; ok {
		return l
	}
	if l, ok := tables[LocaleEN][key]; ok {
		return l
	}
	return fmt.Sprintf("?%v", key)
}

// StatusLabel returns the display name of s.
func StatusLabel(s Status, locale Locale) string {
	return lookup(statusLabels, locale, s)
}

// PriorityLabel returns the display name of p.
func PriorityLabel(p PriorityLevel, locale Locale) string {
	return lookup(priorityLabels, locale, p)
}

// LevelLabel returns the display name of an importance or urgency level.
func LevelLabel(l Level, locale Locale) string {
	return lookup(levelLabels, locale, l)
}

// FrequencyLabel returns the display name of f.
func FrequencyLabel(f Frequency, locale Locale) string {
	return lookup(frequencyLabels, locale, f)
}

// FormatDuration renders d as hours and minutes, e.g. "2h 30m".
// Non-positive durations render as zero.
func FormatDuration(d time.Duration, locale Locale) string {
	if d < 0 {
		d = 0
	}
	hours := int(d / time.Hour)
	minutes := int((d % time.Hour) / time.Minute)
	if locale == LocaleRU {
		return fmt.Sprintf("%dч %dм", hours, minutes)
	}
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

// DateTimeLayout is the display and input layout for task dates.
const DateTimeLayout = "2006-01-02 15:04"

// FormatDate renders an optional instant in local time, or "-" when unset.
func FormatDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Local().Format(DateTimeLayout)
}
