package common

import (
	"fmt"
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// NowLabel is shown for anything younger than a minute.
const NowLabel = "Ahora"

// FormatRelative renders how long ago t was, as seen at now: "Ahora" under a
// minute, "<n>m" under an hour, "<n>h" under a day, then a calendar date in
// the conventions of tag. Future times render as "Ahora".
func FormatRelative(t, now time.Time, tag language.Tag) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return NowLabel
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d/time.Minute))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d/time.Hour))
	}
	return FormatDate(t, tag)
}

var dateLayouts = map[string]string{
	"es": "2/1/2006",
	"pt": "2/1/2006",
	"fr": "02/01/2006",
	"it": "2/1/2006",
	"de": "2.1.2006",
	"ja": "2006/1/2",
	"zh": "2006/1/2",
	"ko": "2006. 1. 2.",
}

// FormatDate renders the calendar date of t (no time of day) for tag.
func FormatDate(t time.Time, tag language.Tag) string {
	base, _ := tag.Base()
	if base.String() == "en" {
		if region, _ := tag.Region(); region.String() == "US" {
			return t.Format("1/2/2006")
		}
		return t.Format("02/01/2006")
	}
	if layout, ok := dateLayouts[base.String()]; ok {
		return t.Format(layout)
	}
	return t.Format("2006-01-02")
}

// FormatCount abbreviates large counters: 1234 -> "1.2k" ("1,2k" in locales
// with a decimal comma).
func FormatCount(n int, tag language.Tag) string {
	if n < 1000 {
		return strconv.Itoa(n)
	}
	return message.NewPrinter(tag).Sprintf("%.1fk", float64(n)/1000)
}
