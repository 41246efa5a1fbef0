package service

import "time"

// acceptedLayouts are tried in order against horario_escolhido. The booking
// widgets disagree on how they serialize the chosen slot, and strict
// single-format parsing broke real traffic, so the parser falls back across
// every format seen in production. First full match wins.
var acceptedLayouts = []string{
	"02/01/2006 15:04",
	"02/01/2006 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// TargetDateTime is the parsed chosen slot reduced to the two search keys
// used against the availability payload: calendar date and minute-precision
// time. Seconds are discarded.
type TargetDateTime struct {
	Date string // 2006-01-02
	Time string // 15:04
}

// ParseChosenDateTime parses the raw chosen date/time string. time.Parse
// rejects trailing garbage, so a layout only matches the whole string.
func ParseChosenDateTime(raw string) (TargetDateTime, error) {
	for _, layout := range acceptedLayouts {
		t, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		return TargetDateTime{
			Date: t.Format("2006-01-02"),
			Time: t.Format("15:04"),
		}, nil
	}
	return TargetDateTime{}, &DateFormatError{Raw: raw}
}
