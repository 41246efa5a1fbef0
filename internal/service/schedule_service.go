package service

import (
	"encoding/json"

	"agendamento/internal/entities"
)

type scheduleWrapper struct {
	Schedules []entities.DayEntry `json:"schedules"`
}

// NormalizeSchedules reduces the horarios field to a flat day-entry list.
// Three shapes are accepted: the list itself, an object wrapping the list
// under "schedules", and a JSON string containing either (some integrations
// double-encode the payload). Order and contents are preserved as sent.
func NormalizeSchedules(raw json.RawMessage) ([]entities.DayEntry, error) {
	if len(raw) == 0 {
		return nil, &PayloadFormatError{Reason: "Estrutura de horários inválida."}
	}

	var encoded string
	if err := json.Unmarshal(raw, &encoded); err == nil {
		inner := json.RawMessage(encoded)
		if !json.Valid(inner) {
			return nil, &PayloadFormatError{Reason: "JSON inválido em 'horarios'"}
		}
		raw = inner
	}

	var days []entities.DayEntry
	if err := json.Unmarshal(raw, &days); err == nil {
		return days, nil
	}

	var wrapped scheduleWrapper
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Schedules != nil {
		return wrapped.Schedules, nil
	}

	return nil, &PayloadFormatError{Reason: "Estrutura de horários inválida."}
}

// ResolveSlot walks the day entries in caller order and returns the first
// slot whose start matches the target. Dates compare by exact string
// equality; times by HH:MM prefix, so a slot that carries seconds still
// matches and a slot with a malformed "from" simply never matches.
func ResolveSlot(target TargetDateTime, days []entities.DayEntry) (*entities.ResolvedSlot, error) {
	for _, day := range days {
		if day.Date != target.Date {
			continue
		}
		for _, slot := range day.AvailableTimes {
			if truncateHHMM(slot.From) != target.Time {
				continue
			}
			return &entities.ResolvedSlot{
				From: truncateHHMM(slot.From),
				To:   truncateHHMM(slot.To),
				Date: day.Date + "T03:00:00.000Z",
			}, nil
		}
	}
	return nil, &SlotNotFoundError{Date: target.Date, Time: target.Time}
}

func truncateHHMM(s string) string {
	if len(s) > 5 {
		return s[:5]
	}
	return s
}
