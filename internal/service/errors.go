package service

import "fmt"

// DateFormatError means horario_escolhido matched none of the accepted
// layouts. Raw keeps the original string so the caller can see what was
// actually received.
type DateFormatError struct {
	Raw string
}

func (e *DateFormatError) Error() string {
	return fmt.Sprintf("formato de data desconhecido: %q", e.Raw)
}

// PayloadFormatError means the horarios field is neither a day-entry list,
// an object with a "schedules" key, nor a JSON string containing either.
type PayloadFormatError struct {
	Reason string
}

func (e *PayloadFormatError) Error() string {
	return e.Reason
}

// SlotNotFoundError means the inputs were well formed but no day/slot pair
// matched the chosen date and time.
type SlotNotFoundError struct {
	Date string
	Time string
}

func (e *SlotNotFoundError) Error() string {
	return fmt.Sprintf("horário não encontrado para %s %s", e.Date, e.Time)
}
