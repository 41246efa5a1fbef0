package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"agendamento/internal/entities"
	"agendamento/internal/utils"
)

// BookingService runs the formatting pipeline: clean the CPF, parse the
// chosen date/time, normalize the availability payload, resolve the slot
// and assemble the response. It keeps no state between requests.
type BookingService struct {
	gender *GenderService
}

func NewBookingService(gender *GenderService) *BookingService {
	return &BookingService{gender: gender}
}

// FormatBooking transforms a raw booking request into the canonical
// response, or returns one of the typed pipeline errors.
func (s *BookingService) FormatBooking(req *entities.BookingRequest) (*entities.BookingResponse, error) {
	cpfLimpo := utils.OnlyDigits(coerceString(req.CPF))

	target, err := ParseChosenDateTime(strings.TrimSpace(coerceString(req.HorarioEscolhido)))
	if err != nil {
		return nil, err
	}

	days, err := NormalizeSchedules(req.Horarios)
	if err != nil {
		return nil, err
	}

	slot, err := ResolveSlot(target, days)
	if err != nil {
		return nil, err
	}

	return &entities.BookingResponse{
		CPFFormatado: cpfLimpo,
		Sexo:         s.gender.Estimate(coerceString(req.Nome)),
		From:         slot.From,
		To:           slot.To,
		Date:         slot.Date,
	}, nil
}

// coerceString turns loosely-typed request fields into text. Handlers
// decode with UseNumber, so numeric CPFs arrive as json.Number and keep
// all their digits.
func coerceString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}
