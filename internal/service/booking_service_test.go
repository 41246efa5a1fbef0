package service

import (
	"encoding/json"
	"testing"

	"agendamento/internal/entities"
	"agendamento/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBookingService(t *testing.T) *BookingService {
	t.Helper()
	lexicon, err := repository.NewLexiconRepository("")
	require.NoError(t, err)
	return NewBookingService(NewGenderService(lexicon))
}

func TestFormatBooking(t *testing.T) {
	svc := newBookingService(t)

	req := &entities.BookingRequest{
		CPF:              "123.456.789-00",
		Nome:             "Ana Paula",
		Horarios:         json.RawMessage(`[{"Date":"2025-12-13","AvaliableTimes":[{"from":"10:00:00","to":"11:00:00"}]}]`),
		HorarioEscolhido: "13/12/2025 10:00",
	}

	got, err := svc.FormatBooking(req)
	require.NoError(t, err)
	assert.Equal(t, &entities.BookingResponse{
		CPFFormatado: "12345678900",
		Sexo:         "F",
		From:         "10:00",
		To:           "11:00",
		Date:         "2025-12-13T03:00:00.000Z",
	}, got)
}

func TestFormatBookingCoercesLooseFields(t *testing.T) {
	svc := newBookingService(t)

	req := &entities.BookingRequest{
		CPF:              json.Number("12345678900"),
		Horarios:         json.RawMessage(`[{"Date":"2025-12-13","AvaliableTimes":[{"from":"10:00","to":"11:00"}]}]`),
		HorarioEscolhido: "  2025-12-13T10:00:00  ",
	}

	got, err := svc.FormatBooking(req)
	require.NoError(t, err)
	assert.Equal(t, "12345678900", got.CPFFormatado)
	// Absent name falls back to the default label.
	assert.Equal(t, "M", got.Sexo)
}

func TestFormatBookingPipelineErrors(t *testing.T) {
	svc := newBookingService(t)
	goodDays := json.RawMessage(`[{"Date":"2025-12-13","AvaliableTimes":[{"from":"10:00:00","to":"11:00:00"}]}]`)

	t.Run("unknown date format", func(t *testing.T) {
		_, err := svc.FormatBooking(&entities.BookingRequest{
			Horarios:         goodDays,
			HorarioEscolhido: "Dec 13 2025",
		})
		var dateErr *DateFormatError
		require.ErrorAs(t, err, &dateErr)
		assert.Equal(t, "Dec 13 2025", dateErr.Raw)
	})

	t.Run("bad availability payload", func(t *testing.T) {
		_, err := svc.FormatBooking(&entities.BookingRequest{
			Horarios:         json.RawMessage(`"{{nope"`),
			HorarioEscolhido: "13/12/2025 10:00",
		})
		var payloadErr *PayloadFormatError
		assert.ErrorAs(t, err, &payloadErr)
	})

	t.Run("slot not found carries the computed target", func(t *testing.T) {
		_, err := svc.FormatBooking(&entities.BookingRequest{
			Horarios:         goodDays,
			HorarioEscolhido: "13/12/2025 09:00",
		})
		var notFound *SlotNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "2025-12-13", notFound.Date)
		assert.Equal(t, "09:00", notFound.Time)
	})
}
