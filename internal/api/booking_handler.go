package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"agendamento/internal/entities"
	"agendamento/internal/metrics"
	"agendamento/internal/service"
)

type BookingHandler struct {
	Service *service.BookingService
	Metrics *metrics.BookingMetrics
}

func NewBookingHandler(svc *service.BookingService, m *metrics.BookingMetrics) *BookingHandler {
	return &BookingHandler{Service: svc, Metrics: m}
}

// FormatBooking handles POST /api/agendamentos/formatar.
func (h *BookingHandler) FormatBooking(w http.ResponseWriter, r *http.Request) {
	var req entities.BookingRequest
	dec := json.NewDecoder(r.Body)
	// Numeric CPFs must not go through float64, or long ones lose digits.
	dec.UseNumber()
	if err := dec.Decode(&req); err != nil {
		h.Metrics.ObserveFormat("bad_request")
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Corpo da requisição inválido."})
		return
	}

	resp, err := h.Service.FormatBooking(&req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.Metrics.ObserveFormat("success")
	writeJSON(w, http.StatusOK, resp)
}

// writeError maps the typed pipeline errors onto status codes and bodies.
// Anything unexpected becomes a generic 500; the detail is only logged,
// never echoed back to the caller.
func (h *BookingHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var dateErr *service.DateFormatError
	var payloadErr *service.PayloadFormatError
	var notFoundErr *service.SlotNotFoundError

	switch {
	case errors.As(err, &dateErr):
		h.Metrics.ObserveFormat("bad_date")
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:    "Formato de data desconhecido.",
			Recebido: dateErr.Raw,
			Esperado: "DD/MM/AAAA HH:MM",
		})
	case errors.As(err, &payloadErr):
		h.Metrics.ObserveFormat("bad_payload")
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: payloadErr.Reason})
	case errors.As(err, &notFoundErr):
		h.Metrics.ObserveFormat("not_found")
		writeJSON(w, http.StatusNotFound, ErrorResponse{
			Error:   "Horário não encontrado.",
			Data:    notFoundErr.Date,
			Horario: notFoundErr.Time,
		})
	default:
		h.Metrics.ObserveFormat("internal_error")
		log.Printf("Erro interno ao formatar agendamento (%s %s): %v", r.Method, r.URL.Path, err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Erro interno."})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Erro ao serializar resposta: %v", err)
	}
}
