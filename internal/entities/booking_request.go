package entities

import "encoding/json"

// BookingRequest mirrors the body sent by the scheduling bot. The upstream
// integrations are inconsistent: CPF may arrive as a string or a bare
// number, HorarioEscolhido in several textual formats, and Horarios as a
// list, an object wrapping the list under "schedules", or a JSON string
// containing either. The loose types here are deliberate; coercion happens
// in the service layer.
type BookingRequest struct {
	CPF              any             `json:"cpf"`
	Nome             any             `json:"nome"`
	Horarios         json.RawMessage `json:"horarios"`
	HorarioEscolhido any             `json:"horario_escolhido"`
}
