package entities

// BookingResponse is the flat payload returned to the caller on a match.
type BookingResponse struct {
	CPFFormatado string `json:"cpf_formatado"`
	Sexo         string `json:"sexo"`
	From         string `json:"from"`
	To           string `json:"to"`
	Date         string `json:"date"`
}
