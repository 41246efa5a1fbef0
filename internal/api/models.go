package api

// ErrorResponse is the body of every non-200 answer. Recebido/Esperado are
// filled for date-format errors, Data/Horario for slot-not-found, so the
// caller can see what was searched for and self-correct.
type ErrorResponse struct {
	Error    string `json:"error"`
	Recebido string `json:"recebido,omitempty"`
	Esperado string `json:"esperado,omitempty"`
	Data     string `json:"data,omitempty"`
	Horario  string `json:"horario,omitempty"`
}

// Admin lexicon
type LexiconResponse struct {
	Masculine []string `json:"masculine"`
	Feminine  []string `json:"feminine"`
}
type LexiconReloadResponse struct {
	Message   string `json:"message"`
	Masculine int    `json:"masculine_entries"`
	Feminine  int    `json:"feminine_entries"`
}
