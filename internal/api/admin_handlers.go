package api

import (
	"log"
	"net/http"

	"agendamento/internal/repository"
)

type AdminHandler struct {
	Lexicon *repository.LexiconRepository
}

func NewAdminHandler(lexicon *repository.LexiconRepository) *AdminHandler {
	return &AdminHandler{Lexicon: lexicon}
}

// GetLexicon returns the gender exception tables currently in memory.
func (h *AdminHandler) GetLexicon(w http.ResponseWriter, r *http.Request) {
	entries := h.Lexicon.Entries()
	writeJSON(w, http.StatusOK, LexiconResponse{
		Masculine: entries.Masculine,
		Feminine:  entries.Feminine,
	})
}

// ReloadLexicon re-reads the overlay file on demand, without waiting for
// the scheduled reload.
func (h *AdminHandler) ReloadLexicon(w http.ResponseWriter, r *http.Request) {
	if err := h.Lexicon.Reload(); err != nil {
		log.Printf("Erro ao recarregar léxico de gênero: %v", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Não foi possível recarregar o léxico."})
		return
	}

	masc, fem := h.Lexicon.Sizes()
	writeJSON(w, http.StatusOK, LexiconReloadResponse{
		Message:   "Léxico recarregado.",
		Masculine: masc,
		Feminine:  fem,
	})
}
