package service

import (
	"strings"

	"agendamento/internal/repository"
)

// GenderService guesses a binary gender label from a full name. It is a
// best-effort heuristic tuned for common Brazilian first names: exception
// tables first, then the a/o suffix rule, then "M", which statistically
// misses least for unknown names without a vowel signal.
type GenderService struct {
	lexicon *repository.LexiconRepository
}

func NewGenderService(lexicon *repository.LexiconRepository) *GenderService {
	return &GenderService{lexicon: lexicon}
}

// Estimate returns "M" or "F" for the given full name. Empty or absent
// names default to "M".
func (s *GenderService) Estimate(nomeCompleto string) string {
	fields := strings.Fields(nomeCompleto)
	if len(fields) == 0 {
		return "M"
	}
	firstName := strings.ToLower(fields[0])

	if label := s.lexicon.Lookup(firstName); label != "" {
		return label
	}

	if strings.HasSuffix(firstName, "a") {
		return "F"
	}
	if strings.HasSuffix(firstName, "o") {
		return "M"
	}
	return "M"
}
