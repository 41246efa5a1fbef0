package service

import (
	"fmt"
	"log"

	"agendamento/internal/repository"
)

type JobService struct {
	Lexicon *repository.LexiconRepository
}

func NewJobService(lexicon *repository.LexiconRepository) *JobService {
	return &JobService{Lexicon: lexicon}
}

// ReloadGenderLexicon re-reads the lexicon overlay file so new names reach
// the estimator without a restart. Scheduled from main via cron.
func (s *JobService) ReloadGenderLexicon() error {
	log.Println("Cron Job: Reloading gender lexicon...")

	if err := s.Lexicon.Reload(); err != nil {
		return fmt.Errorf("cron job: failed to reload gender lexicon: %w", err)
	}

	masc, fem := s.Lexicon.Sizes()
	log.Printf("Cron Job: Gender lexicon reloaded (%d masculine, %d feminine entries).", masc, fem)
	return nil
}
