package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
)

// GenderLexicon is the serializable form of the exception tables, used by
// the overlay file and the admin API. Names are first names, lower-case.
type GenderLexicon struct {
	Masculine []string `json:"masculine"`
	Feminine  []string `json:"feminine"`
}

// LexiconRepository holds the gender exception tables: names whose gender
// breaks the a/o suffix rule. The built-in tables cover common Brazilian
// names; an optional JSON overlay file extends them per deployment and can
// be reloaded at runtime without a restart.
type LexiconRepository struct {
	mu   sync.RWMutex
	path string
	masc map[string]struct{}
	fem  map[string]struct{}
}

// Masculine names that end in 'a', 'e', 'i'/'y' or "feminine" consonants.
var defaultMasculine = []string{
	"luca", "gianluca", "juca", "sasha", "mika", "akira", "mustafa", "ubirajara", "seneca",
	"felipe", "jorge", "andre", "andré", "josé", "jose", "henrique", "dante", "vicente", "etore",
	"alexandre", "guilherme", "wallace", "bruce", "mike", "george", "roque", "ataide", "mamede",
	"davi", "david", "levi", "henri", "giovanni", "luigi", "rudnei", "jurandir", "valdir", "moacir",
	"yuri", "freddy", "harry",
	"abel", "gabriel", "rafael", "daniel", "miguel", "samuel", "manuel", "manoel", "maxwell", "natanael",
	"maxuel", "ezequiel", "abriel", "adriel", "oziel", "toniel", "maciel", "joel", "noel",
	"william", "renan", "juan", "ryan", "natan", "alan", "allan", "ivan", "luan", "brian", "kevin",
	"robson", "edson", "washington", "nilton", "milton", "airton", "jailson", "jackson", "jason",
	"lucas", "marcos", "matheus", "jonas", "elias", "thomas", "nicolas", "douglas",
}

// Feminine names that do not end in 'a'.
var defaultFeminine = []string{
	"alice", "janice", "clarice", "berenice", "denise", "joyce", "gleice", "nice", "dulce",
	"maite", "maitê", "monique", "solange", "ivone", "simone", "leone", "ariane", "eliane", "viviane",
	"cibele", "michele", "michelle", "gisele", "rosane", "rose", "daiane", "liz", "thais", "thaís",
	"beatriz", "laiz", "lais", "ingrid", "astrid", "sigrid", "judite",
	"raquel", "mabel", "isabel", "isabelle", "annabel", "maribel", "cristal",
	"ester", "esther", "guiomar",
	"ines", "inês", "luz", "doris", "iris", "íris", "gladis",
	"kellen", "ellen", "karen", "yasmin", "carmem", "carmen", "miriam", "ketlin", "evelin",
}

// NewLexiconRepository builds the repository from the built-in tables and,
// when path is non-empty, merges the overlay file on top of them.
func NewLexiconRepository(path string) (*LexiconRepository, error) {
	r := &LexiconRepository{path: path}
	if err := r.Reload(); err != nil {
		return nil, err
	}
	return r, nil
}

// Reload rebuilds the tables from the defaults plus the overlay file, if
// one is configured. On error the previous tables stay in place.
func (r *LexiconRepository) Reload() error {
	masc := make(map[string]struct{}, len(defaultMasculine))
	fem := make(map[string]struct{}, len(defaultFeminine))
	for _, name := range defaultMasculine {
		masc[name] = struct{}{}
	}
	for _, name := range defaultFeminine {
		fem[name] = struct{}{}
	}

	if r.path != "" {
		data, err := os.ReadFile(r.path)
		if err != nil {
			return fmt.Errorf("could not read lexicon file %s: %w", r.path, err)
		}
		var overlay GenderLexicon
		if err := json.Unmarshal(data, &overlay); err != nil {
			return fmt.Errorf("could not parse lexicon file %s: %w", r.path, err)
		}
		for _, name := range overlay.Masculine {
			masc[strings.ToLower(strings.TrimSpace(name))] = struct{}{}
		}
		for _, name := range overlay.Feminine {
			fem[strings.ToLower(strings.TrimSpace(name))] = struct{}{}
		}
	}

	r.mu.Lock()
	r.masc = masc
	r.fem = fem
	r.mu.Unlock()
	return nil
}

// Lookup returns "M" or "F" when the lower-cased first name is in one of
// the exception tables, and "" when it carries no override. The masculine
// table wins on a (misconfigured) conflict, mirroring the check order of
// the heuristic.
func (r *LexiconRepository) Lookup(firstName string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if _, ok := r.masc[firstName]; ok {
		return "M"
	}
	if _, ok := r.fem[firstName]; ok {
		return "F"
	}
	return ""
}

// Entries returns a sorted snapshot of both tables for the admin API.
func (r *LexiconRepository) Entries() GenderLexicon {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := GenderLexicon{
		Masculine: make([]string, 0, len(r.masc)),
		Feminine:  make([]string, 0, len(r.fem)),
	}
	for name := range r.masc {
		out.Masculine = append(out.Masculine, name)
	}
	for name := range r.fem {
		out.Feminine = append(out.Feminine, name)
	}
	sort.Strings(out.Masculine)
	sort.Strings(out.Feminine)
	return out
}

// Sizes returns the entry counts of the masculine and feminine tables.
func (r *LexiconRepository) Sizes() (int, int) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.masc), len(r.fem)
}
