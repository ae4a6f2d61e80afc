// Package characterstore persists the extracted character dataset as a
// json array on disk. Records are keyed case-insensitively by name so
// incremental scrape runs replace known characters instead of duplicating
// them.
package characterstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"nikkedle-backend/lib/nikke"
	"nikkedle-backend/lib/textutil"

	"github.com/antzucaro/matchr"
)

type Store struct {
	path string
	mu   sync.Mutex
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load returns every stored record. A store that was never written is
// empty, not an error.
func (s *Store) Load() ([]nikke.Character, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) load() ([]nikke.Character, error) {
	contents, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var records []nikke.Character
	err = json.Unmarshal(contents, &records)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}
	return records, nil
}

func (s *Store) flush(records []nikke.Character) error {
	contents, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}

	// write-then-rename so a crash mid-write cannot truncate the dataset
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".characters-*")
	if err != nil {
		return err
	}
	_, err = tmp.Write(contents)
	if err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	err = tmp.Close()
	if err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

// Upsert merges records into the stored dataset. Existing records with a
// matching normalized name are replaced in place, new ones are appended.
// Returns how many records were added and how many replaced.
func (s *Store) Upsert(records []nikke.Character) (added, replaced int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.load()
	if err != nil {
		return 0, 0, err
	}

	index := make(map[string]int, len(existing))
	for i, record := range existing {
		index[textutil.NormalizeName(record.Name)] = i
	}

	for _, record := range records {
		key := textutil.NormalizeName(record.Name)
		at, known := index[key]
		if known {
			existing[at] = record
			replaced++
			continue
		}
		index[key] = len(existing)
		existing = append(existing, record)
		added++
	}

	err = s.flush(existing)
	if err != nil {
		return 0, 0, err
	}
	return added, replaced, nil
}

// FindClosest returns the stored record whose name is the smallest edit
// distance away from name, for resolving free-form guesses. Returns false
// for an empty store.
func (s *Store) FindClosest(name string) (nikke.Character, bool, error) {
	records, err := s.Load()
	if err != nil {
		return nikke.Character{}, false, err
	}
	if len(records) == 0 {
		return nikke.Character{}, false, nil
	}

	target := textutil.NormalizeName(name)
	best := 0
	bestDistance := matchr.DamerauLevenshtein(target, textutil.NormalizeName(records[0].Name))
	for i := 1; i < len(records); i++ {
		distance := matchr.DamerauLevenshtein(target, textutil.NormalizeName(records[i].Name))
		if distance < bestDistance {
			best = i
			bestDistance = distance
		}
	}
	return records[best], true, nil
}
