package nikkepedia

import (
	"path/filepath"
	"testing"
	"time"

	"nikkedle-backend/internal/components/chrono"
	"nikkedle-backend/lib/characterstore"
	"nikkedle-backend/lib/dailypick"
	"nikkedle-backend/lib/nikke"

	"github.com/stretchr/testify/require"
)

func storeWithCharacters(t *testing.T, names ...string) *characterstore.Store {
	store := characterstore.NewStore(filepath.Join(t.TempDir(), "characters.json"))
	var records []nikke.Character
	for _, name := range names {
		records = append(records, nikke.Character{Name: name})
	}
	_, _, err := store.Upsert(records)
	require.NoError(t, err)
	return store
}

func TestDailyPickIsStableWithinADay(t *testing.T) {
	store := storeWithCharacters(t, "Rapi", "Anis", "Neon", "Marciana", "Poli")
	clock := chrono.Fixed{Time: time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)}
	s := Scraper{store: store, time: clock}

	first, err := s.DailyPick()
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := s.DailyPick()
		require.NoError(t, err)
		require.Equal(t, first.Name, again.Name)
	}

	// matches the shared seed derivation exactly
	records, err := store.Load()
	require.NoError(t, err)
	expected := records[dailypick.Pick(dailypick.DateSeed(clock.Now()), len(records))]
	require.Equal(t, expected.Name, first.Name)
}

func TestDailyPickEmptyStore(t *testing.T) {
	store := characterstore.NewStore(filepath.Join(t.TempDir(), "characters.json"))
	s := Scraper{
		store: store,
		time:  chrono.Fixed{Time: time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)},
	}

	_, err := s.DailyPick()
	require.Error(t, err)
}
