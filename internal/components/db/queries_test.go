package db

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *Queries {
	sqlite, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		sqlite.Close()
	})
	_, err = sqlite.Exec(Schema)
	if err != nil {
		t.Fatal(err)
	}
	return New(sqlite)
}

func TestPageCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	qry := setupDB(t)

	_, err := qry.GetCachedPage(ctx, "https://wiki.example.com/wiki/Rapi")
	require.ErrorIs(t, err, sql.ErrNoRows)

	err = qry.UpsertCachedPage(ctx, UpsertCachedPageParams{
		Url:       "https://wiki.example.com/wiki/Rapi",
		Body:      "<html>v1</html>",
		FetchedAt: 100,
	})
	require.NoError(t, err)

	page, err := qry.GetCachedPage(ctx, "https://wiki.example.com/wiki/Rapi")
	require.NoError(t, err)
	require.Equal(t, "<html>v1</html>", page.Body)
	require.EqualValues(t, 100, page.FetchedAt)

	// second upsert replaces, never duplicates
	err = qry.UpsertCachedPage(ctx, UpsertCachedPageParams{
		Url:       "https://wiki.example.com/wiki/Rapi",
		Body:      "<html>v2</html>",
		FetchedAt: 200,
	})
	require.NoError(t, err)

	page, err = qry.GetCachedPage(ctx, "https://wiki.example.com/wiki/Rapi")
	require.NoError(t, err)
	require.Equal(t, "<html>v2</html>", page.Body)

	count, err := qry.CountCachedPages(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)
}

func TestDeletePagesFetchedBefore(t *testing.T) {
	ctx := context.Background()
	qry := setupDB(t)

	pages := []UpsertCachedPageParams{
		{Url: "https://wiki.example.com/wiki/Rapi", Body: "a", FetchedAt: 50},
		{Url: "https://wiki.example.com/wiki/Anis", Body: "b", FetchedAt: 150},
	}
	for _, p := range pages {
		require.NoError(t, qry.UpsertCachedPage(ctx, p))
	}

	require.NoError(t, qry.DeletePagesFetchedBefore(ctx, 100))

	_, err := qry.GetCachedPage(ctx, "https://wiki.example.com/wiki/Rapi")
	require.ErrorIs(t, err, sql.ErrNoRows)
	_, err = qry.GetCachedPage(ctx, "https://wiki.example.com/wiki/Anis")
	require.NoError(t, err)
}
