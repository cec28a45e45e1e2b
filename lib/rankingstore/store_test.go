package rankingstore

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"hltv-crawler/lib/scrapers/hltv"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string {
	return &s
}

func intp(n int) *int {
	return &n
}

func mustWeek(t *testing.T, date string) hltv.RankingDate {
	week, err := hltv.ParseRankingDate(date)
	require.NoError(t, err)
	return week
}

func openMemory(t *testing.T) *Store {
	store, err := Open(context.Background(), Config{File: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() {
		store.Close()
	})
	store.now = func() time.Time {
		return time.Unix(1626652800, 0)
	}
	return store
}

var fixture = []hltv.RankingRecord{
	{
		Position: intp(1),
		Name:     strp("Natus Vincere"),
		Points:   intp(965),
		Players:  []*string{strp("s1mple"), strp("electroNic"), strp("Boombl4")},
	},
	{
		// blank fields survive a round trip as nil
		Position: intp(2),
		Players:  []*string{strp("Ax1Le"), nil, strp("sh1ro")},
	},
	{
		Position: intp(3),
		Name:     strp("Team Vitality"),
		Points:   intp(651),
		Players:  []*string{},
	},
}

func TestSaveAndGet(t *testing.T) {
	store := openMemory(t)
	ctx := context.Background()
	week := mustWeek(t, "2021-07-21")

	require.NoError(t, store.Save(ctx, week, fixture))

	snapshot, err := store.Get(ctx, week)
	require.NoError(t, err)
	require.Equal(t, "2021-07-19", snapshot.Week)
	require.Equal(t, int64(1626652800), snapshot.FetchedAt.Unix())

	diff := cmp.Diff(fixture, snapshot.Records)
	if diff != "" {
		t.Fatal(diff)
	}
}

func TestSaveReplacesWeek(t *testing.T) {
	store := openMemory(t)
	ctx := context.Background()
	week := mustWeek(t, "2021-07-19")

	require.NoError(t, store.Save(ctx, week, fixture))
	require.NoError(t, store.Save(ctx, week, fixture[:1]))

	snapshot, err := store.Get(ctx, week)
	require.NoError(t, err)
	require.Len(t, snapshot.Records, 1)
	require.Len(t, snapshot.Records[0].Players, 3)

	weeks, err := store.Weeks(ctx)
	require.NoError(t, err)
	require.Len(t, weeks, 1)
}

func TestSaveEmptyRanking(t *testing.T) {
	store := openMemory(t)
	ctx := context.Background()
	week := mustWeek(t, "2021-07-19")

	require.NoError(t, store.Save(ctx, week, nil))

	snapshot, err := store.Get(ctx, week)
	require.NoError(t, err)
	require.NotNil(t, snapshot.Records)
	require.Empty(t, snapshot.Records)
}

func TestGetMissingWeek(t *testing.T) {
	store := openMemory(t)

	_, err := store.Get(context.Background(), mustWeek(t, "2021-07-19"))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestWeeksNewestFirst(t *testing.T) {
	store := openMemory(t)
	ctx := context.Background()

	for _, date := range []string{"2021-07-19", "2022-01-03", "2020-12-28"} {
		require.NoError(t, store.Save(ctx, mustWeek(t, date), fixture))
	}

	weeks, err := store.Weeks(ctx)
	require.NoError(t, err)

	var keys []string
	for _, w := range weeks {
		keys = append(keys, w.Week)
	}
	require.Equal(t, []string{"2022-01-03", "2021-07-19", "2020-12-28"}, keys)
}

func TestPlayerHistory(t *testing.T) {
	store := openMemory(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, mustWeek(t, "2021-07-19"), fixture))
	require.NoError(t, store.Save(ctx, mustWeek(t, "2021-07-26"), []hltv.RankingRecord{
		{
			Position: intp(1),
			Name:     strp("Gambit"),
			Players:  []*string{strp("S1MPLE")},
		},
	}))

	history, err := store.PlayerHistory(ctx, "s1mple")
	require.NoError(t, err)
	require.Len(t, history, 2)
	require.Equal(t, "2021-07-26", history[0].Week)
	require.Equal(t, "Gambit", *history[0].Team)
	require.Equal(t, "2021-07-19", history[1].Week)
	require.Equal(t, "Natus Vincere", *history[1].Team)

	history, err = store.PlayerHistory(ctx, "device")
	require.NoError(t, err)
	require.Empty(t, history)
}

func TestOpenFile(t *testing.T) {
	ctx := context.Background()
	config := Config{File: filepath.Join(t.TempDir(), "nested", "rankings.db")}
	week := mustWeek(t, "2021-07-19")

	store, err := Open(ctx, config)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, week, fixture))
	require.NoError(t, store.Close())

	// the schema is created idempotently on reopen
	store, err = Open(ctx, config)
	require.NoError(t, err)
	defer store.Close()

	snapshot, err := store.Get(ctx, week)
	require.NoError(t, err)
	require.Len(t, snapshot.Records, len(fixture))
}

func TestOpenWithoutConfig(t *testing.T) {
	require.False(t, Config{}.Enabled())
	_, err := Open(context.Background(), Config{})
	require.Error(t, err)
}
