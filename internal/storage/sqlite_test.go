package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/maze/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	id, err := store.SaveRun(core.RunStats{GameID: "maze", Outcome: "won", Score: 1100})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	store.Close()

	// Migrations must be idempotent and data must survive
	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	run, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if run.Score != 1100 || run.Outcome != "won" {
		t.Errorf("run = %+v", run)
	}
}

func TestSaveRun(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(core.RunStats{
		GameID:   "maze",
		Outcome:  "lost",
		Score:    200,
		Kills:    2,
		Shots:    7,
		Ticks:    900,
		Duration: 15 * time.Second,
	})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("id %q is not a uuid: %v", id, err)
	}

	run, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if run.GameID != "maze" || run.Outcome != "lost" || run.Score != 200 ||
		run.Kills != 2 || run.Shots != 7 || run.Ticks != 900 || run.Duration != 15*time.Second {
		t.Errorf("run = %+v", run)
	}
	if run.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestRunByIDNotFound(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.RunByID("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, expected ErrNotFound", err)
	}
}

func TestTopAndRecentRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []core.RunStats{
		{GameID: "maze", Outcome: "lost", Score: 100, Duration: 10 * time.Second},
		{GameID: "maze", Outcome: "won", Score: 1200, Duration: 40 * time.Second},
		{GameID: "maze", Outcome: "quit", Score: 0},
		{GameID: "maze", Outcome: "won", Score: 1200, Duration: 30 * time.Second},
		{GameID: "other", Outcome: "won", Score: 5000},
	}
	var ids []string
	for _, r := range runs {
		id, err := store.SaveRun(r)
		if err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
		ids = append(ids, id)
	}

	top, err := store.TopRuns("maze", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 4 {
		t.Fatalf("TopRuns() = %d runs, expected 4", len(top))
	}
	if top[0].ID != ids[3] || top[1].ID != ids[1] {
		t.Errorf("ties should favour the faster run: %s, %s", top[0].ID, top[1].ID)
	}
	if top[3].Score != 0 {
		t.Errorf("lowest score = %d, expected 0", top[3].Score)
	}

	recent, err := store.RecentRuns("maze", 2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].ID != ids[3] || recent[1].ID != ids[2] {
		t.Errorf("RecentRuns() order wrong: %+v", recent)
	}
}

func TestGetGameStats(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []core.RunStats{
		{GameID: "maze", Outcome: "won", Score: 1100, Kills: 1, Duration: 50 * time.Second},
		{GameID: "maze", Outcome: "won", Score: 1300, Kills: 3, Duration: 45 * time.Second},
		{GameID: "maze", Outcome: "lost", Score: 0, Duration: 5 * time.Second},
		{GameID: "maze", Outcome: "quit", Score: 200, Kills: 2},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	stats, err := store.GetGameStats("maze")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.Runs != 4 || stats.Wins != 2 || stats.Losses != 1 || stats.Quits != 1 {
		t.Errorf("counts = %+v", stats)
	}
	if stats.HighScore != 1300 || stats.AvgScore != 650 || stats.TotalKills != 6 {
		t.Errorf("scores = %+v", stats)
	}
	if stats.BestWin != 45*time.Second {
		t.Errorf("BestWin = %v, expected 45s", stats.BestWin)
	}

	empty, err := store.GetGameStats("nothing")
	if err != nil {
		t.Fatalf("GetGameStats() on empty failed: %v", err)
	}
	if empty.Runs != 0 || empty.BestWin != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}
}

func TestClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(core.RunStats{GameID: "maze", Outcome: "lost"})
	store.SaveRun(core.RunStats{GameID: "other", Outcome: "lost"})

	if err := store.ClearRuns("maze"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	if runs, _ := store.RecentRuns("maze", 10); len(runs) != 0 {
		t.Errorf("maze runs = %d after clear", len(runs))
	}
	if runs, _ := store.RecentRuns("other", 10); len(runs) != 1 {
		t.Errorf("other runs = %d, should be untouched", len(runs))
	}
}
