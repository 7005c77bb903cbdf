package storage

import (
	"testing"

	"github.com/google/uuid"
)

func TestSaveResultAssignsMatchID(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveResult(Result{GameID: "tictactoe", Outcome: OutcomeWin, Winner: "X", Moves: 5}); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}

	results, err := store.RecentResults("tictactoe", 0)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	r := results[0]
	if _, err := uuid.Parse(r.MatchID); err != nil {
		t.Errorf("MatchID %q is not a UUID: %v", r.MatchID, err)
	}
	if r.Outcome != OutcomeWin || r.Winner != "X" || r.Moves != 5 {
		t.Errorf("unexpected result: %+v", r)
	}
}

func TestSaveResultRejectsUnknownOutcome(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveResult(Result{GameID: "tictactoe", Outcome: "forfeit"}); err == nil {
		t.Error("SaveResult() should reject unknown outcomes")
	}
}

func TestSaveResultDuplicateMatchID(t *testing.T) {
	store := openTestStore(t)
	r := Result{MatchID: uuid.NewString(), GameID: "tictactoe", Outcome: OutcomeDraw, Moves: 9}

	if _, err := store.SaveResult(r); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	if _, err := store.SaveResult(r); err == nil {
		t.Error("second save with the same match ID should fail")
	}
}

func TestDrawHasNoWinner(t *testing.T) {
	store := openTestStore(t)
	store.SaveResult(Result{GameID: "tictactoe", Outcome: OutcomeDraw, Winner: "X", Moves: 9})

	results, _ := store.RecentResults("tictactoe", 10)
	if len(results) != 1 || results[0].Winner != "" {
		t.Errorf("draw stored with winner: %+v", results)
	}
}

func TestRecentResultsNewestFirst(t *testing.T) {
	store := openTestStore(t)
	for _, w := range []string{"X", "O", "X"} {
		store.SaveResult(Result{GameID: "tictactoe", Outcome: OutcomeWin, Winner: w, Moves: 5})
	}

	results, err := store.RecentResults("tictactoe", 2)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].ID < results[1].ID {
		t.Errorf("results not newest first: %d before %d", results[0].ID, results[1].ID)
	}
}

func TestTally(t *testing.T) {
	store := openTestStore(t)
	saves := []Result{
		{Outcome: OutcomeWin, Winner: "X"},
		{Outcome: OutcomeWin, Winner: "X"},
		{Outcome: OutcomeWin, Winner: "O"},
		{Outcome: OutcomeDraw},
	}
	for _, r := range saves {
		r.GameID = "tictactoe"
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}
	store.SaveResult(Result{GameID: "other", Outcome: OutcomeDraw})

	tally, err := store.Tally("tictactoe")
	if err != nil {
		t.Fatalf("Tally() failed: %v", err)
	}
	if tally.Wins["X"] != 2 || tally.Wins["O"] != 1 || tally.Draws != 1 {
		t.Errorf("Tally() = %+v", tally)
	}
	if tally.Total() != 4 {
		t.Errorf("Total() = %d, want 4", tally.Total())
	}
}
