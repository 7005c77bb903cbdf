package storage

import "testing"

func TestTopScoresOrderAndIsolation(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{12, 3, 40} {
		if _, err := store.SaveScore("snake", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("other", 99); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("snake", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("got %d scores, want 3", len(scores))
	}
	want := []int{40, 12, 3}
	for i, e := range scores {
		if e.Score != want[i] {
			t.Errorf("scores[%d] = %d, want %d", i, e.Score, want[i])
		}
		if e.GameID != "snake" {
			t.Errorf("scores[%d].GameID = %q", i, e.GameID)
		}
		if e.CreatedAt.IsZero() {
			t.Errorf("scores[%d].CreatedAt not parsed", i)
		}
	}
}

func TestTopScoresLimit(t *testing.T) {
	store := openTestStore(t)
	for i := range 15 {
		store.SaveScore("snake", i+1)
	}

	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"explicit", 3, 3},
		{"default", 0, 10},
		{"negative", -1, 10},
		{"larger than table", 50, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scores, err := store.TopScores("snake", tt.limit)
			if err != nil {
				t.Fatalf("TopScores() failed: %v", err)
			}
			if len(scores) != tt.want {
				t.Errorf("len = %d, want %d", len(scores), tt.want)
			}
			if scores[0].Score != 15 {
				t.Errorf("best = %d, want 15", scores[0].Score)
			}
		})
	}
}

func TestHighScoreAndClear(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("snake")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore() on empty table = %d, want 0", high)
	}

	store.SaveScore("snake", 5)
	store.SaveScore("snake", 9)
	store.SaveScore("other", 1)

	if high, _ = store.HighScore("snake"); high != 9 {
		t.Errorf("HighScore() = %d, want 9", high)
	}

	if err := store.ClearScores("snake"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	scores, _ := store.TopScores("snake", 10)
	if len(scores) != 0 {
		t.Errorf("%d scores left after clear", len(scores))
	}
	if other, _ := store.TopScores("other", 10); len(other) != 1 {
		t.Error("ClearScores removed another game's scores")
	}
}
