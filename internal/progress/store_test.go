package progress

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "progress.db"))
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStatsForUnknownStudent(t *testing.T) {
	s := openTestStore(t)

	st, err := s.StudentStats("nobody")
	if err != nil {
		t.Fatalf("Failed to read stats: %v", err)
	}
	if st.TotalGems != 0 || st.WordsCompleted != 0 {
		t.Errorf("Expected zero stats for unknown student, got %+v", st)
	}
}

func TestLogProgressAccumulates(t *testing.T) {
	s := openTestStore(t)

	if err := s.LogProgress("ana", ModuleWords, 85, 120, 95.5); err != nil {
		t.Fatalf("Failed to log progress: %v", err)
	}
	if err := s.LogProgress("ana", ModuleWords, 90, 150, 80.0); err != nil {
		t.Fatalf("Failed to log progress: %v", err)
	}
	if err := s.LogProgress("ana", ModuleReading, 60, 6, 200.0); err != nil {
		t.Fatalf("Failed to log progress: %v", err)
	}

	st, err := s.StudentStats("ana")
	if err != nil {
		t.Fatalf("Failed to read stats: %v", err)
	}
	if st.TotalGems != 276 {
		t.Errorf("Expected 276 total gems, got %d", st.TotalGems)
	}
	if st.WordsCompleted != 2 {
		t.Errorf("Expected 2 word runs, got %d", st.WordsCompleted)
	}
	if st.ReadingCompleted != 1 {
		t.Errorf("Expected 1 reading run, got %d", st.ReadingCompleted)
	}
	if st.StoryCompleted != 0 {
		t.Errorf("Expected 0 story runs, got %d", st.StoryCompleted)
	}
}

func TestModuleWithoutCounterStillAddsGems(t *testing.T) {
	s := openTestStore(t)

	if err := s.LogProgress("ana", ModuleBarangay, 4, 40, 60.0); err != nil {
		t.Fatalf("Failed to log progress: %v", err)
	}
	st, err := s.StudentStats("ana")
	if err != nil {
		t.Fatalf("Failed to read stats: %v", err)
	}
	if st.TotalGems != 40 {
		t.Errorf("Expected 40 gems, got %d", st.TotalGems)
	}
	if st.WordsCompleted != 0 || st.ReadingCompleted != 0 || st.StoryCompleted != 0 {
		t.Errorf("Expected no completion counters to move, got %+v", st)
	}
}

func TestUnlockZone(t *testing.T) {
	s := openTestStore(t)

	if err := s.UnlockZone("ana", ZoneStory); err != nil {
		t.Fatalf("Failed to unlock zone: %v", err)
	}
	st, err := s.StudentStats("ana")
	if err != nil {
		t.Fatalf("Failed to read stats: %v", err)
	}
	if !st.StoryUnlocked {
		t.Error("Expected story zone unlocked")
	}
	if st.ReadingUnlocked {
		t.Error("Expected reading zone still locked")
	}

	if err := s.UnlockZone("ana", "volcano"); err == nil {
		t.Error("Expected error for unknown zone, got nil")
	}
}

func TestSessions(t *testing.T) {
	s := openTestStore(t)

	id, err := s.StartSession("ana")
	if err != nil {
		t.Fatalf("Failed to start session: %v", err)
	}
	if id == 0 {
		t.Error("Expected non-zero session id")
	}
	if err := s.EndSession(id, 310.5); err != nil {
		t.Fatalf("Failed to end session: %v", err)
	}

	rep, err := s.GenerateReport()
	if err != nil {
		t.Fatalf("Failed to generate report: %v", err)
	}
	if rep.TotalSessions != 1 {
		t.Errorf("Expected 1 session in report, got %d", rep.TotalSessions)
	}
}

func TestProgressQueries(t *testing.T) {
	s := openTestStore(t)

	students := []string{"ana", "ben", "ana"}
	for i, id := range students {
		if err := s.LogProgress(id, ModuleStory, 50+i, 10, 30.0); err != nil {
			t.Fatalf("Failed to log progress: %v", err)
		}
	}

	all, err := s.AllProgress(10)
	if err != nil {
		t.Fatalf("Failed to query progress: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Expected 3 records, got %d", len(all))
	}

	mine, err := s.StudentProgress("ana")
	if err != nil {
		t.Fatalf("Failed to query student progress: %v", err)
	}
	if len(mine) != 2 {
		t.Errorf("Expected 2 records for ana, got %d", len(mine))
	}
	for _, r := range mine {
		if r.StudentID != "ana" {
			t.Errorf("Expected only ana's records, got %q", r.StudentID)
		}
	}
}

func TestReportAverages(t *testing.T) {
	s := openTestStore(t)

	if err := s.LogProgress("ana", ModuleWords, 80, 100, 100.0); err != nil {
		t.Fatalf("Failed to log progress: %v", err)
	}
	if err := s.LogProgress("ben", ModuleWords, 70, 80, 200.0); err != nil {
		t.Fatalf("Failed to log progress: %v", err)
	}

	rep, err := s.GenerateReport()
	if err != nil {
		t.Fatalf("Failed to generate report: %v", err)
	}
	if len(rep.Students) != 2 {
		t.Errorf("Expected 2 students in report, got %d", len(rep.Students))
	}
	if rep.AvgTimePerModule != 150.0 {
		t.Errorf("Expected average time 150.0, got %v", rep.AvgTimePerModule)
	}
}
