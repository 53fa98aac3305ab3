// Package progress persists student learning data in a local SQLite
// file: per-activity progress records, cumulative per-student stats
// with zone unlock flags, and play sessions.
package progress

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const timeLayout = "2006-01-02 15:04:05"

// Module names recorded in progress rows. Stats counters key off them.
const (
	ModuleWords    = "Word Recognition"
	ModuleReading  = "Reading Fluency"
	ModuleStory    = "Story Comprehension"
	ModuleBarangay = "Barangay Captain"
	ModuleRecipe   = "Recipe Reading"
	ModuleSynonyms = "Synonyms & Antonyms"
)

// Zone names accepted by UnlockZone.
const (
	ZoneReading = "reading"
	ZoneStory   = "story"
)

// Record is one completed activity.
type Record struct {
	ID         int64
	StudentID  string
	Module     string
	Score      int
	GemsEarned int
	TimeSpent  float64
	Timestamp  string
}

// Stats is a student's cumulative standing.
type Stats struct {
	StudentID        string
	TotalGems        int
	WordsCompleted   int
	ReadingCompleted int
	StoryCompleted   int
	ReadingUnlocked  bool
	StoryUnlocked    bool
}

// Report is the teacher-dashboard summary.
type Report struct {
	Students         []Stats
	TotalSessions    int
	AvgTimePerModule float64
	GeneratedAt      string
}

// Store wraps the SQLite database. All methods are safe for the single
// game goroutine; database/sql serializes access internally.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the progress database and ensures the
// schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}
	s := &Store{db: db}
	if err := s.init(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) init() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS progress (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			student_id TEXT NOT NULL,
			module TEXT NOT NULL,
			score INTEGER,
			gems_earned INTEGER,
			time_spent REAL,
			timestamp TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS student_stats (
			student_id TEXT PRIMARY KEY,
			total_gems INTEGER DEFAULT 0,
			words_completed INTEGER DEFAULT 0,
			reading_completed INTEGER DEFAULT 0,
			story_completed INTEGER DEFAULT 0,
			reading_unlocked INTEGER DEFAULT 0,
			story_unlocked INTEGER DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			student_id TEXT NOT NULL,
			start_time TEXT,
			end_time TEXT,
			duration REAL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}

// ensureStudent inserts a stats row for the student if none exists.
func (s *Store) ensureStudent(studentID string) error {
	_, err := s.db.Exec(
		`INSERT OR IGNORE INTO student_stats (student_id) VALUES (?)`, studentID)
	return err
}

// LogProgress records one completed activity and folds it into the
// student's cumulative stats.
func (s *Store) LogProgress(studentID, module string, score, gemsEarned int, timeSpent float64) error {
	_, err := s.db.Exec(
		`INSERT INTO progress (student_id, module, score, gems_earned, time_spent, timestamp)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		studentID, module, score, gemsEarned, timeSpent, time.Now().Format(timeLayout))
	if err != nil {
		return fmt.Errorf("log progress: %w", err)
	}
	return s.UpdateStudentStats(studentID, module, gemsEarned)
}

// UpdateStudentStats adds gems and bumps the completion counter that
// matches the module, if any.
func (s *Store) UpdateStudentStats(studentID, module string, gemsEarned int) error {
	if err := s.ensureStudent(studentID); err != nil {
		return fmt.Errorf("update stats: %w", err)
	}

	_, err := s.db.Exec(
		`UPDATE student_stats SET total_gems = total_gems + ? WHERE student_id = ?`,
		gemsEarned, studentID)
	if err != nil {
		return fmt.Errorf("update stats: %w", err)
	}

	var counter string
	switch module {
	case ModuleWords:
		counter = "words_completed"
	case ModuleReading:
		counter = "reading_completed"
	case ModuleStory:
		counter = "story_completed"
	default:
		return nil
	}
	_, err = s.db.Exec(
		`UPDATE student_stats SET `+counter+` = `+counter+` + 1 WHERE student_id = ?`,
		studentID)
	if err != nil {
		return fmt.Errorf("update stats: %w", err)
	}
	return nil
}

// StudentStats returns the student's cumulative stats. A student with
// no rows yet gets zero-valued stats, not an error.
func (s *Store) StudentStats(studentID string) (Stats, error) {
	st := Stats{StudentID: studentID}
	var readingUnlocked, storyUnlocked int
	err := s.db.QueryRow(
		`SELECT total_gems, words_completed, reading_completed, story_completed,
		        reading_unlocked, story_unlocked
		 FROM student_stats WHERE student_id = ?`, studentID).
		Scan(&st.TotalGems, &st.WordsCompleted, &st.ReadingCompleted,
			&st.StoryCompleted, &readingUnlocked, &storyUnlocked)
	if err == sql.ErrNoRows {
		return st, nil
	}
	if err != nil {
		return st, fmt.Errorf("student stats: %w", err)
	}
	st.ReadingUnlocked = readingUnlocked != 0
	st.StoryUnlocked = storyUnlocked != 0
	return st, nil
}

// UnlockZone flips a student's unlock flag for the named zone.
func (s *Store) UnlockZone(studentID, zone string) error {
	if err := s.ensureStudent(studentID); err != nil {
		return fmt.Errorf("unlock zone: %w", err)
	}
	var column string
	switch zone {
	case ZoneReading:
		column = "reading_unlocked"
	case ZoneStory:
		column = "story_unlocked"
	default:
		return fmt.Errorf("unlock zone: unknown zone %q", zone)
	}
	_, err := s.db.Exec(
		`UPDATE student_stats SET `+column+` = 1 WHERE student_id = ?`, studentID)
	if err != nil {
		return fmt.Errorf("unlock zone: %w", err)
	}
	return nil
}

// StartSession opens a new play session and returns its id.
func (s *Store) StartSession(studentID string) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO sessions (student_id, start_time) VALUES (?, ?)`,
		studentID, time.Now().Format(timeLayout))
	if err != nil {
		return 0, fmt.Errorf("start session: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("start session: %w", err)
	}
	return id, nil
}

// EndSession stamps the session's end time and total duration in
// seconds.
func (s *Store) EndSession(sessionID int64, duration float64) error {
	_, err := s.db.Exec(
		`UPDATE sessions SET end_time = ?, duration = ? WHERE id = ?`,
		time.Now().Format(timeLayout), duration, sessionID)
	if err != nil {
		return fmt.Errorf("end session: %w", err)
	}
	return nil
}

// AllProgress returns the most recent activity records across all
// students, newest first, capped for the dashboard view.
func (s *Store) AllProgress(limit int) ([]Record, error) {
	rows, err := s.db.Query(
		`SELECT id, student_id, module, score, gems_earned, time_spent, timestamp
		 FROM progress ORDER BY timestamp DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("all progress: %w", err)
	}
	defer rows.Close()
	return scanRecords(rows)
}

// StudentProgress returns one student's activity records, newest first.
func (s *Store) StudentProgress(studentID string) ([]Record, error) {
	rows, err := s.db.Query(
		`SELECT id, student_id, module, score, gems_earned, time_spent, timestamp
		 FROM progress WHERE student_id = ? ORDER BY timestamp DESC`, studentID)
	if err != nil {
		return nil, fmt.Errorf("student progress: %w", err)
	}
	defer rows.Close()
	return scanRecords(rows)
}

func scanRecords(rows *sql.Rows) ([]Record, error) {
	var out []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.StudentID, &r.Module, &r.Score,
			&r.GemsEarned, &r.TimeSpent, &r.Timestamp); err != nil {
			return nil, fmt.Errorf("scan progress row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// GenerateReport builds the teacher-dashboard summary: every student's
// stats, the session count and the mean time per activity.
func (s *Store) GenerateReport() (Report, error) {
	rep := Report{GeneratedAt: time.Now().Format(timeLayout)}

	rows, err := s.db.Query(
		`SELECT student_id, total_gems, words_completed, reading_completed,
		        story_completed, reading_unlocked, story_unlocked
		 FROM student_stats ORDER BY student_id`)
	if err != nil {
		return rep, fmt.Errorf("report: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var st Stats
		var readingUnlocked, storyUnlocked int
		if err := rows.Scan(&st.StudentID, &st.TotalGems, &st.WordsCompleted,
			&st.ReadingCompleted, &st.StoryCompleted,
			&readingUnlocked, &storyUnlocked); err != nil {
			return rep, fmt.Errorf("report: %w", err)
		}
		st.ReadingUnlocked = readingUnlocked != 0
		st.StoryUnlocked = storyUnlocked != 0
		rep.Students = append(rep.Students, st)
	}
	if err := rows.Err(); err != nil {
		return rep, fmt.Errorf("report: %w", err)
	}

	if err := s.db.QueryRow(`SELECT COUNT(*) FROM sessions`).
		Scan(&rep.TotalSessions); err != nil {
		return rep, fmt.Errorf("report: %w", err)
	}
	var avg sql.NullFloat64
	if err := s.db.QueryRow(`SELECT AVG(time_spent) FROM progress`).
		Scan(&avg); err != nil {
		return rep, fmt.Errorf("report: %w", err)
	}
	rep.AvgTimePerModule = avg.Float64
	return rep, nil
}
