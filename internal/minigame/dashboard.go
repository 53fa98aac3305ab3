package minigame

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/bright4Pres/KONEKTA/internal/config"
	"github.com/bright4Pres/KONEKTA/internal/progress"
	"github.com/bright4Pres/KONEKTA/internal/ui"
)

// Reporter is the slice of the progress store the dashboard reads.
type Reporter interface {
	GenerateReport() (progress.Report, error)
	AllProgress(limit int) ([]progress.Record, error)
}

// Dashboard is the teacher view: per-student stats, session totals and
// the most recent activity records. It is reached with Ctrl+T from any
// screen.
type Dashboard struct {
	reporter Reporter

	report  progress.Report
	recent  []progress.Record
	loadErr error
	next    string
}

// NewDashboard creates the teacher dashboard.
func NewDashboard(reporter Reporter) *Dashboard {
	return &Dashboard{reporter: reporter}
}

// Enter refreshes the report from the store.
func (d *Dashboard) Enter() {
	d.next = ""
	d.report = progress.Report{}
	d.recent = nil
	d.loadErr = nil
	if d.reporter == nil {
		return
	}

	rep, err := d.reporter.GenerateReport()
	if err != nil {
		log.Printf("generate report: %v", err)
		d.loadErr = err
		return
	}
	d.report = rep

	recent, err := d.reporter.AllProgress(10)
	if err != nil {
		log.Printf("load recent progress: %v", err)
		return
	}
	d.recent = recent
}

// Exit is a no-op; the dashboard is read-only.
func (d *Dashboard) Exit() {}

// Next reports the pending transition.
func (d *Dashboard) Next() string { return d.next }

// Update returns to the hub on ESC.
func (d *Dashboard) Update(dt float64) error {
	if escPressed() {
		d.next = config.StateOverworld
	}
	return nil
}

// Draw renders the report.
func (d *Dashboard) Draw(screen *ebiten.Image) {
	screen.Fill(config.DarkGray)
	ui.DrawText(screen, "Teacher Dashboard", 50, 30)

	if d.loadErr != nil || d.reporter == nil {
		ui.DrawText(screen, "Progress data unavailable", 50, 100)
		ui.DrawText(screen, "Press ESC to return", 50, config.ScreenHeight-50)
		return
	}

	y := 90
	ui.DrawText(screen, fmt.Sprintf("Total Sessions: %d", d.report.TotalSessions), 50, y)
	y += 30
	ui.DrawText(screen, fmt.Sprintf("Avg Time per Module: %.1fs", d.report.AvgTimePerModule), 50, y)
	y += 50

	ui.DrawText(screen, "Student Progress:", 50, y)
	y += 30
	for _, st := range d.report.Students {
		line := fmt.Sprintf("%s: %d gems | Words:%d Reading:%d Story:%d",
			st.StudentID, st.TotalGems, st.WordsCompleted, st.ReadingCompleted, st.StoryCompleted)
		ui.DrawText(screen, line, 70, y)
		y += 22
	}
	y += 30

	ui.DrawText(screen, "Recent Activity:", 50, y)
	y += 30
	for _, rec := range d.recent {
		line := fmt.Sprintf("%s  %s  %s  score %d  +%d gems",
			rec.Timestamp, rec.StudentID, rec.Module, rec.Score, rec.GemsEarned)
		ui.DrawText(screen, line, 70, y)
		y += 22
	}

	ui.DrawText(screen, "Press ESC to return", 50, config.ScreenHeight-50)
}
