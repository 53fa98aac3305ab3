// Package config holds the game constants and the deployment
// configuration for the kiosk build.
package config

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
)

// Screen settings.
const (
	ScreenWidth  = 1024
	ScreenHeight = 768
	TPS          = 60
)

// World geometry. Atlas cells are 16px in the source image and are
// rendered at 32px; the player sprite is taller than one tile and is
// anchored above the feet.
const (
	AtlasTileSize = 16
	TileSize      = 32
	PlayerSize    = 48
)

// Movement and animation tuning.
const (
	WalkSpeed = 2.0
	RunSpeed  = 4.0

	IdlePhaseStep = 0.05
	WalkPhaseStep = 0.15
	RunPhaseStep  = 0.25

	CameraSmoothing = 0.1
)

// Default spawn when the map provides nothing to stand on.
const (
	DefaultSpawnX = 10
	DefaultSpawnY = 8
)

// Scoring and assistive timing.
const (
	PointsPerCorrect = 10
	HintDelaySec     = 5.0
	FeedbackSec      = 2.0
)

// DefaultStudentID is used when the kiosk runs without a roster.
const DefaultStudentID = "student_demo"

// High-contrast palette (accessibility requirement for the target
// classrooms).
var (
	White     = color.RGBA{255, 255, 255, 255}
	Black     = color.RGBA{0, 0, 0, 255}
	Green     = color.RGBA{34, 139, 34, 255}
	Blue      = color.RGBA{0, 102, 204, 255}
	Red       = color.RGBA{220, 20, 60, 255}
	Yellow    = color.RGBA{255, 215, 0, 255}
	LightGray = color.RGBA{200, 200, 200, 255}
	DarkGray  = color.RGBA{100, 100, 100, 255}
	Orange    = color.RGBA{255, 140, 0, 255}
	Purple    = color.RGBA{128, 0, 128, 255}
	SkyTop    = color.RGBA{135, 206, 235, 255}
	SkyBottom = color.RGBA{185, 226, 245, 255}
)

// Drawable layer names in bottom-to-top composite order.
var DrawOrder = []string{"water", "terrain", "path", "structures", "foliage", "shadow"}

// Non-visual layer names.
const (
	CollisionLayer   = "collision"
	DesignationLayer = "gamedesignation"
)

// ZoneMarkers maps gamedesignation cell values to interaction zone
// names. One marker tile = one zone instance.
var ZoneMarkers = map[uint32]string{
	70: "barangay_captain",
	71: "recipe_game",
	72: "synonym_antonym",
	73: "word_recognition",
	74: "reading_fluency",
	75: "comprehension",
}

// Screen names registered in the state dispatcher.
const (
	StateOverworld = "overworld"
	StateWords     = "words"
	StateReading   = "reading"
	StateStory     = "story"
	StateBarangay  = "barangay"
	StateRecipe    = "recipe"
	StateSynonyms  = "synonyms"
	StateDashboard = "dashboard"
)

// ZoneScreens maps interaction zone names to the screen registered for
// them in the state dispatcher.
var ZoneScreens = map[string]string{
	"barangay_captain": StateBarangay,
	"recipe_game":      StateRecipe,
	"synonym_antonym":  StateSynonyms,
	"word_recognition": StateWords,
	"reading_fluency":  StateReading,
	"comprehension":    StateStory,
}

// ZoneLabels maps zone names to the label shown in the entry prompt.
var ZoneLabels = map[string]string{
	"barangay_captain": "Barangay Captain Simulator",
	"recipe_game":      "Recipe Game",
	"synonym_antonym":  "Word Match",
	"word_recognition": "Word Recognition",
	"reading_fluency":  "Reading Fluency",
	"comprehension":    "Reading Comprehension",
}

// Config is the deployment configuration. Everything has a usable
// default so the game runs from a fresh checkout.
type Config struct {
	Kiosk     bool   `json:"kiosk"`      // fullscreen, quit disabled
	DataDir   string `json:"data_dir"`   // tileset, sprites, map layers
	Database  string `json:"database"`   // progress store path
	StudentID string `json:"student_id"` // active student
	MapName   string `json:"map"`        // map directory under DataDir/maps
}

// DefaultConfig returns the development defaults.
func DefaultConfig() *Config {
	return &Config{
		Kiosk:     false,
		DataDir:   "data",
		Database:  "progress.db",
		StudentID: DefaultStudentID,
		MapName:   "hub",
	}
}

// LoadConfig loads a config file, falling back to defaults when the
// file does not exist.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}
