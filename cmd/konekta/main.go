// Command konekta runs the literacy kiosk: the overworld hub, the
// learning games and the teacher dashboard.
package main

import (
	"flag"
	"log"
	"math/rand"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/bright4Pres/KONEKTA/internal/camera"
	"github.com/bright4Pres/KONEKTA/internal/config"
	"github.com/bright4Pres/KONEKTA/internal/game"
	"github.com/bright4Pres/KONEKTA/internal/layers"
	"github.com/bright4Pres/KONEKTA/internal/minigame"
	"github.com/bright4Pres/KONEKTA/internal/overworld"
	"github.com/bright4Pres/KONEKTA/internal/player"
	"github.com/bright4Pres/KONEKTA/internal/progress"
	"github.com/bright4Pres/KONEKTA/internal/tilemap"
	"github.com/bright4Pres/KONEKTA/internal/tileset"
)

func main() {
	configPath := flag.String("config", "konekta.json", "config file path")
	dataDir := flag.String("data", "", "override data directory")
	database := flag.String("db", "", "override progress database path")
	student := flag.String("student", "", "override active student id")
	kiosk := flag.Bool("kiosk", false, "force kiosk mode (fullscreen, quit disabled)")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	if *database != "" {
		cfg.Database = *database
	}
	if *student != "" {
		cfg.StudentID = *student
	}
	if *kiosk {
		cfg.Kiosk = true
	}

	store, err := progress.Open(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to open progress database: %v", err)
	}
	defer store.Close()

	ts, err := tileset.Load(filepath.Join(cfg.DataDir, "tiles.png"),
		config.AtlasTileSize, config.TileSize)
	if err != nil {
		log.Printf("Tileset not loaded, map will not render: %v", err)
	}

	mapDir := filepath.Join(cfg.DataDir, "maps", cfg.MapName)
	names := append([]string{}, config.DrawOrder...)
	names = append(names, config.CollisionLayer, config.DesignationLayer)
	grids := layers.LoadStore(mapDir, names)
	if grids.Cols == 0 || grids.Rows == 0 {
		log.Fatalf("No map layers found in %s (run genassets first)", mapDir)
	}

	tm := tilemap.New(ts, grids, config.TileSize, config.ZoneMarkers)
	sx, sy := tm.SpawnPoint()
	pl := player.New(sx, sy, tm.Converter(), filepath.Join(cfg.DataDir, "sprites"))
	cam := camera.New(config.TileSize, config.PlayerSize-config.TileSize)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	states := map[string]game.State{
		config.StateOverworld: overworld.New(cfg, tm, pl, cam, store),
		config.StateWords:     minigame.NewWords(cfg, store, rng),
		config.StateReading:   minigame.NewReading(cfg, store),
		config.StateStory:     minigame.NewStory(cfg, store),
		config.StateBarangay:  minigame.NewBarangay(cfg, store),
		config.StateRecipe:    minigame.NewRecipe(cfg, store),
		config.StateSynonyms:  minigame.NewSynonyms(cfg, store, rng),
		config.StateDashboard: minigame.NewDashboard(store),
	}

	g, err := game.New(cfg, states, config.StateOverworld, store)
	if err != nil {
		log.Fatalf("Failed to start game: %v", err)
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("KONEKTA")
	ebiten.SetTPS(config.TPS)
	if cfg.Kiosk {
		ebiten.SetFullscreen(true)
		ebiten.SetWindowClosingHandled(true)
	}

	if err := ebiten.RunGame(g); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
	if err := g.Shutdown(); err != nil {
		log.Printf("Shutdown: %v", err)
	}
}
