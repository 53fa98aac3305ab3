// Command genassets generates the placeholder tileset, sprite sheets
// and demo hub map so the game runs from a fresh checkout.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/bright4Pres/KONEKTA/internal/assetgen"
)

func main() {
	dataDir := flag.String("data", "data", "output data directory")
	flag.Parse()

	if err := assetgen.GenerateAll(*dataDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Placeholder assets written to %s\n", *dataDir)
}
