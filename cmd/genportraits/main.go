package main

import (
	"flag"
	"fmt"
	"os"

	"chosenoffset.com/footlights/internal/placeholders"
	"chosenoffset.com/footlights/internal/play"
)

func main() {
	playPath := flag.String("play", "data/plays/prologue.json", "play whose cast needs portraits")
	outDir := flag.String("out", "data/portraits", "directory to write portraits to")
	flag.Parse()

	fmt.Println("Footlights Placeholder Portrait Generator")
	fmt.Println("=========================================")
	fmt.Println()

	p, err := play.Load(*playPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	names := make([]string, 0, len(p.Cast))
	for _, member := range p.Cast {
		names = append(names, member.Name)
	}

	paths, err := placeholders.GenerateAndSave(*outDir, names)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	for _, path := range paths {
		fmt.Printf("  wrote %s\n", path)
	}

	fmt.Println()
	fmt.Println("Done! Point each cast member's \"portrait\" at its file to use it.")
}
