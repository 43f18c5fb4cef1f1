package main

import (
	"flag"
	"fmt"
	"os"

	"whitted-renderer/internal/postprocess"
	"whitted-renderer/internal/raster"
)

func main() {
	threshold := flag.Int("threshold", 0, "Largest per-channel difference (0-255) still treated as equal")
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Usage: compare [-threshold N] <a> <b>")
		os.Exit(2)
	}

	a, err := raster.Load(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	b, err := raster.Load(flag.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	s, err := postprocess.Diff(a, b)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	fmt.Printf("Pixels: %d, differing: %d\n", s.Pixels, s.Differ)
	fmt.Printf("Max channel diff: %d at (%d,%d)\n", s.Max, s.MaxPoint.X, s.MaxPoint.Y)
	fmt.Printf("Mean channel diff: %.4f\n", s.Mean)

	if int(s.Max) > *threshold {
		fmt.Println("DIFFERENT")
		os.Exit(1)
	}
	fmt.Println("SAME")
}
