// Command fractal grows the glider seed with a rule file and prints the number
// of on cells after every step.
//
// Usage:
//
//	fractal [flags] [steps] [rulefile]
//
// steps defaults to 2 and rulefile to "example".
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/katalvlaran/fractal/block"
	"github.com/katalvlaran/fractal/fractal"
	"github.com/katalvlaran/fractal/rulebook"
)

func main() {
	var (
		seedText = flag.String("seed", fractal.DefaultSeed, "Starting image pattern")
		maxSize  = flag.Int("max-size", 0, "Largest image side allowed (0 = unlimited)")
		show     = flag.Bool("show", false, "Print the final image")
		verbose  = flag.Bool("v", false, "Log image size after each step")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [steps] [rulefile]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("fractal: ")

	steps, path := 2, "example"
	args := flag.Args()
	if len(args) > 2 {
		flag.Usage()
		os.Exit(2)
	}
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			log.Fatalf("invalid step count %q: %v", args[0], err)
		}
		steps = n
	}
	if len(args) > 1 {
		path = args[1]
	}

	text, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read rules: %v", err)
	}
	book, err := rulebook.Parse(string(text))
	if err != nil {
		log.Fatalf("Failed to parse rules: %v", err)
	}
	seed, err := block.Parse(*seedText)
	if err != nil {
		log.Fatalf("Failed to parse seed: %v", err)
	}
	if *verbose {
		log.Printf("loaded %d rules (%d orientations) from %s", book.Len(), book.Classes(), path)
	}

	var f *fractal.Fractal
	f, err = fractal.New(book, seed,
		fractal.WithMaxSize(*maxSize),
		fractal.WithOnStep(func(step, ones int) error {
			fmt.Printf("[%d] Ones = %d\n", step, ones)
			if *verbose {
				log.Printf("step %d: image %d×%d", step, f.Size(), f.Size())
			}
			return nil
		}))
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}
	if err = f.Run(steps); err != nil {
		log.Fatalf("Run failed: %v", err)
	}

	fmt.Printf("Ones = %d\n", f.Ones())
	if *show {
		fmt.Println(f.Image().Format())
	}
}
