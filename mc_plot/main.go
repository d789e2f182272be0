package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/decibelcooper/shmsplot"
)

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: `+os.Args[0]+` [options] [root-file]

Renders every histogram of a directory of a ROOT file written by
mc_analysis. The file defaults to `+shmsplot.DefaultOutput+`.

options:
`,
	)
	flag.PrintDefaults()
}

var (
	group  = flag.String("dir", shmsplot.DefaultGroup, "directory holding the histograms")
	outDir = flag.String("o", ".", "directory for the output images")
	ext    = flag.String("ext", ".png", "image file extension (.png, .pdf, .svg)")
)

func main() {
	log.SetPrefix("mc_plot: ")
	log.SetFlags(0)

	flag.Usage = printUsage
	flag.Parse()

	fname := shmsplot.DefaultOutput
	switch flag.NArg() {
	case 0:
	case 1:
		fname = flag.Arg(0)
	default:
		printUsage()
		log.Fatal("Invalid arguments")
	}

	g, err := shmsplot.ReadGroup(fname, *group)
	if err != nil {
		log.Fatal(err)
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		log.Fatal(err)
	}

	files, err := shmsplot.SavePlots(g, *outDir, *ext)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("saved %d plots to %s", len(files), *outDir)
}
