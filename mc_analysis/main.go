package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pkg/profile"

	"github.com/decibelcooper/shmsplot"
)

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: `+os.Args[0]+` [options]

Fills the input Monte-Carlo histograms from a ROOT ntuple and writes them
to a ROOT file.

options:
`,
	)
	flag.PrintDefaults()
}

func main() {
	log.SetPrefix("mc_analysis: ")
	log.SetFlags(0)

	var (
		input   = flag.String("input", shmsplot.DefaultInput, "input ROOT file")
		tree    = flag.String("tree", shmsplot.DefaultTree, "name of the input tree")
		output  = flag.String("output", shmsplot.DefaultOutput, "output ROOT file")
		group   = flag.String("dir", shmsplot.DefaultGroup, "output directory holding the histograms")
		cpuProf = flag.Bool("profile", false, "write a CPU profile to the current directory")
	)
	flag.Usage = printUsage
	flag.Parse()
	if flag.NArg() != 0 {
		printUsage()
		log.Fatal("Invalid arguments")
	}

	if err := run(*input, *tree, *output, *group, *cpuProf); err != nil {
		log.Fatal(err)
	}
}

func run(input, tree, output, group string, cpuProf bool) error {
	if cpuProf {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	}

	h, err := shmsplot.Run(input, output,
		shmsplot.WithTree(tree),
		shmsplot.WithGroup(group),
		shmsplot.WithLogger(log.Default()),
	)
	if err != nil {
		return err
	}

	log.Printf("wrote %d histograms to %s/%s",
		len(h.H1)+len(h.H2), output, group,
	)
	return nil
}
