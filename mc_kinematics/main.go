package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"text/tabwriter"

	"github.com/decibelcooper/shmsplot"
)

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: `+os.Args[0]+` [options]

Prints Q^2 and W^2 for electron scattering off a proton at rest.

options:
`,
	)
	flag.PrintDefaults()
}

func main() {
	log.SetPrefix("mc_kinematics: ")
	log.SetFlags(0)

	var (
		beam   = flag.Float64("beam", 10.6, "beam energy (GeV)")
		mom    = flag.Float64("p", 8.5, "scattered electron momentum (GeV)")
		angles = shmsplot.FloatArrayFlags{Array: []float64{12.5}}
	)
	flag.Var(&angles, "theta", "scattering angle in degrees (repeatable, comma-separated)")
	flag.Usage = printUsage
	flag.Parse()
	if flag.NArg() != 0 {
		printUsage()
		log.Fatal("Invalid arguments")
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "theta (deg)\tQ2 (GeV^2)\tW2 (GeV^2)\t\n")
	for _, deg := range angles.Array {
		theta := deg * math.Pi / 180
		fmt.Fprintf(w, "%.3f\t%.4f\t%.4f\t\n", deg,
			shmsplot.CalcQ2(*beam, *mom, theta),
			shmsplot.CalcW2(*beam, *mom, theta),
		)
	}
	if err := w.Flush(); err != nil {
		log.Fatal(err)
	}
}
