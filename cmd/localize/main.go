package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gonum/floats"
	"github.com/jvlmdr/go-aml/aml"
	"github.com/jvlmdr/go-cv/rimg64"
	"github.com/jvlmdr/go-file/fileutil"
)

func init() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage:", os.Args[0], "[flags] query.json feats.json query-width query-height")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Locates the query descriptor in the feature map.")
		fmt.Fprintln(os.Stderr, "The query image size gives the target aspect ratio of the box.")
		flag.PrintDefaults()
	}
}

func main() {
	var (
		step   = flag.Int("step", 3, "Grid step of candidate areas")
		factor = flag.Float64("aspect-factor", 1.1, "Aspect ratio tolerance factor")
		exp    = flag.Float64("exp", aml.Exp, "Approximate max pooling exponent")
		out    = flag.String("o", "", "Write detection to file instead of stdout (.json)")
	)
	flag.Parse()
	if flag.NArg() != 4 {
		flag.Usage()
		os.Exit(1)
	}
	queryFile, featsFile := flag.Arg(0), flag.Arg(1)
	width, err := strconv.Atoi(flag.Arg(2))
	if err != nil {
		log.Fatalln("parse query width:", err)
	}
	height, err := strconv.Atoi(flag.Arg(3))
	if err != nil {
		log.Fatalln("parse query height:", err)
	}

	// Load query descriptor.
	var query []float64
	if err := fileutil.LoadExt(queryFile, &query); err != nil {
		log.Fatalln("load query:", err)
	}
	// The search expects a unit query.
	if n := floats.Norm(query, 2); n > 0 {
		floats.Scale(1/n, query)
	}
	// Load feature map.
	var feats *rimg64.Multi
	if err := fileutil.LoadExt(featsFile, &feats); err != nil {
		log.Fatalln("load features:", err)
	}

	opts := aml.DefaultOptions()
	opts.StepSize = *step
	opts.AspectRatioFactor = *factor
	opts.Exp = *exp

	t := time.Now()
	det, err := aml.Localize(query, feats, image.Pt(width, height), opts)
	if err != nil {
		log.Fatalln("localize:", err)
	}
	log.Printf("localize %.3gms", time.Since(t).Seconds()*1000)

	if *out != "" {
		if err := fileutil.SaveExt(*out, det); err != nil {
			log.Fatalln("save detection:", err)
		}
		return
	}
	fmt.Printf("%d %d %d %d %.6g\n",
		det.Rect.Min.X, det.Rect.Min.Y, det.Rect.Max.X, det.Rect.Max.Y, det.Score,
	)
}
