// Command mirrorverse traces the rays of a scene file through its mirrors
// and renders the result: mirrors as outlines, ray paths as polylines.
//
// Usage:
//
//	mirrorverse -scene scene.json [-out scene.png] [-csv outlines.csv] [-bounces 16]
//
// Rendering projects onto the first two coordinate axes, which is exact for
// the default two-dimensional build.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	mirrorverse "github.com/uku3lig/MirrorVerse"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

var (
	sceneFlag   = flag.String("scene", "", "scene JSON file to trace (required)")
	outFlag     = flag.String("out", "scene.png", "output image")
	csvFlag     = flag.String("csv", "", "optional CSV dump of mirror outline points")
	bouncesFlag = flag.Int("bounces", 0, "max reflections per ray, 0 means the scene's own cap")
	samplesFlag = flag.Int("samples", 256, "samples per curved mirror outline")
)

type outliner interface {
	Outline(samples int) []mirrorverse.Point
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("mirrorverse: ")
	flag.Parse()
	if *sceneFlag == "" {
		flag.Usage()
		os.Exit(2)
	}

	scene, err := mirrorverse.LoadScene(*sceneFlag)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("loaded %s: %d mirrors, %d rays", *sceneFlag, len(scene.Mirrors), len(scene.Rays))

	p := plot.New()
	p.Title.Text = "MirrorVerse"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	for i, m := range scene.Mirrors {
		o, ok := m.(outliner)
		if !ok {
			log.Printf("mirror %d (%s): no outline, skipping in render", i, m.Kind())
			continue
		}
		line, err := plotter.NewLine(toXYs(o.Outline(*samplesFlag)))
		if err != nil {
			log.Fatal(err)
		}
		line.Color = plotutil.Color(0)
		p.Add(line)
	}

	for i, ray := range scene.Rays {
		path := scene.Trace(ray, *bouncesFlag)
		log.Printf("ray %d: %d bounces", i, len(path)-1)
		line, err := plotter.NewLine(toXYs(path))
		if err != nil {
			log.Fatal(err)
		}
		line.Color = plotutil.Color(1 + i)
		p.Add(line)
	}

	if err := p.Save(8*vg.Inch, 8*vg.Inch, *outFlag); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s", *outFlag)

	if *csvFlag != "" {
		if err := writeOutlines(*csvFlag, scene); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s", *csvFlag)
	}
}

func toXYs(pts []mirrorverse.Point) plotter.XYs {
	xys := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		xys[i] = plotter.XY{X: pt[0], Y: pt[1]}
	}
	return xys
}

func writeOutlines(path string, scene *mirrorverse.Scene) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"mirror", "kind"}
	for i := 0; i < mirrorverse.Dims; i++ {
		header = append(header, fmt.Sprintf("x%d", i))
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for i, m := range scene.Mirrors {
		o, ok := m.(outliner)
		if !ok {
			continue
		}
		for _, pt := range o.Outline(*samplesFlag) {
			row := []string{strconv.Itoa(i), m.Kind()}
			for _, c := range pt {
				row = append(row, strconv.FormatFloat(c, 'f', -1, 64))
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}
	w.Flush()
	return w.Error()
}
