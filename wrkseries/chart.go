// Copyright 2026 The wrkstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wrkseries

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/DreamTraveler233/wrkstat/wrkfmt"
)

const (
	chartWidth  = 8 * vg.Inch
	chartHeight = 4 * vg.Inch
	chartDPI    = 96
	pointRad    = 3
)

var (
	reqSecColor = color.NRGBA{0x1f, 0x77, 0xb4, 0xff}
	latColor    = color.NRGBA{0xff, 0x7f, 0x0e, 0xff}
)

// ChartNames returns the base names of the throughput and latency
// charts for endpoint.
func ChartNames(endpoint string) (reqSec, latP50 string) {
	flat := wrkfmt.FlatName(endpoint)
	return "reqsec_" + flat + ".png", "latp50_" + flat + ".png"
}

// Chart writes two PNG line charts for s into dir: requests/sec and
// median latency in milliseconds, each against the run configuration.
// Runs without a median latency are left off the latency line. It
// returns the paths written.
func Chart(s *Series, dir string) ([]string, error) {
	if len(s.Results) == 0 {
		return nil, fmt.Errorf("%s: no runs to chart", s.Endpoint)
	}
	labels := s.Labels()

	var reqs, lat plotter.XYs
	for i, r := range s.Results {
		reqs = append(reqs, plotter.XY{X: float64(i), Y: *r.Stats.ReqSec})
		if p50 := r.Stats.LatP50; p50 != nil {
			lat = append(lat, plotter.XY{X: float64(i), Y: *p50 * 1000})
		}
	}

	reqName, latName := ChartNames(s.Endpoint)
	var paths []string
	for _, c := range []struct {
		name, title, yLabel string
		xys                 plotter.XYs
		clr                 color.Color
	}{
		{reqName, "Requests/sec - " + s.Endpoint, "requests/sec", reqs, reqSecColor},
		{latName, "P50 latency (ms) - " + s.Endpoint, "P50 latency (ms)", lat, latColor},
	} {
		p, err := linePlot(c.title, c.yLabel, labels, c.xys, c.clr)
		if err != nil {
			return paths, fmt.Errorf("%s: %w", s.Endpoint, err)
		}
		path := filepath.Join(dir, c.name)
		if err := savePNG(p, path); err != nil {
			return paths, fmt.Errorf("%s: %w", s.Endpoint, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// ChartAll charts every series into dir, creating dir if needed. A
// series that fails to render is reported to warn and skipped. It
// returns the paths written.
func ChartAll(series []*Series, dir string, warn func(error)) ([]string, error) {
	if err := os.MkdirAll(dir, 0777); err != nil {
		return nil, err
	}
	var paths []string
	for _, s := range series {
		ps, err := Chart(s, dir)
		paths = append(paths, ps...)
		if err != nil {
			warn(err)
		}
	}
	return paths, nil
}

func linePlot(title, yLabel string, labels []string, xys plotter.XYs, clr color.Color) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "threads-connections"
	p.Y.Label.Text = yLabel

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	p.Add(grid)

	if len(xys) > 0 {
		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, err
		}
		line.Color = clr
		line.Width = vg.Points(1.5)
		points.Color = clr
		points.Shape = draw.CircleGlyph{}
		points.Radius = vg.Points(pointRad)
		p.Add(line, points)
	}

	p.NominalX(labels...)
	// Leave half a slot either side so end points are not clipped.
	p.X.Min = math.Min(p.X.Min, -0.5)
	p.X.Max = math.Max(p.X.Max, float64(len(labels))-0.5)
	p.X.Tick.Label.Rotation = -math.Pi / 4
	p.X.Tick.Label.YAlign = draw.YTop
	p.X.Tick.Label.XAlign = draw.XLeft
	return p, nil
}

func savePNG(p *plot.Plot, path string) error {
	c := vgimg.NewWith(vgimg.UseWH(chartWidth, chartHeight),
		vgimg.UseDPI(chartDPI), vgimg.UseBackgroundColor(color.White))
	p.Draw(draw.New(c))

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
