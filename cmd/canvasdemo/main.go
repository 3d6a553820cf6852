// Command canvasdemo renders a small scene of lines, conics, curves and a
// cube into a PNG file.
//
// It is configured through environment variables; see package
// honnef.co/go/canvas/internal/config.
package main

import (
	"fmt"
	"image/png"
	"log/slog"
	"os"

	"honnef.co/go/canvas"
	"honnef.co/go/canvas/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	canvas.SetLogger(logger)

	if err := run(cfg); err != nil {
		slog.Error("render scene", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	sc := buildScene(cfg)

	polys, err := sc.DiscoverPolygons()
	if err != nil {
		return err
	}
	for _, p := range polys {
		seed := p.BoundingBox().Center()
		p.Fill(0, &seed)
		sc.Add(p)
	}
	bounds := sc.Bounds()
	slog.Info("built scene", "primitives", sc.Len(), "polygons", len(polys),
		"width", bounds.Width(), "height", bounds.Height())
	if bounds.MinX() < 0 || bounds.MinY() < 0 || bounds.MaxX() > float64(cfg.Width) || bounds.MaxY() > float64(cfg.Height) {
		slog.Warn("scene extends past the canvas", "bounds", bounds.Image())
	}

	surface := canvas.NewImageSurface(cfg.Width, cfg.Height)
	if err := sc.Render(surface); err != nil {
		return err
	}

	f, err := os.Create(cfg.Output)
	if err != nil {
		return err
	}
	if err := png.Encode(f, surface.Scale(cfg.Zoom)); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", cfg.Output, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	slog.Info("wrote image", "path", cfg.Output, "zoom", cfg.Zoom)
	return nil
}

func buildScene(cfg *config.Config) *canvas.Scene {
	w, h := float64(cfg.Width), float64(cfg.Height)
	sc := canvas.NewScene()

	// A triangle made of three strokes, for polygon discovery.
	a, b, c := canvas.Pt(10, h-10), canvas.Pt(w/3, h-10), canvas.Pt(w/6, h/2)
	for _, seg := range []canvas.Segment{canvas.Seg(a, b), canvas.Seg(b, c), canvas.Seg(c, a)} {
		sc.Add(canvas.Stroke{Segment: seg, Algorithm: cfg.Algorithm})
	}

	sc.Add(canvas.EllipseShape{Center: canvas.Pt(w/2, h/4), A: w / 8, B: h / 8})
	sc.Add(canvas.ParabolaShape{
		Vertex:  canvas.Pt(w*3/4, h/8),
		P:       4,
		Options: canvas.ConicOptions{XLimit: w / 8, YLimit: h / 8},
	})

	bez, err := canvas.NewBezierCurve([]canvas.Point{
		canvas.Pt(w/2, h/2), canvas.Pt(w*5/8, h/3), canvas.Pt(w*3/4, h*2/3), canvas.Pt(w*7/8, h/2),
	})
	if err != nil {
		panic(err)
	}
	sc.Add(bez)
	herm := canvas.NewHermiteCurve(canvas.Pt(w/2, h*3/4), canvas.Pt(w*3/4, h*3/4), canvas.Vec(40, -60, 0), canvas.Vec(40, 60, 0))
	sc.Add(herm)

	// Drag the Hermite curve next to the Bézier curve, then nudge it once
	// more so that it snaps onto the Bézier curve's start.
	mouse := bez.Endpoints()[0].Move(canvas.Vec(2, 2, 0), 1)
	sc.DragCurve(herm, 0, mouse, cfg.SnapOptions())
	if sc.DragCurve(herm, 0, mouse, cfg.SnapOptions()) {
		slog.Debug("joined curves", "at", bez.Endpoints()[0])
	}

	cube := canvas.NewCube(min(w, h)/4, 30, 30, 0)
	cube.Origin = canvas.Pt(w*7/8, h*7/8)
	sc.Add(cube)
	return sc
}
