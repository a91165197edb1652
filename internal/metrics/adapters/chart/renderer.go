package chart

import (
	"bytes"
	"fmt"
	"image/color"
	"math"
	"os"
	"strconv"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"

	"ai-usage-tracker/internal/metrics/core/domain"
	"ai-usage-tracker/internal/metrics/core/ports"
)

const (
	marginLeft   = 64.0
	marginRight  = 24.0
	marginTop    = 48.0
	marginBottom = 120.0

	yTicks        = 5
	maxLabelRunes = 18
	maxLineLabels = 20
)

var (
	background = color.White
	axisColor  = color.RGBA{R: 60, G: 60, B: 60, A: 255}
	gridColor  = color.RGBA{R: 225, G: 225, B: 225, A: 255}
	barColor   = color.RGBA{R: 31, G: 119, B: 180, A: 255}
)

// Renderer draws bar and line charts to PNG.
type Renderer struct {
	width  int
	height int
	face   font.Face // nil uses gg's built-in face
}

var _ ports.ChartRendererPort = (*Renderer)(nil)

func NewRenderer(width, height int) *Renderer {
	return &Renderer{width: width, height: height}
}

// WithFontFile switches labels to the TrueType font at path.
func (r *Renderer) WithFontFile(path string, size float64) (*Renderer, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file: %w", err)
	}
	parsed, err := truetype.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TTF: %w", err)
	}
	out := *r
	out.face = truetype.NewFace(parsed, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	return &out, nil
}

func (r *Renderer) BarChart(title string, s domain.Series) ([]byte, error) {
	dc, plot := r.canvas(title, s)

	n := len(s)
	if n > 0 {
		slot := plot.w / float64(n)
		barW := slot * 0.7
		for i, p := range s {
			x := plot.x + slot*float64(i) + (slot-barW)/2
			h := plot.scale(p.Value)
			dc.SetColor(barColor)
			dc.DrawRectangle(x, plot.bottom()-h, barW, h)
			dc.Fill()

			r.drawXLabel(dc, p.Label, x+barW/2, plot.bottom()+8)
		}
	}

	return encode(dc)
}

func (r *Renderer) LineChart(title string, s domain.Series) ([]byte, error) {
	dc, plot := r.canvas(title, s)

	n := len(s)
	step := 0.0
	if n > 1 {
		step = plot.w / float64(n-1)
	}
	labelEvery := int(math.Ceil(float64(n) / maxLineLabels))
	if labelEvery < 1 {
		labelEvery = 1
	}

	point := func(i int) (float64, float64) {
		x := plot.x + step*float64(i)
		if n == 1 {
			x = plot.x + plot.w/2
		}
		return x, plot.bottom() - plot.scale(s[i].Value)
	}

	dc.SetColor(barColor)
	dc.SetLineWidth(2)
	for i := range s {
		x, y := point(i)
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.Stroke()

	for i, p := range s {
		x, y := point(i)
		dc.SetColor(barColor)
		dc.DrawCircle(x, y, 4)
		dc.Fill()

		if i%labelEvery == 0 {
			dc.SetColor(axisColor)
			dc.DrawStringAnchored(p.Label, x, plot.bottom()+14, 0.5, 0.5)
		}
	}

	return encode(dc)
}

type plotArea struct {
	x, y, w, h float64
	max        float64
}

func (p plotArea) bottom() float64 { return p.y + p.h }

func (p plotArea) scale(v float64) float64 {
	if v <= 0 {
		return 0
	}
	return v / p.max * p.h
}

// canvas draws background, title, grid and y axis, and returns the plot area.
func (r *Renderer) canvas(title string, s domain.Series) (*gg.Context, plotArea) {
	dc := gg.NewContext(r.width, r.height)
	if r.face != nil {
		dc.SetFontFace(r.face)
	}

	dc.SetColor(background)
	dc.Clear()

	plot := plotArea{
		x:   marginLeft,
		y:   marginTop,
		w:   float64(r.width) - marginLeft - marginRight,
		h:   float64(r.height) - marginTop - marginBottom,
		max: niceMax(s),
	}

	dc.SetColor(axisColor)
	dc.DrawStringAnchored(title, float64(r.width)/2, marginTop/2, 0.5, 0.5)

	dc.SetLineWidth(1)
	for i := 0; i <= yTicks; i++ {
		v := plot.max * float64(i) / yTicks
		y := plot.bottom() - plot.scale(v)

		dc.SetColor(gridColor)
		dc.DrawLine(plot.x, y, plot.x+plot.w, y)
		dc.Stroke()

		dc.SetColor(axisColor)
		dc.DrawStringAnchored(strconv.FormatFloat(v, 'g', 4, 64), plot.x-8, y, 1, 0.5)
	}

	dc.SetColor(axisColor)
	dc.DrawLine(plot.x, plot.y, plot.x, plot.bottom())
	dc.DrawLine(plot.x, plot.bottom(), plot.x+plot.w, plot.bottom())
	dc.Stroke()

	return dc, plot
}

// drawXLabel writes label rotated 45° so long task names fit.
func (r *Renderer) drawXLabel(dc *gg.Context, label string, x, y float64) {
	dc.Push()
	dc.SetColor(axisColor)
	dc.RotateAbout(gg.Radians(-45), x, y)
	dc.DrawStringAnchored(truncate(label), x, y, 1, 0.5)
	dc.Pop()
}

func niceMax(s domain.Series) float64 {
	m := 0.0
	for _, p := range s {
		if p.Value > m {
			m = p.Value
		}
	}
	if m <= 0 {
		return 1
	}
	mag := math.Pow(10, math.Floor(math.Log10(m)))
	for _, f := range []float64{1, 2, 2.5, 5, 10} {
		if f*mag >= m {
			return f * mag
		}
	}
	return 10 * mag
}

func truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= maxLabelRunes {
		return s
	}
	return string(runes[:maxLabelRunes-1]) + "…"
}

func encode(dc *gg.Context) ([]byte, error) {
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}
