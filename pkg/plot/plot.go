// 14 Oct 2026

// Package plot draws the GC content of a set of results as a bar
// chart and writes it as PNG. One bar per result, in order. Invalid
// results get a grey bar all the way up so they are easy to spot.
package plot

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/golang/freetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/andrew-torda/seqqc/pkg/qcerr"
	"github.com/andrew-torda/seqqc/pkg/result"
)

const (
	mLeft, mRight = 40, 10 // margins in pixels
	mTop, mBottom = 24, 20
	fontSize      = 11.
	dpi           = 72.
	minPlotPixels = 10
)

var (
	bgColour      = color.RGBA{0xff, 0xff, 0xff, 0xff}
	axisColour    = color.RGBA{0x20, 0x20, 0x20, 0xff}
	barColour     = color.RGBA{0x2b, 0x6c, 0xb0, 0xff}
	invalidColour = color.RGBA{0xd0, 0xd0, 0xd0, 0xff}
)

func fill(img *image.RGBA, r image.Rectangle, c color.Color) {
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// labels puts the title and y axis ticks on.
func labels(img *image.RGBA, title string, plot image.Rectangle) error {
	f, err := freetype.ParseFont(goregular.TTF)
	if err != nil {
		return err
	}
	c := freetype.NewContext()
	c.SetDPI(dpi)
	c.SetFont(f)
	c.SetFontSize(fontSize)
	c.SetClip(img.Bounds())
	c.SetDst(img)
	c.SetSrc(image.NewUniform(axisColour))
	c.SetHinting(font.HintingNone)
	if _, err := c.DrawString(title, freetype.Pt(mLeft, mTop-8)); err != nil {
		return err
	}
	type tick struct {
		s string
		y int
	}
	for _, tk := range []tick{{"1.0", plot.Min.Y}, {"0.5", (plot.Min.Y + plot.Max.Y) / 2}, {"0.0", plot.Max.Y}} {
		if _, err := c.DrawString(tk.s, freetype.Pt(6, tk.y+4)); err != nil {
			return err
		}
		fill(img, image.Rect(plot.Min.X-4, tk.y, plot.Min.X, tk.y+1), axisColour)
	}
	return nil
}

// GCBars writes a width x height PNG to w.
func GCBars(rs []result.Result, w io.Writer, width, height int) error {
	// image.Rect would swap the corners of a negative size, so check first.
	if width-mLeft-mRight < minPlotPixels || height-mTop-mBottom < minPlotPixels {
		return qcerr.New(qcerr.ErrInvalidInput, "plot", "", fmt.Errorf("%dx%d is too small", width, height))
	}
	plot := image.Rect(mLeft, mTop, width-mRight, height-mBottom)
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	fill(img, img.Bounds(), bgColour)

	n := len(rs)
	for i := range rs {
		x0 := plot.Min.X + i*plot.Dx()/n
		x1 := plot.Min.X + (i+1)*plot.Dx()/n
		if x1 == x0 {
			x1++
		}
		if !rs[i].Valid() {
			fill(img, image.Rect(x0, plot.Min.Y, x1, plot.Max.Y), invalidColour)
			continue
		}
		top := plot.Max.Y - int(rs[i].Metrics.GC*float64(plot.Dy())+0.5)
		fill(img, image.Rect(x0, top, x1, plot.Max.Y), barColour)
	}
	fill(img, image.Rect(plot.Min.X-1, plot.Min.Y, plot.Min.X, plot.Max.Y+1), axisColour)
	fill(img, image.Rect(plot.Min.X-1, plot.Max.Y, plot.Max.X, plot.Max.Y+1), axisColour)

	nValid, nInvalid := result.Tally(rs)
	title := fmt.Sprintf("GC content, %d records (%d invalid)", nValid+nInvalid, nInvalid)
	if err := labels(img, title, plot); err != nil {
		return qcerr.New(qcerr.ErrIO, "plot labels", "", err)
	}
	if err := png.Encode(w, img); err != nil {
		return qcerr.New(qcerr.ErrIO, "plot", "", err)
	}
	return nil
}
