package export

import (
	"time"

	"github.com/jonathan/resume-builder/internal/photo"
)

// A4 portrait in inches
const (
	PaperWidthInches  = 8.27
	PaperHeightInches = 11.69
)

// Options controls how the copy is styled and rasterized
type Options struct {
	PageWidthPx  int           // width forced on the copy; A4 at 96 dpi
	PaddingPx    int           // padding forced on the copy
	MarginMM     float64       // page margin on every side
	Scale        float64       // device scale factor used when rasterizing
	JPEGQuality  int           // quality of re-encoded photos
	PhotoMaxSide int           // photos are downscaled to this longest side
	Timeout      time.Duration // upper bound on one rasterization
	ChromePath   string        // browser binary; empty uses chromedp's lookup
}

// DefaultOptions returns the print settings of the builder
func DefaultOptions() Options {
	return Options{
		PageWidthPx:  794,
		PaddingPx:    20,
		MarginMM:     10,
		Scale:        2,
		JPEGQuality:  photo.DefaultJPEGQuality,
		PhotoMaxSide: photo.DefaultMaxSide,
		Timeout:      60 * time.Second,
	}
}

// withDefaults fills zero fields from DefaultOptions
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.PageWidthPx <= 0 {
		o.PageWidthPx = d.PageWidthPx
	}
	if o.PaddingPx <= 0 {
		o.PaddingPx = d.PaddingPx
	}
	if o.MarginMM <= 0 {
		o.MarginMM = d.MarginMM
	}
	if o.Scale <= 0 {
		o.Scale = d.Scale
	}
	if o.JPEGQuality <= 0 || o.JPEGQuality > 100 {
		o.JPEGQuality = d.JPEGQuality
	}
	if o.PhotoMaxSide <= 0 {
		o.PhotoMaxSide = d.PhotoMaxSide
	}
	if o.Timeout <= 0 {
		o.Timeout = d.Timeout
	}
	return o
}

// MarginInches converts the page margin for the PDF printer
func (o Options) MarginInches() float64 {
	return o.MarginMM / 25.4
}

// FitScale is the print scale that fits the copy's width inside the page
// margins. Chrome accepts scales between 0.1 and 2.
func (o Options) FitScale() float64 {
	o = o.withDefaults()
	printable := (PaperWidthInches - 2*o.MarginInches()) * 96
	scale := printable / float64(o.PageWidthPx)
	return min(max(scale, 0.1), 2)
}
