package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// Rasterizer turns a standalone HTML document into PDF bytes
type Rasterizer interface {
	Rasterize(ctx context.Context, html string, opts Options) ([]byte, error)
}

// ChromeRasterizer prints HTML to PDF through headless Chrome.
// Requires Chrome/Chromium to be installed on the system.
type ChromeRasterizer struct{}

// NewChromeRasterizer returns a rasterizer backed by chromedp
func NewChromeRasterizer() *ChromeRasterizer {
	return &ChromeRasterizer{}
}

// Rasterize writes the document to a temporary directory, loads it in a
// headless browser at the configured device scale factor and prints it on A4
// portrait with the configured margins. Chrome paginates long documents.
func (r *ChromeRasterizer) Rasterize(ctx context.Context, html string, opts Options) ([]byte, error) {
	opts = opts.withDefaults()

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if opts.ChromePath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(opts.ChromePath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, opts.Timeout)
	defer cancel()

	tmpDir, err := os.MkdirTemp("", "resume-export-")
	if err != nil {
		return nil, fmt.Errorf("failed to create staging directory: %w", err)
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0600); err != nil {
		return nil, fmt.Errorf("failed to write staging document: %w", err)
	}

	margin := opts.MarginInches()
	var pdf []byte
	err = chromedp.Run(browserCtx,
		emulation.SetDeviceMetricsOverride(int64(opts.PageWidthPx), 0, opts.Scale, false),
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithLandscape(false).
				WithPaperWidth(PaperWidthInches).
				WithPaperHeight(PaperHeightInches).
				WithMarginTop(margin).
				WithMarginBottom(margin).
				WithMarginLeft(margin).
				WithMarginRight(margin).
				WithScale(opts.FitScale()).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("browser rendering failed: %w", err)
	}
	return pdf, nil
}
