package fetch

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// HeadlessFetcher renders a page in a headless browser and returns the
// resulting HTML. Used as a fallback for result pages that only populate
// via JavaScript.
type HeadlessFetcher struct {
	launcherURL string // optional remote launcher URL
}

func NewHeadlessFetcher() *HeadlessFetcher {
	return &HeadlessFetcher{}
}

func (h *HeadlessFetcher) Fetch(ctx context.Context, pageURL string) (string, error) {
	page, cleanup, err := h.openPage(ctx, pageURL)
	if err != nil {
		return "", err
	}
	defer cleanup()

	timedPage := page.Timeout(15 * time.Second)
	if err := timedPage.WaitStable(time.Second); err == nil {
		_ = timedPage.WaitDOMStable(2*time.Second, 0.1)
	}

	htmlContent, err := page.HTML()
	if err != nil {
		return "", fmt.Errorf("get page HTML: %w", err)
	}
	return htmlContent, nil
}

func (h *HeadlessFetcher) openPage(ctx context.Context, pageURL string) (*rod.Page, func(), error) {
	var l *launcher.Launcher
	if h.launcherURL != "" {
		l = launcher.MustNewManaged(h.launcherURL)
	} else {
		l = launcher.New().Headless(true).Logger(io.Discard)
	}
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}
	controlURL, err := l.Launch()
	if err != nil {
		return nil, nil, fmt.Errorf("launch browser: %w", err)
	}

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, nil, fmt.Errorf("connect browser: %w", err)
	}

	page, err := browser.Page(proto.TargetCreateTarget{URL: pageURL})
	if err != nil {
		browser.Close()
		return nil, nil, fmt.Errorf("open page: %w", err)
	}

	err = page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:  1920,
		Height: 1080,
	})
	if err != nil {
		browser.Close()
		return nil, nil, fmt.Errorf("set viewport: %w", err)
	}

	cleanup := func() {
		page.Close()
		browser.Close()
		l.Cleanup()
	}

	return page, cleanup, nil
}
