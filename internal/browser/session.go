package browser

import (
	"fmt"
	"path/filepath"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Session owns one headless browser instance for dashboard checks.
type Session struct {
	launcher *launcher.Launcher
	browser  *rod.Browser
}

// NewHeadlessSession launches a headless browser. Fails when no
// compatible browser binary can be launched on the host.
func NewHeadlessSession() (*Session, error) {
	l := launcher.New().Headless(true)

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launch browser: %w", err)
	}

	b := rod.New().ControlURL(controlURL)
	if err := b.Connect(); err != nil {
		l.Cleanup()
		return nil, fmt.Errorf("connect browser: %w", err)
	}

	return &Session{launcher: l, browser: b}, nil
}

// OpenDashboard loads a dashboard HTML file from disk and waits for the
// page to finish loading.
func (s *Session) OpenDashboard(path string) (*DashboardPage, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve dashboard path: %w", err)
	}

	page, err := s.browser.Page(proto.TargetCreateTarget{URL: "file://" + absPath})
	if err != nil {
		return nil, fmt.Errorf("open dashboard page: %w", err)
	}

	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("wait for dashboard load: %w", err)
	}

	return NewDashboardPage(page), nil
}

func (s *Session) Close() error {
	err := s.browser.Close()
	s.launcher.Cleanup()

	return err
}
