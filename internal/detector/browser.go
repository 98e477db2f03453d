package detector

import (
	"time"

	"github.com/playwright-community/playwright-go"
)

// BrowserConfig describes how a browser-automation caller should drive
// its backend. Timeout is in milliseconds.
type BrowserConfig struct {
	BrowserType Backend `json:"browser_type" yaml:"browser_type"`
	Headless    bool    `json:"headless" yaml:"headless"`
	Timeout     int     `json:"timeout" yaml:"timeout"`
	Retries     int     `json:"retries" yaml:"retries"`
}

var (
	playwrightConfig = BrowserConfig{
		BrowserType: Playwright,
		Headless:    true,
		Timeout:     30000,
		Retries:     3,
	}
	// Selenium runs headed and slower on Termux.
	seleniumConfig = BrowserConfig{
		BrowserType: Selenium,
		Headless:    false,
		Timeout:     45000,
		Retries:     5,
	}
)

// BrowserConfig returns the browser settings for this environment.
func (i Info) BrowserConfig() BrowserConfig {
	if i.SupportsPlaywright {
		return playwrightConfig
	}
	return seleniumConfig
}

// TimeoutDuration returns Timeout as a time.Duration.
func (c BrowserConfig) TimeoutDuration() time.Duration {
	return time.Duration(c.Timeout) * time.Millisecond
}

// PlaywrightLaunchOptions converts c into launch options for
// playwright.BrowserType.Launch. Only Headless and Timeout carry over.
func (c BrowserConfig) PlaywrightLaunchOptions() playwright.BrowserTypeLaunchOptions {
	return playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(c.Headless),
		Timeout:  playwright.Float(float64(c.Timeout)),
	}
}
