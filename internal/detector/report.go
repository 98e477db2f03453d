package detector

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// UnknownWarning is printed when no platform could be classified.
const UnknownWarning = "⚠️  Warning: Unknown platform detected"

// Report is the machine-readable form of a classification.
type Report struct {
	Platform         Info          `json:"platform" yaml:"platform"`
	RequirementsFile string        `json:"requirements_file" yaml:"requirements_file"`
	BrowserConfig    BrowserConfig `json:"browser_config" yaml:"browser_config"`
}

// NewReport bundles info with its derived settings.
func NewReport(info Info) Report {
	return Report{
		Platform:         info,
		RequirementsFile: info.RequirementsFile(),
		BrowserConfig:    info.BrowserConfig(),
	}
}

// WriteText writes the human-readable detection summary. Styling is
// dropped when w is not a terminal.
func WriteText(w io.Writer, info Info) error {
	r := lipgloss.NewRenderer(w)
	header := r.NewStyle().Foreground(lipgloss.Color("#3B82F6")).Bold(true)
	label := r.NewStyle().Foreground(lipgloss.Color("#9CA3AF"))

	recommendation := string(info.BrowserRecommendation)
	if recommendation == "" {
		recommendation = "unknown"
	}
	bc := info.BrowserConfig()

	lines := []struct {
		label string
		value string
	}{
		{"Platform:", string(info.Name)},
		{"Runtime:", info.RuntimeVersion},
		{"System:", info.System + " " + info.Machine},
		{"Supports Playwright:", fmt.Sprint(info.SupportsPlaywright)},
		{"Supports Headless:", fmt.Sprint(info.SupportsHeadless)},
		{"Recommended Browser:", recommendation},
		{"Requirements File:", info.RequirementsFile()},
		{"Browser Config:", fmt.Sprintf("%s (headless: %t, timeout: %dms, retries: %d)",
			bc.BrowserType, bc.Headless, bc.Timeout, bc.Retries)},
	}

	if _, err := fmt.Fprintln(w, header.Render("🔍 Platform Detection Results:")); err != nil {
		return err
	}
	for _, l := range lines {
		if _, err := fmt.Fprintf(w, "   %s %s\n", label.Render(l.label), l.value); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON writes the report as indented JSON.
func WriteJSON(w io.Writer, info Info) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewReport(info)); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

// WriteYAML writes the report as YAML.
func WriteYAML(w io.Writer, info Info) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewReport(info)); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return enc.Close()
}
