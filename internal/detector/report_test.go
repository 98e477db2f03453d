package detector

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleInfo() Info {
	return Info{
		Name:                  GitHubActions,
		SupportsPlaywright:    true,
		SupportsHeadless:      true,
		IsCloud:               true,
		RuntimeVersion:        "go1.25.0",
		System:                "Linux",
		Machine:               "x86_64",
		BrowserRecommendation: Playwright,
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, sampleInfo()))

	want := "🔍 Platform Detection Results:\n" +
		"   Platform: github-actions\n" +
		"   Runtime: go1.25.0\n" +
		"   System: Linux x86_64\n" +
		"   Supports Playwright: true\n" +
		"   Supports Headless: true\n" +
		"   Recommended Browser: playwright\n" +
		"   Requirements File: requirements-cloud.txt\n" +
		"   Browser Config: playwright (headless: true, timeout: 30000ms, retries: 3)\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteTextUnknown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, Info{Name: Unknown, System: "Plan9", Machine: "386"}))

	out := buf.String()
	assert.Contains(t, out, "Platform: unknown\n")
	assert.Contains(t, out, "Recommended Browser: unknown\n")
	assert.Contains(t, out, "Browser Config: selenium (headless: false, timeout: 45000ms, retries: 5)\n")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleInfo()))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "requirements-cloud.txt", got["requirements_file"])

	p := got["platform"].(map[string]any)
	assert.Equal(t, "github-actions", p["name"])
	assert.Equal(t, true, p["is_cloud"])
	assert.Equal(t, "playwright", p["browser_recommendation"])

	bc := got["browser_config"].(map[string]any)
	assert.Equal(t, "playwright", bc["browser_type"])
	assert.Equal(t, float64(30000), bc["timeout"])
}

func TestWriteJSONOmitsEmptyRecommendation(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, Info{Name: Unknown}))
	assert.NotContains(t, buf.String(), "browser_recommendation")
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, sampleInfo()))

	var got Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, NewReport(sampleInfo()), got)
}
