// Package detector classifies the execution environment and derives the
// browser-automation settings that suit it.
//
// Classification is a single ordered pass over environment signals:
// termux, then replit, then github-actions, then local. The first match
// wins. The resulting Info is a plain value and is safe to share.
package detector

import (
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/atriuum/platform-detect/internal/platform"
)

// Name identifies a classified execution environment.
type Name string

const (
	Unknown       Name = "unknown"
	Termux        Name = "termux"
	Replit        Name = "replit"
	GitHubActions Name = "github-actions"
	Local         Name = "local"
)

// Backend names a browser-automation backend.
type Backend string

const (
	Selenium   Backend = "selenium"
	Playwright Backend = "playwright"
)

// Environment variables and markers consulted during detection.
const (
	EnvTermuxVersion = "TERMUX_VERSION"
	EnvReplit        = "REPLIT"
	EnvReplID        = "REPL_ID"
	EnvGitHubActions = "GITHUB_ACTIONS"

	// envPrefix is set by Termux to its userland root.
	envPrefix    = "PREFIX"
	termuxMarker = "com.termux"
)

// Info is the result of a classification.
type Info struct {
	Name                  Name    `json:"name" yaml:"name"`
	SupportsPlaywright    bool    `json:"supports_playwright" yaml:"supports_playwright"`
	SupportsHeadless      bool    `json:"supports_headless" yaml:"supports_headless"`
	IsCloud               bool    `json:"is_cloud" yaml:"is_cloud"`
	IsTermux              bool    `json:"is_termux" yaml:"is_termux"`
	RuntimeVersion        string  `json:"runtime_version" yaml:"runtime_version"`
	System                string  `json:"system" yaml:"system"`
	Machine               string  `json:"machine" yaml:"machine"`
	BrowserRecommendation Backend `json:"browser_recommendation,omitempty" yaml:"browser_recommendation,omitempty"`
}

// RequirementsFile returns the dependency manifest to install for this
// environment.
func (i Info) RequirementsFile() string {
	if i.IsCloud {
		return "requirements-cloud.txt"
	}
	return "requirements.txt"
}

// LookupEnvFunc has the signature of os.LookupEnv.
type LookupEnvFunc func(key string) (string, bool)

type options struct {
	lookupEnv    LookupEnvFunc
	installPaths []string
	host         platform.Type
	machine      string
	strictOS     bool
	logger       *slog.Logger
}

// Option configures Detect.
type Option func(*options)

// WithLookupEnv replaces os.LookupEnv as the source of environment variables.
func WithLookupEnv(fn LookupEnvFunc) Option {
	return func(o *options) {
		o.lookupEnv = fn
	}
}

// WithInstallPaths replaces the paths searched for the Termux install
// marker. By default these are the running executable and $PREFIX.
func WithInstallPaths(paths ...string) Option {
	return func(o *options) {
		o.installPaths = append([]string{}, paths...)
	}
}

// WithHost overrides the detected host OS family and machine.
func WithHost(host platform.Type, machine string) Option {
	return func(o *options) {
		o.host = host
		o.machine = machine
	}
}

// WithStrictOS makes the local fallback conditional on a recognized host
// OS family. Unrecognized hosts are then classified as Unknown.
func WithStrictOS(strict bool) Option {
	return func(o *options) {
		o.strictOS = strict
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// Detect classifies the current execution environment.
func Detect(opts ...Option) Info {
	o := options{
		lookupEnv: os.LookupEnv,
		host:      platform.Detect(),
		machine:   platform.Machine(),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.installPaths == nil {
		o.installPaths = defaultInstallPaths(o.lookupEnv)
	}
	logger := o.logger.With("component", "detector")

	info := Info{
		Name:           Unknown,
		RuntimeVersion: runtime.Version(),
		System:         o.host.System(),
		Machine:        o.machine,
	}

	switch {
	case o.isTermux():
		logger.Debug("termux signal found")
		info.Name = Termux
		info.IsTermux = true
		info.BrowserRecommendation = Selenium
	case o.isSet(EnvReplit) || o.isSet(EnvReplID):
		logger.Debug("replit signal found")
		info.Name = Replit
		info.SupportsPlaywright = true
		info.SupportsHeadless = true
		info.IsCloud = true
		info.BrowserRecommendation = Playwright
	case o.isSet(EnvGitHubActions):
		logger.Debug("github actions signal found")
		info.Name = GitHubActions
		info.SupportsPlaywright = true
		info.SupportsHeadless = true
		info.IsCloud = true
		info.BrowserRecommendation = Playwright
	case o.strictOS && !o.host.Recognized():
		logger.Warn("host OS not recognized", "system", info.System, "machine", info.Machine)
	default:
		info.Name = Local
		info.SupportsPlaywright = true
		info.SupportsHeadless = true
		info.BrowserRecommendation = Playwright
	}

	logger.Debug("platform classified", "name", info.Name, "cloud", info.IsCloud)
	return info
}

func (o *options) isSet(key string) bool {
	_, ok := o.lookupEnv(key)
	return ok
}

func (o *options) isTermux() bool {
	for _, p := range o.installPaths {
		if strings.Contains(p, termuxMarker) {
			return true
		}
	}
	return o.isSet(EnvTermuxVersion)
}

func defaultInstallPaths(lookupEnv LookupEnvFunc) []string {
	var paths []string
	if exe, err := os.Executable(); err == nil {
		paths = append(paths, exe)
	}
	if prefix, ok := lookupEnv(envPrefix); ok {
		paths = append(paths, prefix)
	}
	return paths
}
