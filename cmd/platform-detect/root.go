package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/atriuum/platform-detect/internal/config"
	"github.com/atriuum/platform-detect/internal/detector"
)

var errUnknownPlatform = errors.New("unknown platform")

// newRootCmd builds the platform-detect command. extra options are passed
// through to detector.Detect.
func newRootCmd(stdout, stderr io.Writer, extra ...detector.Option) *cobra.Command {
	cfg := config.Default()

	cmd := &cobra.Command{
		Use:   "platform-detect",
		Short: "Detect the execution platform and its browser settings",
		Long: `Detect the execution platform and report the browser-automation
backend, timeouts and dependency manifest that suit it.

Platforms, in order of precedence:
  termux          TERMUX_VERSION set or installed under com.termux
  replit          REPLIT or REPL_ID set
  github-actions  GITHUB_ACTIONS set
  local           anything else

Exit codes:
  0  platform classified
  1  unknown platform (only with --strict on an unrecognized OS)
  2  invalid flags or env file

Examples:
  platform-detect
  platform-detect --format json
  platform-detect --env-file ci.env`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDetect(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, extra)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.Flags().StringVarP(&cfg.Format, "format", "f", cfg.Format, "Output format: text, json or yaml")
	cmd.Flags().StringVar(&cfg.EnvFile, "env-file", "", "Load environment variables from a .env file before detecting")
	cmd.Flags().BoolVar(&cfg.Strict, "strict", false, "Report unrecognized operating systems as unknown")
	cmd.Flags().BoolVar(&cfg.Debug, "debug", false, "Enable debug logging")

	return cmd
}

func runDetect(stdout, stderr io.Writer, cfg config.Config, extra []detector.Option) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := cfg.LoadEnvFile(); err != nil {
		return err
	}

	logger := cfg.Logger(stderr)
	opts := append([]detector.Option{
		detector.WithStrictOS(cfg.Strict),
		detector.WithLogger(logger),
	}, extra...)
	info := detector.Detect(opts...)

	var err error
	switch cfg.Format {
	case config.FormatJSON:
		err = detector.WriteJSON(stdout, info)
	case config.FormatYAML:
		err = detector.WriteYAML(stdout, info)
	default:
		err = detector.WriteText(stdout, info)
	}
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if info.Name == detector.Unknown {
		if cfg.Format == config.FormatText {
			fmt.Fprintln(stdout, detector.UnknownWarning)
		} else {
			fmt.Fprintln(stderr, detector.UnknownWarning)
		}
		return errUnknownPlatform
	}
	return nil
}
