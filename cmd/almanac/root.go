package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/aretw0/almanac/internal/platform"
	"github.com/aretw0/almanac/pkg/core"
	"github.com/spf13/cobra"
)

// flags shared by the render, export and watch commands.
type flags struct {
	verbose    bool
	configPath string
	noConfig   bool
	vertical   bool
	today      string
	markToday  bool
	timezone   string
}

// newRootCmd represents the base command: render a year.
func newRootCmd() *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:   "almanac [year]",
		Short: "Print a full-year calendar as fixed-width text",
		Long: `Almanac prints every month of a year on one screen.
By default each month is a row; --vertical turns months into columns.
A single day can be marked with --today MM-DD or --mark-today.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if f.verbose {
				level = slog.LevelDebug
			}

			opts := &slog.HandlerOptions{
				Level: level,
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), opts))
			slog.SetDefault(logger)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := f.options(cmd)
			if err != nil {
				return err
			}

			year, err := yearArg(args, opts)
			if err != nil {
				return err
			}

			out, err := platform.Generate(year, opts...)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&f.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&f.configPath, "config", "", "Config file (default: nearest .almanac.yaml)")
	cmd.PersistentFlags().BoolVar(&f.noConfig, "no-config", false, "Ignore config files")
	cmd.PersistentFlags().BoolVarP(&f.vertical, "vertical", "V", false, "One column per month")
	cmd.PersistentFlags().StringVar(&f.today, "today", "", "Mark this date (MM-DD)")
	cmd.PersistentFlags().BoolVar(&f.markToday, "mark-today", false, "Mark the current date")
	cmd.PersistentFlags().StringVar(&f.timezone, "tz", "", "Time zone used for the current date (e.g. Europe/Berlin)")

	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newExportCmd(f))
	cmd.AddCommand(newWatchCmd(f))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute builds the command tree and runs it.
// This is called by main.main().
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fatal("Error", err)
	}
}

// options turns the flags into platform options. Flags only override the
// config file when they were given explicitly.
func (f *flags) options(cmd *cobra.Command) ([]platform.Option, error) {
	opts := []platform.Option{platform.WithLogger(slog.Default())}

	path, err := f.resolveConfig()
	if err != nil {
		return nil, err
	}
	if path != "" {
		slog.Debug("using config", "path", path)
		opts = append(opts, platform.WithConfigPath(path))
	}

	pf := cmd.Flags()
	if pf.Changed("vertical") {
		layout := core.Horizontal
		if f.vertical {
			layout = core.Vertical
		}
		opts = append(opts, platform.WithLayout(layout))
	}

	if f.today != "" {
		d, err := core.ParseDate(f.today)
		if err != nil {
			return nil, err
		}
		opts = append(opts, platform.WithToday(d.Month, d.Day))
	}

	if pf.Changed("mark-today") {
		opts = append(opts, platform.WithMarkToday(f.markToday))
	}

	if f.timezone != "" {
		loc, err := time.LoadLocation(f.timezone)
		if err != nil {
			return nil, fmt.Errorf("time zone %q: %w", f.timezone, err)
		}
		opts = append(opts, platform.WithLocation(loc))
	}

	return opts, nil
}

func (f *flags) resolveConfig() (string, error) {
	if f.noConfig {
		return "", nil
	}
	if f.configPath != "" {
		return f.configPath, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	path, err := platform.FindConfig(cwd)
	if err != nil {
		// No config is fine.
		return "", nil
	}
	return path, nil
}

func yearArg(args []string, opts []platform.Option) (int, error) {
	if len(args) == 0 {
		return platform.CurrentYear(opts...)
	}
	year, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid year %q", args[0])
	}
	return year, nil
}
