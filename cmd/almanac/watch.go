package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/almanac/internal/platform"
	adapter "github.com/aretw0/almanac/pkg/adapters/lifecycle"
	"github.com/spf13/cobra"
)

func newWatchCmd(f *flags) *cobra.Command {
	var (
		interval    time.Duration
		clearScreen bool
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Keep printing the current year, refreshing on config change or at midnight",
		Long: `Watch prints the current year with today marked, then prints it again
whenever the config file changes or the date rolls over. Stop with Ctrl-C.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := f.options(cmd)
			if err != nil {
				return err
			}
			opts = append(opts, platform.WithWatchInterval(interval))

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			events, err := platform.Watch(ctx, opts...)
			if err != nil {
				return err
			}

			src := adapter.NewSource(events)
			if err := src.Start(ctx); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for e := range src.Events() {
				event, ok := e.(platform.Event)
				if !ok {
					continue
				}
				if event.Err != nil {
					slog.Error("render failed", "reason", string(event.Reason), "error", event.Err)
					continue
				}
				if clearScreen {
					fmt.Fprint(out, "\033[H\033[2J")
				}
				fmt.Fprintln(out, event.Output)
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", time.Minute, "How often to check for a date change")
	cmd.Flags().BoolVar(&clearScreen, "clear", false, "Clear the screen before each render")
	return cmd
}
