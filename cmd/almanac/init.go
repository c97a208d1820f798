package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aretw0/almanac/internal/platform"
	"github.com/spf13/cobra"
)

// newInitCmd represents the init command
func newInitCmd() *cobra.Command {
	var (
		force  bool
		layout string
		tz     string
		format string
	)

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Write a starter .almanac.yaml",
		Long:  `Write a config file with the given defaults to dir (default: current directory).`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			path := filepath.Join(dir, platform.ConfigFileNames[0])

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}

			mark := true
			cfg := platform.Config{
				Layout:    layout,
				MarkToday: &mark,
				Timezone:  tz,
				Format:    format,
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := cfg.Save(path); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Wrote", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config")
	cmd.Flags().StringVar(&layout, "layout", "horizontal", "Default layout (horizontal|vertical)")
	cmd.Flags().StringVar(&tz, "timezone", "", "Time zone for the current date")
	cmd.Flags().StringVar(&format, "format", "", "Default export format")
	return cmd
}
