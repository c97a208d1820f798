package main

import (
	"log/slog"
	"strings"

	"github.com/aretw0/almanac/internal/platform"
	"github.com/aretw0/almanac/pkg/adapters/fs"
	"github.com/aretw0/almanac/pkg/export"
	"github.com/spf13/cobra"
)

func newExportCmd(f *flags) *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export [year]",
		Short: "Export the calendar grid as JSON, YAML, CSV or text",
		Long: `Export the calendar grid in a machine-readable format.
The format defaults to the config file's "format" key, then to text.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := f.options(cmd)
			if err != nil {
				return err
			}

			year, err := yearArg(args, opts)
			if err != nil {
				return err
			}

			resolved, err := platform.Resolve(year, opts...)
			if err != nil {
				return err
			}
			if format == "" {
				format = resolved.Format
			}

			var exporter export.Exporter
			if format == "" || strings.EqualFold(format, "text") {
				exporter = export.NewTextExporter(resolved.Layout)
			} else if exporter, err = export.Lookup(format); err != nil {
				return err
			}

			cal, err := platform.New(year, opts...)
			if err != nil {
				return err
			}

			data, err := exporter.Export(cal.Grid())
			if err != nil {
				return err
			}
			if output != "" {
				if err := fs.WriteFileAtomic(output, data, 0644); err != nil {
					return err
				}
				slog.Info("calendar exported", "year", year, "path", output)
				return nil
			}

			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to this file instead of stdout")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: "+strings.Join(export.Formats(), ", "))
	return cmd
}
