package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/almanac"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of almanac",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "almanac version %s\n", strings.TrimSpace(almanac.Version))
		},
	}
}
