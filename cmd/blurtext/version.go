package main

import (
	"fmt"
	"strings"

	blurtext "github.com/Kornerupin/blur-text"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of blurtext",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("blurtext version %s\n", strings.TrimSpace(blurtext.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
