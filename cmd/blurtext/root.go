package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Kornerupin/blur-text/internal/logging"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "blurtext",
	Short: "Blurtext wraps document text into per-letter containers for blur styling",
	Long: `Blurtext splits the text of selected elements into word and letter
containers, tagging every letter with a category derived from its glyph's
vertical ink profile. Pair the generated classes with a stylesheet to get a
blur or mask effect aligned to each character.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML category configuration file")
}

// newLogger builds the command logger from the --debug flag.
func newLogger(cmd *cobra.Command) *slog.Logger {
	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.New(slog.LevelWarn)
}
