package main

import (
	"fmt"
	"os"

	blurtext "github.com/Kornerupin/blur-text"
	"github.com/Kornerupin/blur-text/internal/cli"
	"github.com/Kornerupin/blur-text/pkg/charset"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check category coverage of the reference alphabet",
	Long: `Merges the configuration (defaults plus --config overrides) and reports
every reference-alphabet character that no category covers. Uncovered
characters are not an error: they fall back to the default category at
decoration time.`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")

		opts, err := cli.LoadConfigFile(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		cfg := blurtext.ResolveConfig(opts...)
		color := cli.StdoutIsTerminal()

		fmt.Printf("Categories (%d, in classification order):\n", len(cfg.Categories))
		for _, c := range cfg.Categories {
			fmt.Printf("  %s  (%d characters)\n", cli.Colorize(c.Name, "#818cf8", color), len([]rune(c.Set)))
		}

		gaps := cfg.Categories.Coverage(charset.Reference)
		if len(gaps) == 0 {
			fmt.Println(cli.Colorize("Reference alphabet fully covered.", "#34d399", color))
			return
		}

		fmt.Printf("%s %d characters fall back to %q:\n",
			cli.Colorize("Coverage gaps:", "#fb7185", color), len(gaps), charset.Fallback)
		for _, r := range gaps {
			fmt.Printf("  %q (U+%04X)\n", r, r)
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
