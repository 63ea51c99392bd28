package main

import (
	"fmt"
	"os"

	blurtext "github.com/Kornerupin/blur-text"
	"github.com/Kornerupin/blur-text/internal/cli"
	htmlhost "github.com/Kornerupin/blur-text/pkg/adapters/html"
	"github.com/spf13/cobra"
)

var decorateCmd = &cobra.Command{
	Use:   "decorate [file]",
	Short: "Decorate an HTML file or stdin",
	Long: `Reads an HTML document, wraps the text of all elements matching the
selector into word and letter containers, and writes the decorated document
to stdout (or --output).`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		selector, _ := cmd.Flags().GetString("selector")
		output, _ := cmd.Flags().GetString("output")
		wordClass, _ := cmd.Flags().GetString("word-class")
		letterClass, _ := cmd.Flags().GetString("letter-class")
		configPath, _ := cmd.Flags().GetString("config")
		logger := newLogger(cmd)

		opts, err := cli.LoadConfigFile(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		opts = append(opts,
			blurtext.WithWordClass(wordClass),
			blurtext.WithLetterClass(letterClass),
			blurtext.WithLogger(logger),
		)

		var path string
		if len(args) > 0 {
			path = args[0]
		}
		in, err := cli.OpenInput(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer in.Close()

		doc, err := htmlhost.ParseDocument(in)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: parsing input: %v\n", err)
			os.Exit(1)
		}
		host := htmlhost.New(doc)

		if err := blurtext.Decorate(host, selector, opts...); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		out, err := cli.OpenOutput(output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer out.Close()

		if err := host.Render(out); err != nil {
			fmt.Fprintf(os.Stderr, "Error: rendering output: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(decorateCmd)
	decorateCmd.Flags().StringP("selector", "s", "body", "CSS selector of the elements to decorate")
	decorateCmd.Flags().StringP("output", "o", "", "Output file (default stdout)")
	decorateCmd.Flags().String("word-class", "", "Class for word containers (default blur-word)")
	decorateCmd.Flags().String("letter-class", "", "Class for letter containers (default blur-letter)")
}
