package main

import (
	"fmt"
	"os"

	mcpadapter "github.com/Kornerupin/blur-text/pkg/adapters/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server on stdio",
	Long:  `Exposes the decorate_html tool over the Model Context Protocol so agent clients can decorate HTML fragments.`,
	Run: func(cmd *cobra.Command, args []string) {
		srv := mcpadapter.NewServer(newLogger(cmd))
		if err := srv.ServeStdio(); err != nil {
			fmt.Fprintf(os.Stderr, "MCP server error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
