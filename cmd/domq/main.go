package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/domq/domq/dom"
)

var verbose bool

func main() {
	rootCmd := &cobra.Command{
		Use:   "domq",
		Short: "Query and serialize HTML documents",
		Long: `domq resolves CSS selectors against an HTML document and prints the
matching elements, or serializes a form's fields the way a browser
submission would.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		selectCmd(),
		serializeCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

// loadDocument reads the HTML input from a file, or stdin for "-".
func loadDocument(path string) (*dom.Document, error) {
	if path == "" || path == "-" {
		return dom.Parse(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return dom.Parse(io.Reader(f))
}
