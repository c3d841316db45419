package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/domq/domq"
	"github.com/domq/domq/dom"
)

func selectCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "select <selector>",
		Short: "Print the elements matching a CSS selector",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(file)
			if err != nil {
				return err
			}
			s, err := domq.Select(doc, args[0])
			if err != nil {
				return err
			}

			heading := color.New(color.FgGreen, color.Bold)
			heading.Fprintf(cmd.OutOrStdout(), "%d match(es)\n", s.Length())
			for _, n := range s.Nodes() {
				markup, err := dom.OuterHTML(n)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), markup)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "-", "HTML file to read, - for stdin")
	return cmd
}
