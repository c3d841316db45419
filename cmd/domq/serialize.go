package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/domq/domq"
)

func serializeCmd() *cobra.Command {
	var (
		file     string
		selector string
		format   string
	)

	cmd := &cobra.Command{
		Use:   "serialize",
		Short: "Serialize a form's fields as a query string or YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(file)
			if err != nil {
				return err
			}
			matches, err := domq.Select(doc, selector)
			if err != nil {
				return err
			}
			if matches.Length() == 0 {
				return errors.Errorf("no element matches %q", selector)
			}
			// FromNode substitutes a form's controls for the form itself.
			fields := domq.FromNode(doc, matches.Nodes()[0])

			out := cmd.OutOrStdout()
			switch format {
			case "yaml":
				data, err := yaml.Marshal(fields.SerializeArray())
				if err != nil {
					return errors.Wrap(err, "marshal fields")
				}
				fmt.Fprint(out, string(data))
			case "qs":
				fmt.Fprintln(out, fields.Serialize())
			default:
				return errors.Errorf("unknown format %q (want qs or yaml)", format)
			}
			if verbose {
				color.New(color.Faint).Fprintf(cmd.ErrOrStderr(), "%d field(s)\n", len(fields.SerializeArray()))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "-", "HTML file to read, - for stdin")
	cmd.Flags().StringVarP(&selector, "selector", "s", "form", "selector for the form element")
	cmd.Flags().StringVar(&format, "format", "qs", "output format: qs or yaml")
	return cmd
}
