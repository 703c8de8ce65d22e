// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package cli

import (
	"fmt"

	"github.com/creachadair/jdoc/jpath"
	"github.com/spf13/cobra"
)

func newQueryCmd(a *app) *cobra.Command {
	var first bool
	cmd := &cobra.Command{
		Use:   "query <file> <expr>",
		Short: "Print the values matching a JSONPath expression",
		Long: `Parse a document and print the compact JSON of each value selected by
a JSONPath expression, one per line. For example:

  jdoc query store.json '$..book[0,1].author'

It is an error if no values match.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr, err := jpath.Parse(args[1])
			if err != nil {
				return fmt.Errorf("invalid expression: %w", err)
			}
			s, err := a.settings()
			if err != nil {
				return err
			}
			obj, err := a.opener(s).Parse(args[0], s.setup)
			if err != nil {
				return err
			}

			vs := expr.Select(obj)
			a.log.Debug("selected", "expr", expr, "matches", len(vs))
			if len(vs) == 0 {
				return fmt.Errorf("no values match %s", expr)
			}
			if first {
				vs = vs[:1]
			}
			out := cmd.OutOrStdout()
			for _, v := range vs {
				if _, err := fmt.Fprintln(out, v.JSON()); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&first, "first", false, "Print only the first match")
	return cmd
}
