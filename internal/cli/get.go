// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package cli

import (
	"fmt"

	"github.com/creachadair/jdoc/ast"
	"github.com/creachadair/jdoc/ast/cursor"
	"github.com/spf13/cobra"
)

func newGetCmd(a *app) *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "get <file> <path>",
		Short: "Print the value at a path in a document",
		Long: `Parse a document and print the compact JSON of the value at the given
dotted path. Path elements select object members by key and array elements
by index, for example "person.names.0". An empty path selects the whole
document.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.settings()
			if err != nil {
				return err
			}
			obj, err := a.opener(s).Parse(args[0], s.setup)
			if err != nil {
				return err
			}
			c := cursor.New(obj).Down(cursor.ParsePath(args[1])...)
			if err := c.Err(); err != nil {
				return fmt.Errorf("path %q: %w", args[1], err)
			}
			a.log.Debug("found", "path", args[1], "value", c.Value())

			out := c.Value().JSON()
			if str, ok := c.Value().(ast.String); ok && raw {
				out = string(str)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().BoolVarP(&raw, "raw", "r", false, "Print strings without quotation marks")
	return cmd
}
