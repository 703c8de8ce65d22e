// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package cli

import (
	"fmt"

	"github.com/creachadair/jdoc/ast"
	"github.com/spf13/cobra"
)

func newPrintCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "print <file>",
		Short: "Parse a document and print it",
		Long: `Parse a document and print it with one member or element per line.
Use "-" to read from standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.settings()
			if err != nil {
				return err
			}
			obj, err := a.opener(s).Parse(args[0], s.setup)
			if err != nil {
				return err
			}
			a.log.Debug("parsed", "file", args[0], "members", obj.Len())

			f := ast.Formatter{Indent: s.Indent}
			out := cmd.OutOrStdout()
			if err := f.Format(out, obj); err != nil {
				return err
			}
			_, err = fmt.Fprintln(out)
			return err
		},
	}
}
