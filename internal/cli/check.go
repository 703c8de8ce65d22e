// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package cli

import (
	"bytes"
	"fmt"
	"io"
	"slices"

	"github.com/creachadair/jdoc"
	"github.com/creachadair/jdoc/source"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>...",
		Short: "Check that documents are well-formed",
		Long: `Parse each of the named documents and report any that are not
well-formed. Files are checked concurrently; see --jobs.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.settings()
			if err != nil {
				return err
			}
			o := a.opener(s)

			// Standard input can be read only once, so each mention of it is
			// checked against its own copy.
			var stdin []byte
			var stdinErr error
			if slices.Contains(args, source.Stdin) {
				stdin, stdinErr = io.ReadAll(o.Stdin)
			}

			errs := make([]error, len(args))
			var g errgroup.Group
			g.SetLimit(s.Jobs)
			for i, name := range args {
				if name == source.Stdin && stdinErr != nil {
					errs[i] = jdoc.SourceError(name, stdinErr)
					continue
				}
				g.Go(func() error {
					o := o
					if name == source.Stdin {
						o.Stdin = bytes.NewReader(stdin)
					}
					_, errs[i] = o.Parse(name, s.setup)
					return nil
				})
			}
			g.Wait()

			out := cmd.OutOrStdout()
			var nbad int
			for i, name := range args {
				a.log.Debug("checked", "file", name, "error", errs[i])
				if errs[i] != nil {
					nbad++
					fmt.Fprintf(out, "%s: FAIL: %v\n", name, errs[i])
				} else {
					fmt.Fprintf(out, "%s: ok\n", name)
				}
			}
			if nbad > 0 {
				return fmt.Errorf("%d of %d files failed", nbad, len(args))
			}
			return nil
		},
	}
}
