package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"wrapgen/internal/gen"
	"wrapgen/internal/plan"
)

func newResolveCmd(a *app) *cobra.Command {
	var (
		dump     bool
		manifest bool
	)

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve names, bind declarations and print the emission order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			pkg, err := a.loadPackage()
			if err != nil {
				return err
			}

			r, err := a.runner()
			if err != nil {
				return err
			}

			res, err := r.Run(cmd.Context(), pkg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printResult(out, res)

			if dump {
				cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, MaxDepth: 4}
				cfg.Fdump(out, gen.NewManifest(res))
			}

			if manifest {
				f, err := gen.NewManifest(res).File("")
				if err != nil {
					return err
				}

				if err := gen.WriteFiles([]gen.GeneratedFile{f}, a.settings.WrapperRoot); err != nil {
					return err
				}

				a.logger.WithField("file", f.Filename).Info("manifest written")
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&dump, "dump", false, "dump the resolved manifest structure")
	cmd.Flags().BoolVar(&manifest, "manifest", false, "write the manifest to the wrapper root")

	return cmd
}

func printResult(w io.Writer, res *plan.Result) {
	for _, m := range res.Package.Modules() {
		fmt.Fprintf(w, "module %s\n", m.Name())

		for _, e := range m.Entities() {
			info := e.Info()
			if info.Excluded() {
				fmt.Fprintf(w, "  %s %s (excluded)\n", e.Kind(), info.Name())

				continue
			}

			names := info.Names()
			for i := range names.Cpp {
				fmt.Fprintf(w, "  %s %s -> %s\n", e.Kind(), strings.TrimSpace(names.Cpp[i]), names.Identifiers[i])
			}
		}
	}

	order := make([]string, len(res.Order))
	for i, c := range res.Order {
		order[i] = c.Name()
	}

	fmt.Fprintf(w, "order: %s\n", strings.Join(order, ", "))

	for _, e := range res.Dropped {
		fmt.Fprintf(w, "dropped: %s before %s\n", e.Before.Name(), e.After.Name())
	}

	for _, d := range res.Diagnostics.Warnings {
		fmt.Fprintf(w, "warning: %s\n", d)
	}
}
