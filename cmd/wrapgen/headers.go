package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"wrapgen/internal/gen"
)

func newHeadersCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "headers",
		Short: "Write the header collection to the wrapper root",
		Long: `headers resolves template instantiations and names, then writes one
header that includes the wrapped headers, instantiates every template class and
declares a typedef per instantiation. The declaration dump is optional here
except for modules that wrap all classes or functions.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pkg, err := a.loadPackage()
			if err != nil {
				return err
			}

			r, err := a.runner()
			if err != nil {
				return err
			}

			if err := r.Resolve(cmd.Context(), pkg); err != nil {
				return err
			}

			headers, err := gen.DiscoverHeaders(pkg)
			if err != nil {
				return err
			}

			hc, err := gen.NewHeaderCollection(pkg, headers)
			if err != nil {
				return err
			}

			f, err := hc.File(a.settings.HeaderCollection)
			if err != nil {
				return err
			}

			if err := gen.WriteFiles([]gen.GeneratedFile{f}, a.settings.WrapperRoot); err != nil {
				return err
			}

			a.logger.WithFields(logrus.Fields{
				"file":           f.Filename,
				"includes":       len(hc.Includes),
				"instantiations": len(hc.Instantiations),
			}).Info("header collection written")

			return nil
		},
	}
}
