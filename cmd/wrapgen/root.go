package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"wrapgen/internal/config"
	"wrapgen/internal/decl"
	"wrapgen/internal/model"
	"wrapgen/internal/plan"
	"wrapgen/internal/settings"
)

// app carries the state shared by all subcommands.
type app struct {
	settingsFile string
	settings     *settings.Settings
	logger       logrus.FieldLogger // tagged with a per-invocation run id
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "wrapgen",
		Short: "Resolve and order the entities of a C++ wrapper package",
		Long: `wrapgen reads a package document describing which C++ classes, free
functions and variables to wrap, resolves template instantiations from the
headers, binds each entity to the declaration dump and computes the class
emission order.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			s, err := settings.Load(a.settingsFile, cmd.Flags())
			if err != nil {
				return err
			}

			a.settings = s

			logger := logrus.New()
			logger.SetOutput(cmd.ErrOrStderr())

			if s.Verbose {
				logger.SetLevel(logrus.DebugLevel)
			}

			a.logger = logger.WithField("run", uuid.NewString())

			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.settingsFile, "settings", "", "YAML settings file")
	pf.StringP(settings.KeySourceRoot, "s", "", "root directory of the C++ sources")
	pf.StringP(settings.KeyWrapperRoot, "w", "", "output directory (defaults to the source root)")
	pf.StringP(settings.KeyPackageInfo, "p", "", "package document")
	pf.StringP(settings.KeyDeclarations, "d", "", "declaration dump")
	pf.String(settings.KeyHeaderCollection, "", "header collection file name")
	pf.IntP(settings.KeyParallelism, "j", 0, "entities resolved concurrently per module")
	pf.BoolP(settings.KeyVerbose, "v", false, "verbose output")

	root.AddCommand(newResolveCmd(a), newHeadersCmd(a))

	return root
}

// loadPackage reads, expands and validates the package document.
func (a *app) loadPackage() (*model.Package, error) {
	if err := a.settings.Validate(); err != nil {
		return nil, err
	}

	pf, err := config.LoadFile(a.settings.PackageInfo)
	if err != nil {
		return nil, err
	}

	config.ExpandPaths(pf, a.settings.SourceRoot)

	diags := config.Validate(pf)
	for _, w := range diags.Warnings {
		a.logger.WithFields(logrus.Fields{"code": w.Code, "entity": w.Entity}).Warn(w.Message)
	}

	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid package document %s: %w", a.settings.PackageInfo, diags.Err())
	}

	return model.Build(pf), nil
}

// runner builds a runner over the declaration dump, if one is configured.
func (a *app) runner() (*plan.Runner, error) {
	var ns decl.Namespace

	if a.settings.Declarations != "" {
		g, err := decl.LoadFileUnder(a.settings.Declarations, a.settings.SourceRoot)
		if err != nil {
			return nil, err
		}

		ns = g
	}

	return plan.NewRunner(ns, nil, a.logger, plan.Config{Parallelism: a.settings.Parallelism}), nil
}
