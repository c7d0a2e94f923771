package plan

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"wrapgen/internal/bind"
	"wrapgen/internal/decl"
	"wrapgen/internal/deps"
	"wrapgen/internal/model"
	"wrapgen/internal/naming"
	"wrapgen/internal/source"
)

// Config holds run settings.
type Config struct {
	// Parallelism bounds the number of entities resolved at once within a
	// module. Values below 1 mean one.
	Parallelism int
}

// DefaultConfig returns the default run configuration.
func DefaultConfig() Config {
	return Config{Parallelism: runtime.GOMAXPROCS(0)}
}

// Runner resolves packages against one declaration namespace.
type Runner struct {
	ns      decl.Namespace
	matcher *source.Matcher
	logger  logrus.FieldLogger
	config  Config
}

// NewRunner creates a Runner. A nil reader reads headers from disk and a nil
// logger discards output. ns may be nil when only Resolve is used.
func NewRunner(ns decl.Namespace, reader source.Reader, logger logrus.FieldLogger, config Config) *Runner {
	if reader == nil {
		reader = source.NewFileReader()
	}

	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}

	if config.Parallelism < 1 {
		config.Parallelism = 1
	}

	return &Runner{
		ns:      ns,
		matcher: source.NewMatcher(reader),
		logger:  logger,
		config:  config,
	}
}

// ErrNoNamespace is returned by Run when the Runner has no declarations.
var ErrNoNamespace = errors.New("no declaration namespace")

// Resolve runs the stages that need no declarations beyond CPPWG_ALL
// population: header mapping, template discovery and naming. It is enough
// to write the header collection. Without a namespace CPPWG_ALL modules are
// left as configured.
func (r *Runner) Resolve(ctx context.Context, pkg *model.Package) error {
	for _, m := range pkg.Modules() {
		if r.ns != nil {
			r.populate(m)
		}

		if err := r.mapSources(m); err != nil {
			return err
		}
	}

	for _, m := range pkg.Modules() {
		if err := r.resolveModule(ctx, m); err != nil {
			return err
		}
	}

	return nil
}

// Run resolves pkg in place and returns the result. A package either fully
// resolves or the run fails.
func (r *Runner) Run(ctx context.Context, pkg *model.Package) (*Result, error) {
	if r.ns == nil {
		return nil, ErrNoNamespace
	}

	res := &Result{Package: pkg}

	if err := r.Resolve(ctx, pkg); err != nil {
		return nil, err
	}

	binder := bind.NewBinder(r.ns, r.logger)

	for _, m := range pkg.Modules() {
		for _, e := range m.Entities() {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			if err := binder.Bind(e); err != nil {
				return nil, &StageError{Stage: StageBind, Entity: qualified(m, e), Err: err}
			}
		}
	}

	res.Diagnostics.Merge(binder.Diagnostics())

	rel, err := deps.Analyze(pkg.Classes())
	if err != nil {
		return nil, &StageError{Stage: StageAnalyze, Err: err}
	}

	res.Relations = rel

	order, err := deps.Order(rel)
	if err != nil {
		return nil, &StageError{Stage: StageOrder, Err: err}
	}

	res.Order = order.Order
	res.Dropped = order.Dropped

	for _, e := range order.Dropped {
		r.logger.WithFields(logrus.Fields{
			"stage":  StageOrder,
			"before": e.Before.Name(),
			"after":  e.After.Name(),
		}).Debug("ignoring requires edge that would close a cycle")
	}

	r.logger.WithFields(logrus.Fields{
		"package":  pkg.Name(),
		"modules":  len(pkg.Modules()),
		"classes":  len(order.Order),
		"warnings": len(res.Diagnostics.Warnings),
	}).Info("package resolved")

	return res, nil
}

// resolveModule discovers templates and resolves names for every entity of
// m concurrently, then checks identifier uniqueness across the module.
func (r *Runner) resolveModule(ctx context.Context, m *model.Module) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.config.Parallelism)

	for _, e := range m.Entities() {
		excluded, err := e.Info().CheckExcluded()
		if err != nil {
			return &StageError{Stage: StageNames, Entity: e.Info().Name(), Err: err}
		}

		if excluded {
			r.logger.WithFields(logrus.Fields{"module": m.Name(), "entity": e.Info().Name()}).Debug("excluded")
			continue
		}

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			return r.resolveEntity(m, e)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	var owned []naming.Owned

	for _, e := range m.Entities() {
		if e.Info().Excluded() {
			continue
		}

		owned = append(owned, naming.Owned{Entity: e.Info().Name(), Names: e.Info().Names()})
	}

	if err := naming.CheckUnique(m.Name(), owned); err != nil {
		return &StageError{Stage: StageNames, Entity: m.Name(), Err: err}
	}

	return nil
}

func (r *Runner) resolveEntity(m *model.Module, e model.Entity) error {
	info := e.Info()
	log := r.logger.WithFields(logrus.Fields{"module": m.Name(), "entity": info.Name()})

	if c, ok := e.(*model.Class); ok {
		found, err := r.matcher.Extract(c)
		if err != nil {
			return &StageError{Stage: StageExtract, Entity: qualified(m, e), Err: err}
		}

		if found {
			log.WithField("signature", c.TemplateSignature()).Debug("template signature matched")
		}
	}

	if err := info.ResolveNames(); err != nil {
		return &StageError{Stage: StageNames, Entity: qualified(m, e), Err: err}
	}

	log.WithField("names", info.Names().Cpp).Debug("names resolved")

	return nil
}

func qualified(m *model.Module, e model.Entity) string {
	return fmt.Sprintf("%s/%s", m.Name(), e.Info().Name())
}

// IsStage reports whether err failed at the given stage.
func IsStage(err error, stage Stage) bool {
	var se *StageError

	return errors.As(err, &se) && se.Stage == stage
}
