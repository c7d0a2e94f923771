package plan

import (
	"fmt"

	"wrapgen/internal/deps"
	"wrapgen/internal/diagnostic"
	"wrapgen/internal/model"
)

// Stage names a pipeline step in errors and log fields.
type Stage string

const (
	StageSources Stage = "sources"
	StageExtract Stage = "extract"
	StageNames   Stage = "names"
	StageBind    Stage = "bind"
	StageAnalyze Stage = "analyze"
	StageOrder   Stage = "order"
)

// StageError reports the stage and entity at which the run failed.
type StageError struct {
	Stage  Stage
	Entity string
	Err    error
}

func (e *StageError) Error() string {
	if e.Entity == "" {
		return fmt.Sprintf("%s: %v", e.Stage, e.Err)
	}

	return fmt.Sprintf("%s %s: %v", e.Stage, e.Entity, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// Result is the output of a successful run.
type Result struct {
	// Package is the resolved model; every non-excluded entity has names and
	// declarations.
	Package *model.Package
	// Relations holds IsBaseOf and Requires over the analyzed classes.
	Relations *deps.Relations
	// Order is the class emission order.
	Order []*model.Class
	// Dropped lists requires edges ignored to keep Order acyclic.
	Dropped []deps.Edge
	// Diagnostics contains the warnings collected during the run.
	Diagnostics diagnostic.Diagnostics
}
