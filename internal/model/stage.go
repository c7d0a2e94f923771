package model

import (
	"errors"
	"fmt"
)

//go:generate go tool stringer -type=Stage -trimprefix=Stage -output=stage_string.go

// Stage is the resolution progress of an entity.
type Stage int

const (
	_ Stage = iota // zero value is not a valid stage

	StageConfigured
	StageTemplateResolved
	StageBound
	StageAnalyzed
)

// ErrStageOrder is returned for any transition other than the next stage.
var ErrStageOrder = errors.New("invalid stage transition")

// Kind is the entity variant.
type Kind int

const (
	KindUnknown Kind = iota
	KindClass
	KindFreeFunction
	KindVariable
)

// String returns a human-readable representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindFreeFunction:
		return "free function"
	case KindVariable:
		return "variable"
	default:
		return "unknown"
	}
}

func advance(name string, from, to Stage) error {
	if to != from+1 {
		return fmt.Errorf("%s: %v -> %v: %w", name, from, to, ErrStageOrder)
	}

	return nil
}
