package diagnostic

import (
	"errors"
	"strings"
)

// Stage is the pipeline step that raised a diagnostic.
type Stage string

const (
	StageConfig Stage = "config"
	StageBind   Stage = "bind"
)

// Diagnostic is one finding about a package document or a resolved entity.
type Diagnostic struct {
	Stage Stage
	Code  string
	// Entity is the configured entity or module the finding is about.
	Entity string
	// Cpp is the C++ spelling involved: the name a lookup settled on, or a
	// template signature.
	Cpp     string
	Message string
}

// String renders "stage entity (cpp): code: message", leaving out empty parts.
func (d Diagnostic) String() string {
	var head []string
	if d.Stage != "" {
		head = append(head, string(d.Stage))
	}

	if d.Entity != "" {
		head = append(head, d.Entity)
	}

	if d.Cpp != "" {
		head = append(head, "("+d.Cpp+")")
	}

	var b strings.Builder
	if len(head) > 0 {
		b.WriteString(strings.Join(head, " "))
		b.WriteString(": ")
	}

	if d.Code != "" {
		b.WriteString(d.Code)
		b.WriteString(": ")
	}

	b.WriteString(d.Message)

	return b.String()
}

// Diagnostics collects the findings of validation and binding. Errors make a
// document unusable; warnings are kept for the manifest.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
}

// Reject records an error.
func (d *Diagnostics) Reject(diag Diagnostic) {
	d.Errors = append(d.Errors, diag)
}

// Warn records a warning.
func (d *Diagnostics) Warn(diag Diagnostic) {
	d.Warnings = append(d.Warnings, diag)
}

// HasErrors reports whether any error was recorded.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge appends the findings of other.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
}

// Err joins the recorded errors, or returns nil when there are none.
func (d *Diagnostics) Err() error {
	if !d.HasErrors() {
		return nil
	}

	parts := make([]string, len(d.Errors))
	for i, e := range d.Errors {
		parts[i] = e.String()
	}

	return errors.New(strings.Join(parts, "; "))
}

// Codes lists the codes of diags in order.
func Codes(diags []Diagnostic) []string {
	out := make([]string, len(diags))
	for i, d := range diags {
		out[i] = d.Code
	}

	return out
}
