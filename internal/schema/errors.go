package schema

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lmorrow/inkwell/internal/domain"
)

// ErrMalformedInput is returned when the raw input is not a key/value
// record at all. There is no record to walk, so no per-field violations
// can be reported.
var ErrMalformedInput = errors.New("input is not a key/value record")

// Code classifies one field-level violation.
type Code string

const (
	CodeMissingRequired  Code = "missing_required_field"
	CodeTypeMismatch     Code = "type_mismatch"
	CodeEnumViolation    Code = "enum_violation"
	CodeDateParse        Code = "date_parse_failure"
	CodeNumberConstraint Code = "number_constraint_violation"
	CodeURLSyntax        Code = "url_syntax_violation"
)

// Violation is one field-level problem found during validation. Path
// addresses the offending field, including list indices, e.g.
// "buyLinks[0].url".
type Violation struct {
	Path   string `json:"path"`
	Code   Code   `json:"code"`
	Reason string `json:"reason"`
}

func (v Violation) String() string {
	return v.Path + ": " + v.Reason
}

// Failure aggregates every violation found in one record. The walk does
// not stop at the first problem, so a content author can fix the whole
// record in one pass.
type Failure struct {
	Collection domain.Collection `json:"collection"`
	Violations []Violation       `json:"violations"`
}

func (f *Failure) Error() string {
	parts := make([]string, len(f.Violations))
	for i, v := range f.Violations {
		parts[i] = v.String()
	}
	return fmt.Sprintf("%s record failed validation: %s", f.Collection, strings.Join(parts, "; "))
}
