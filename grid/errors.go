package grid

import "fmt"

// Kind classifies the errors grid can return, so calling code can switch on
// the failure mode instead of matching error strings.
type Kind int

const (
	// ShapeMismatch: two tensors that must agree on shape do not.
	ShapeMismatch Kind = iota
	// MissingTyping: an operation needs a typing mode the CoordinateSet doesn't have
	// (e.g. BackwardRelevance asked to run against a vector-typed set).
	MissingTyping
	// StorageMismatch: tensors passed to the same call disagree on Location.
	StorageMismatch
	// InvalidConfiguration: Initialize was given a non-positive resolution,
	// dimension, radius scale or Gaussian radius multiple.
	InvalidConfiguration
)

func (k Kind) String() string {
	switch k {
	case ShapeMismatch:
		return "shape mismatch"
	case MissingTyping:
		return "missing typing"
	case StorageMismatch:
		return "storage mismatch"
	case InvalidConfiguration:
		return "invalid configuration"
	default:
		return "unknown"
	}
}

// Error implements molgrid.Error, with a Kind so the error taxonomy survives
// past the error string.
type Error struct {
	kind     Kind
	message  string
	deco     []string
	critical bool
}

func newError(k Kind, format string, args ...interface{}) Error {
	return Error{kind: k, message: fmt.Sprintf(format, args...), critical: true}
}

func (err Error) Error() string { return fmt.Sprintf("grid: %s: %s", err.kind, err.message) }

func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

func (err Error) Critical() bool { return err.critical }

// Kind returns the error's classification.
func (err Error) Kind() Kind { return err.kind }
