package library

import (
	"errors"
	"fmt"
)

// ErrParse is the sentinel matched by every *ParseError via errors.Is.
var ErrParse = errors.New("invalid library descriptor")

// ParseStage identifies which step rejected a descriptor.
type ParseStage string

const (
	// StageSyntax means the input was not well-formed JSON.
	StageSyntax ParseStage = "syntax"
	// StageSchema means the JSON did not match the descriptor schema.
	StageSchema ParseStage = "schema"
)

// ParseError is returned by Load when a descriptor cannot be turned into records.
type ParseError struct {
	Stage ParseStage
	// Pointer is the JSON pointer of the first offending location (schema stage only).
	Pointer string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Pointer != "" {
		return fmt.Sprintf("%s: %s error at %s: %v", ErrParse, e.Stage, e.Pointer, e.Err)
	}
	return fmt.Sprintf("%s: %s error: %v", ErrParse, e.Stage, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrParse) true for any ParseError.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
