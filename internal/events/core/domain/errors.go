package domain

import "fmt"

// ParseError reports a backing table that does not match the expected shape.
type ParseError struct {
	Line   int    // 1-based, 0 when unknown
	Column string // empty for row-level problems
	Err    error
}

func (e *ParseError) Error() string {
	switch {
	case e.Column != "":
		return fmt.Sprintf("parse error at line %d, column %q: %v", e.Line, e.Column, e.Err)
	case e.Line > 0:
		return fmt.Sprintf("parse error at line %d: %v", e.Line, e.Err)
	default:
		return fmt.Sprintf("parse error: %v", e.Err)
	}
}

func (e *ParseError) Unwrap() error { return e.Err }
