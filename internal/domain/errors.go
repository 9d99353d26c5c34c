package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrDivision is returned when BMI would divide by a non-positive height.
	ErrDivision = errors.New("height_cm must be > 0")

	// ErrInputRange matches every *InputRangeError.
	ErrInputRange = errors.New("input out of range")

	// ErrStoreRead matches every *StoreReadError.
	ErrStoreRead = errors.New("record store read failed")

	// ErrStoreWrite matches every *StoreWriteError.
	ErrStoreWrite = errors.New("record store write failed")
)

// InputRangeError reports a RawInput field outside its declared bounds.
type InputRangeError struct {
	Field string
	Value float64
	Min   float64
	Max   float64 // zero means unbounded

	// MinExclusive makes Min a strict lower bound.
	MinExclusive bool
}

func (e *InputRangeError) Error() string {
	if e.Max == 0 {
		op := ">="
		if e.MinExclusive {
			op = ">"
		}
		return fmt.Sprintf("%s must be %s %g, got %g", e.Field, op, e.Min, e.Value)
	}
	return fmt.Sprintf("%s must be within [%g, %g], got %g", e.Field, e.Min, e.Max, e.Value)
}

func (e *InputRangeError) Is(target error) bool { return target == ErrInputRange }

// StoreReadError reports a malformed backing store. Line and Column are
// 1-based and zero when not applicable.
type StoreReadError struct {
	Path   string
	Line   int
	Column string
	Err    error
}

func (e *StoreReadError) Error() string {
	switch {
	case e.Line > 0 && e.Column != "":
		return fmt.Sprintf("read %s: line %d, column %q: %v", e.Path, e.Line, e.Column, e.Err)
	case e.Line > 0:
		return fmt.Sprintf("read %s: line %d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *StoreReadError) Unwrap() error { return e.Err }

func (e *StoreReadError) Is(target error) bool { return target == ErrStoreRead }

// StoreWriteError reports a failed append. Previously persisted records are
// left untouched.
type StoreWriteError struct {
	Path string
	Op   string
	Err  error
}

func (e *StoreWriteError) Error() string {
	return fmt.Sprintf("write %s: %s: %v", e.Path, e.Op, e.Err)
}

func (e *StoreWriteError) Unwrap() error { return e.Err }

func (e *StoreWriteError) Is(target error) bool { return target == ErrStoreWrite }
