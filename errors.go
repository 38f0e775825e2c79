package shapeset

import (
	"errors"
	"fmt"

	"github.com/hupe1980/shapeset/sample"
)

var (
	// ErrNotFound is returned when a requested model is not in the catalog.
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument is returned for malformed selectors: mismatched
	// category/sample-count lengths or unknown category keys.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIndexOutOfRange is returned when an explicit index is outside the
	// catalog bounds.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// ErrModelNotFound indicates a requested model id is absent from the catalog.
//
// Satisfies errors.Is(err, ErrNotFound).
type ErrModelNotFound struct {
	ModelID string
}

func (e *ErrModelNotFound) Error() string {
	return fmt.Sprintf("model %s not found in the loaded dataset", e.ModelID)
}

func (e *ErrModelNotFound) Unwrap() error { return ErrNotFound }

// ErrUnknownCategory indicates a category token that resolves to no loaded
// synset.
//
// Satisfies errors.Is(err, ErrInvalidArgument).
type ErrUnknownCategory struct {
	Category string
}

func (e *ErrUnknownCategory) Error() string {
	return fmt.Sprintf("category %s is not in the loaded dataset", e.Category)
}

func (e *ErrUnknownCategory) Unwrap() error { return ErrInvalidArgument }

// ErrSampleCountMismatch indicates len(SampleNums) matches neither
// len(Categories) nor 1.
//
// Satisfies errors.Is(err, ErrInvalidArgument).
type ErrSampleCountMismatch struct {
	Categories int
	SampleNums int
}

func (e *ErrSampleCountMismatch) Error() string {
	return fmt.Sprintf("categories and sample counts must have the same length, or one sample count to broadcast (got %d categories, %d counts)",
		e.Categories, e.SampleNums)
}

func (e *ErrSampleCountMismatch) Unwrap() error { return ErrInvalidArgument }

// ErrIndexBounds indicates an explicit index outside [0, Size).
//
// Satisfies errors.Is(err, ErrIndexOutOfRange).
type ErrIndexBounds struct {
	Index int
	Size  int
}

func (e *ErrIndexBounds) Error() string {
	return fmt.Sprintf("index %d out of bounds, indices must be between 0 and %d", e.Index, e.Size-1)
}

func (e *ErrIndexBounds) Unwrap() error { return ErrIndexOutOfRange }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	// Argument normalization for the sampling layer.
	if errors.Is(err, sample.ErrNegativeCount) || errors.Is(err, sample.ErrEmptyRange) {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return err
}
