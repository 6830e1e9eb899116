package planner

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cityroute/bfs"
	"github.com/katalvlaran/cityroute/core"
	"github.com/katalvlaran/cityroute/dfs"
	"github.com/katalvlaran/cityroute/names"
)

// Taxonomy sentinels shared by every Planner method.
var (
	// ErrDuplicate indicates a location or road that already exists.
	ErrDuplicate = errors.New("planner: already exists")

	// ErrNotFound indicates a missing location, road or route.
	ErrNotFound = errors.New("planner: not found")

	// ErrSelfLoop indicates a road from a location to itself.
	ErrSelfLoop = errors.New("planner: self-loop")

	// ErrInvalidInput indicates a name or distance rejected by validation.
	ErrInvalidInput = errors.New("planner: invalid input")
)

// Outcome labels used in logs and metrics.
const (
	outcomeOK        = "ok"
	outcomeDuplicate = "duplicate"
	outcomeNotFound  = "not_found"
	outcomeSelfLoop  = "self_loop"
	outcomeInvalid   = "invalid_input"
	outcomeInternal  = "internal"
)

// kindOf maps a package error onto its taxonomy sentinel.
// It returns nil for errors outside the taxonomy.
func kindOf(err error) error {
	switch {
	case errors.Is(err, ErrDuplicate),
		errors.Is(err, core.ErrLocationExists),
		errors.Is(err, core.ErrRoadExists):
		return ErrDuplicate
	case errors.Is(err, ErrNotFound),
		errors.Is(err, core.ErrLocationNotFound),
		errors.Is(err, core.ErrRoadNotFound),
		errors.Is(err, bfs.ErrStartNotFound),
		errors.Is(err, bfs.ErrEndpointNotFound),
		errors.Is(err, bfs.ErrNoPath),
		errors.Is(err, dfs.ErrStartNotFound):
		return ErrNotFound
	case errors.Is(err, ErrSelfLoop),
		errors.Is(err, core.ErrLoopNotAllowed):
		return ErrSelfLoop
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, names.ErrInvalidName),
		errors.Is(err, core.ErrEmptyLocation),
		errors.Is(err, names.ErrInvalidDistance),
		errors.Is(err, core.ErrBadDistance):
		return ErrInvalidInput
	}

	return nil
}

// classify wraps err with its taxonomy sentinel. Errors that already carry
// one, and errors outside the taxonomy, are returned unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}
	kind := kindOf(err)
	if kind == nil || errors.Is(err, kind) {
		return err
	}

	return fmt.Errorf("%w: %w", kind, err)
}

// outcome returns the metric/log label for err.
func outcome(err error) string {
	if err == nil {
		return outcomeOK
	}
	switch kindOf(err) {
	case ErrDuplicate:
		return outcomeDuplicate
	case ErrNotFound:
		return outcomeNotFound
	case ErrSelfLoop:
		return outcomeSelfLoop
	case ErrInvalidInput:
		return outcomeInvalid
	}

	return outcomeInternal
}
