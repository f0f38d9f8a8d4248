package filter

import (
	"context"

	"github.com/s0up4200/twitterctl/twitter"
)

// Filter decides whether a status message is kept
type Filter interface {
	// Evaluate checks if a status matches the filter criteria
	Evaluate(status *twitter.StatusMessage) bool
}

// CompiledFilter represents a pre-compiled filter ready for evaluation
type CompiledFilter interface {
	Filter

	// Match is Evaluate with the runtime error, if any, reported
	Match(status *twitter.StatusMessage) (bool, error)

	// Expression returns the expression as written
	Expression() string
}

// Compiler compiles filter expressions into executable filters
type Compiler interface {
	// Compile parses and compiles a filter expression
	Compile(expression string) (CompiledFilter, error)
}

// CachingCompiler provides caching for compiled filters
type CachingCompiler interface {
	Compiler

	// Clear removes all cached filters
	Clear()

	// Size returns the number of cached filters
	Size() int
}

// Evaluator evaluates filters against timelines
type Evaluator interface {
	// Evaluate returns the statuses matching filter, in timeline order
	Evaluate(ctx context.Context, filter CompiledFilter, statuses []*twitter.StatusMessage) ([]*twitter.StatusMessage, error)

	// EvaluateBatch evaluates every filter against statuses
	EvaluateBatch(ctx context.Context, filters map[string]CompiledFilter, statuses []*twitter.StatusMessage) (map[string][]*twitter.StatusMessage, error)
}
