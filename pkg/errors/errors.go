package errors

import (
	"errors"
	"fmt"
)

var (
	Join = errors.Join
	Is   = errors.Is
	As   = errors.As
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrEmptyPattern    = fmt.Errorf("%w: pattern must not be empty", ErrInvalidArgument)
	ErrNoSource        = fmt.Errorf("%w: no source text", ErrInvalidArgument)
	ErrTooLarge        = errors.New("replacement result too large")
)

// RuleError reports the failure of a single rule in a rule set.
type RuleError struct {
	Index   int
	Pattern string
	Err     error
}

// NewRuleError wraps err for the rule at index. A nil err yields nil.
func NewRuleError(index int, pattern string, err error) error {
	if err == nil {
		return nil
	}
	return &RuleError{
		Index:   index,
		Pattern: pattern,
		Err:     err,
	}
}

func (r *RuleError) Error() string {
	return fmt.Sprintf("rule %d (%q): %v", r.Index, r.Pattern, r.Err)
}

func (r *RuleError) Unwrap() error {
	return r.Err
}
