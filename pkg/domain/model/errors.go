package model

import "github.com/m-mizutani/goerr/v2"

// Error tags classifying operation failures
var (
	ErrTagValidation   = goerr.NewTag("validation")
	ErrTagMissingParam = goerr.NewTag("missing_param")
	ErrTagNotFound     = goerr.NewTag("not_found")
	ErrTagConflict     = goerr.NewTag("conflict")
	ErrTagUpstream     = goerr.NewTag("upstream")
	ErrTagNetwork      = goerr.NewTag("network")
	ErrTagBadResponse  = goerr.NewTag("bad_response")
	ErrTagUnexpected   = goerr.NewTag("unexpected")
)

const violationsKey = "violations"

// NewValidationError wraps an ordered violation list as a single error
func NewValidationError(messages []string) error {
	return goerr.New("validation failed",
		goerr.T(ErrTagValidation),
		goerr.V(violationsKey, messages))
}

// ValidationMessages extracts the ordered violation list from an error.
// Returns nil when the error does not carry one.
func ValidationMessages(err error) []string {
	if err == nil {
		return nil
	}
	if messages, ok := goerr.Values(err)[violationsKey].([]string); ok {
		return messages
	}
	return nil
}
