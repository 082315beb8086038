// Package check defines the validation scenarios run against a deployed
// stack and the sequential runner that executes them.
package check

import "context"

// Status is the tri-state outcome of a check. Skip is distinct from Fail:
// an optional resource being absent from the stack topology is legitimate.
type Status int

const (
	StatusPass Status = iota
	StatusFail
	StatusSkip
)

func (s Status) String() string {
	switch s {
	case StatusPass:
		return "pass"
	case StatusFail:
		return "fail"
	case StatusSkip:
		return "skip"
	default:
		return "unknown"
	}
}

// Result is the outcome of a single check
type Result struct {
	Name   string
	Status Status
	Detail string
	Err    error
}

// Check is a named validation scenario
type Check struct {
	Name string
	Run  func(ctx context.Context) Result
}

func pass(detail string) Result {
	return Result{Status: StatusPass, Detail: detail}
}

func fail(detail string, err error) Result {
	return Result{Status: StatusFail, Detail: detail, Err: err}
}

func skip(detail string) Result {
	return Result{Status: StatusSkip, Detail: detail}
}
