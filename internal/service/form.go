// Package service holds the per-entity form controllers: validate the
// field set, shape the request payload, call the API, and notify the
// outcome. A form refuses a second submit while one is running.
package service

import (
	"errors"
	"fmt"

	"go-travel-agency/pkg/validator"
)

var ErrSubmitInFlight = errors.New("a submission is already in progress")

// submitGuard blocks double-submits. Forms run on a single goroutine, so
// a plain flag is enough; the guard exists for double-clicks, not races.
type submitGuard struct {
	submitting bool
}

func (g *submitGuard) begin() error {
	if g.submitting {
		return ErrSubmitInFlight
	}
	g.submitting = true
	return nil
}

func (g *submitGuard) end() {
	g.submitting = false
}

func (g *submitGuard) Submitting() bool {
	return g.submitting
}

// validate runs the struct tags and reports the first failure the way
// the dashboard renders it.
func validate(req interface{}) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return fmt.Errorf("Validation failed: Field '%s' failed on tag '%s'", first.FailedField, first.Tag)
	}
	return nil
}
