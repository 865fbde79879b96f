// Package saga runs multi-step workflows whose steps span storage, identity
// and cross-system calls. Each step declares its failure policy up front:
// a Fatal step aborts the run and triggers reverse-order compensation of the
// steps that already succeeded; a Degraded step only contributes a warning.
package saga

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

type Policy int

const (
	// Fatal aborts the saga and compensates prior steps.
	Fatal Policy = iota
	// Degraded is logged, collected as a warning, and the saga continues.
	Degraded
)

type Step struct {
	Name   string
	Policy Policy

	Execute func(ctx context.Context) error

	// Compensate undoes a succeeded Execute when a later Fatal step fails.
	// Nil means the step has nothing to undo (forward-only).
	Compensate func(ctx context.Context) error
}

// Result carries the warnings accumulated by Degraded steps.
type Result struct {
	Warnings []string
}

// Run executes steps in order. On a Fatal failure it runs Compensate on every
// previously succeeded step in reverse order; compensation errors are logged
// and never mask the original error. The returned Result is valid even when
// err != nil (warnings gathered before the failure).
func Run(ctx context.Context, name string, steps []Step) (Result, error) {
	var res Result
	done := make([]Step, 0, len(steps))

	for _, st := range steps {
		err := st.Execute(ctx)
		if err == nil {
			done = append(done, st)
			continue
		}

		if st.Policy == Degraded {
			logrus.WithFields(logrus.Fields{
				"saga": name,
				"step": st.Name,
			}).WithError(err).Warn("degraded step failed, continuing")
			res.Warnings = append(res.Warnings, fmt.Sprintf("%s: %v", st.Name, err))
			continue
		}

		logrus.WithFields(logrus.Fields{
			"saga": name,
			"step": st.Name,
		}).WithError(err).Error("fatal step failed, compensating")
		compensate(ctx, name, done)
		return res, err
	}
	return res, nil
}

func compensate(ctx context.Context, name string, done []Step) {
	for i := len(done) - 1; i >= 0; i-- {
		st := done[i]
		if st.Compensate == nil {
			continue
		}
		if cerr := st.Compensate(ctx); cerr != nil {
			logrus.WithFields(logrus.Fields{
				"saga": name,
				"step": st.Name,
			}).WithError(cerr).Error("compensation failed")
		}
	}
}
