package saga

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okStep(name string, log *[]string) Step {
	return Step{
		Name:   name,
		Policy: Fatal,
		Execute: func(context.Context) error {
			*log = append(*log, "exec:"+name)
			return nil
		},
		Compensate: func(context.Context) error {
			*log = append(*log, "comp:"+name)
			return nil
		},
	}
}

func TestRunAllStepsSucceed(t *testing.T) {
	var log []string
	res, err := Run(context.Background(), "test", []Step{
		okStep("one", &log),
		okStep("two", &log),
	})
	require.NoError(t, err)
	assert.Empty(t, res.Warnings)
	assert.Equal(t, []string{"exec:one", "exec:two"}, log)
}

func TestRunDegradedFailureContinues(t *testing.T) {
	var log []string
	boom := errors.New("smtp down")
	res, err := Run(context.Background(), "test", []Step{
		okStep("one", &log),
		{
			Name:    "mail",
			Policy:  Degraded,
			Execute: func(context.Context) error { return boom },
		},
		okStep("two", &log),
	})
	require.NoError(t, err)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "mail")
	assert.Contains(t, res.Warnings[0], "smtp down")
	assert.Equal(t, []string{"exec:one", "exec:two"}, log)
}

func TestRunFatalFailureCompensatesInReverse(t *testing.T) {
	var log []string
	boom := errors.New("sibling write failed")
	_, err := Run(context.Background(), "test", []Step{
		okStep("one", &log),
		okStep("two", &log),
		{
			Name:    "three",
			Policy:  Fatal,
			Execute: func(context.Context) error { return boom },
		},
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"exec:one", "exec:two", "comp:two", "comp:one"}, log)
}

func TestRunSkipsNilCompensate(t *testing.T) {
	var log []string
	_, err := Run(context.Background(), "test", []Step{
		{
			Name:    "forward-only",
			Policy:  Fatal,
			Execute: func(context.Context) error { log = append(log, "exec:forward-only"); return nil },
		},
		okStep("one", &log),
		{
			Name:    "bad",
			Policy:  Fatal,
			Execute: func(context.Context) error { return errors.New("nope") },
		},
	})
	require.Error(t, err)
	assert.Equal(t, []string{"exec:forward-only", "exec:one", "comp:one"}, log)
}

func TestRunCompensationErrorDoesNotMaskOriginal(t *testing.T) {
	boom := errors.New("original failure")
	_, err := Run(context.Background(), "test", []Step{
		{
			Name:       "one",
			Policy:     Fatal,
			Execute:    func(context.Context) error { return nil },
			Compensate: func(context.Context) error { return errors.New("undo failed too") },
		},
		{
			Name:    "two",
			Policy:  Fatal,
			Execute: func(context.Context) error { return boom },
		},
	})
	require.ErrorIs(t, err, boom)
}

func TestRunKeepsWarningsOnFatalFailure(t *testing.T) {
	res, err := Run(context.Background(), "test", []Step{
		{
			Name:    "soft",
			Policy:  Degraded,
			Execute: func(context.Context) error { return errors.New("soft fail") },
		},
		{
			Name:    "hard",
			Policy:  Fatal,
			Execute: func(context.Context) error { return errors.New("hard fail") },
		},
	})
	require.Error(t, err)
	assert.Len(t, res.Warnings, 1)
}
