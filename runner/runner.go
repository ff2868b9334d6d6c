package runner

import (
	"errors"
	"fmt"

	"github.com/tessellated-io/workshop/arrays"
	"github.com/tessellated-io/workshop/config"
	"github.com/tessellated-io/workshop/log"
	"github.com/tessellated-io/workshop/util"
)

// ErrUnknownExercise is returned by RunOne for a name the runner does not know.
var ErrUnknownExercise = errors.New("unknown exercise")

// Result is the outcome of a single exercise. Err is set only if the exercise panicked.
type Result struct {
	Name   string
	Output any
	Err    error
}

// Runner runs a fixed, ordered list of exercises.
type Runner struct {
	exercises []Exercise
	log       *log.Logger
}

// NewRunner returns a runner over DefaultExercises.
func NewRunner(logger *log.Logger) *Runner {
	return NewRunnerWithExercises(logger, DefaultExercises())
}

// NewRunnerWithExercises returns a runner over exercises, run in the given order.
func NewRunnerWithExercises(logger *log.Logger, exercises []Exercise) *Runner {
	return &Runner{
		exercises: exercises,
		log:       logger.ApplyPrefix("[runner]"),
	}
}

// Names lists exercise names in run order.
func (r *Runner) Names() []string {
	return arrays.Map(r.exercises, func(e Exercise) string { return e.Name })
}

// Run runs every exercise against dataset. A panicking exercise does not stop the others.
func (r *Runner) Run(dataset *config.Dataset) []Result {
	results := arrays.Map(r.exercises, func(e Exercise) Result { return r.run(e, dataset) })

	failed := arrays.Count(results, func(res Result) bool { return res.Err != nil })
	r.log.Info("finished running exercises", "total", len(results), "failed", failed)

	return results
}

// RunOne runs the exercise called name. It returns ErrUnknownExercise if there is none.
func (r *Runner) RunOne(name string, dataset *config.Dataset) (Result, error) {
	matches := arrays.Filter(r.exercises, func(e Exercise) bool { return e.Name == name })
	if len(matches) == 0 {
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownExercise, name)
	}
	return r.run(matches[0], dataset), nil
}

func (r *Runner) run(exercise Exercise, dataset *config.Dataset) (result Result) {
	logger := r.log.With("exercise", exercise.Name)
	result.Name = exercise.Name

	defer func() {
		if recovered := recover(); recovered != nil {
			result.Output = nil
			result.Err = util.RecoveredPanicToError(recovered)
			logger.Warn("exercise panicked", "error", result.Err)
		}
	}()

	logger.Debug("running exercise")
	result.Output = exercise.Run(dataset)
	logger.Debug("exercise complete")

	return result
}
