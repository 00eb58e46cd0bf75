package system

//go:generate counterfeiter -o fake_step_runner/fake_step_runner.go . StepRunner
type StepRunner interface {
	Run() error
}

// Initializer runs the container's setup steps in order, stopping at the
// first failure.
type Initializer struct {
	Steps []StepRunner
}

func (i *Initializer) Init() error {
	for _, step := range i.Steps {
		if err := step.Run(); err != nil {
			return err
		}
	}

	return nil
}
