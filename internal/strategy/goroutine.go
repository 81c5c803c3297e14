package strategy

// PerTask runs each unit of work on a fresh goroutine.
//
// There is no ceiling and no queue: every call gets its own goroutine and
// blocks until it finishes. The goroutine is discarded afterwards. This is
// the baseline the pool strategies are compared against.
type PerTask struct{}

// NewPerTask creates the unbounded per-task strategy.
func NewPerTask() *PerTask {
	return &PerTask{}
}

// Mode returns ModeGoroutine.
func (s *PerTask) Mode() Mode {
	return ModeGoroutine
}

// Run executes work on its own goroutine and blocks for the result.
func (s *PerTask) Run(work Work) (string, error) {
	done := make(chan outcome, 1)
	go func() {
		value, err := work()
		done <- outcome{value: value, err: err}
	}()
	res := <-done
	return res.value, res.err
}

var _ Strategy = (*PerTask)(nil)
