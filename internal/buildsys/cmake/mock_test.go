package cmake

import "context"

type runnerCall struct {
	dir  string
	name string
	args []string
}

// mockRunner implements buildsys.Runner for testing. It records every
// invocation and delegates to the configured functions.
type mockRunner struct {
	runFunc    func(ctx context.Context, dir, name string, args ...string) (int, error)
	outputFunc func(ctx context.Context, dir, name string, args ...string) (string, error)

	calls []runnerCall
}

func (m *mockRunner) Run(ctx context.Context, dir, name string, args ...string) (int, error) {
	m.calls = append(m.calls, runnerCall{dir: dir, name: name, args: args})
	if m.runFunc != nil {
		return m.runFunc(ctx, dir, name, args...)
	}
	return 0, nil
}

func (m *mockRunner) Output(ctx context.Context, dir, name string, args ...string) (string, error) {
	m.calls = append(m.calls, runnerCall{dir: dir, name: name, args: args})
	if m.outputFunc != nil {
		return m.outputFunc(ctx, dir, name, args...)
	}
	return "", nil
}
