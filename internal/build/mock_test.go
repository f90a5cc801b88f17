package build

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/sailbuild/sail/internal/logging"
)

type runnerCall struct {
	dir  string
	name string
	args []string
}

// mockRunner implements buildsys.Runner for testing. Run and Output
// invocations are recorded separately and delegate to the configured
// functions; the zero value reports success everywhere.
type mockRunner struct {
	runFunc    func(ctx context.Context, dir, name string, args ...string) (int, error)
	outputFunc func(ctx context.Context, dir, name string, args ...string) (string, error)

	runCalls    []runnerCall
	outputCalls []runnerCall
}

func (m *mockRunner) Run(ctx context.Context, dir, name string, args ...string) (int, error) {
	m.runCalls = append(m.runCalls, runnerCall{dir: dir, name: name, args: args})
	if m.runFunc != nil {
		return m.runFunc(ctx, dir, name, args...)
	}
	return 0, nil
}

func (m *mockRunner) Output(ctx context.Context, dir, name string, args ...string) (string, error) {
	m.outputCalls = append(m.outputCalls, runnerCall{dir: dir, name: name, args: args})
	if m.outputFunc != nil {
		return m.outputFunc(ctx, dir, name, args...)
	}
	return "cmake version 3.28.3\n", nil
}

func testContext() context.Context {
	logger := zerolog.Nop()
	return logging.WithLogger(context.Background(), &logger)
}
