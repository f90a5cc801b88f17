// Package buildsys defines what sail needs from a build toolchain: a
// configure/build lifecycle driven through an injectable process runner.
package buildsys

import "context"

// Toolchain captures the two-step lifecycle sail drives. Implementations
// translate each step into child process invocations and interpret nothing
// but their exit status; a failed Configure means Build must not run.
type Toolchain interface {
	Configure(ctx context.Context, args ...string) error
	Build(ctx context.Context, args ...string) error
}
