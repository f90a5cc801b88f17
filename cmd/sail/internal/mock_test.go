package internal

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/sailbuild/sail/internal/platform"
	"github.com/sailbuild/sail/internal/scaffold"
)

func needSh(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not found in PATH")
	}
}

// fakeToolchain installs a stand-in cmake for the duration of the test. It
// answers the version query and exits 0 for everything else, producing no
// build output.
func fakeToolchain(t *testing.T) {
	t.Helper()
	needSh(t)

	path := filepath.Join(t.TempDir(), "cmake-fake")
	script := "#!/bin/sh\n" +
		"if [ \"$1\" = \"--version\" ]; then\n" +
		"  echo \"cmake version 3.28.3\"\n" +
		"fi\n" +
		"exit 0\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write fake toolchain: %v", err)
	}
	t.Setenv("SAIL_CMAKE", path)
}

// newProject scaffolds a project named demo and makes it the working
// directory, so commands locate it the way a user invocation would.
func newProject(t *testing.T) string {
	t.Helper()

	parent := t.TempDir()
	if err := scaffold.New(parent, "demo"); err != nil {
		t.Fatalf("scaffold project: %v", err)
	}
	root := filepath.Join(parent, "demo")
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("chdir: %v", err)
	}
	if err := os.Chdir(root); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(cwd); err != nil {
			t.Errorf("restore working directory: %v", err)
		}
	})
	return root
}

// writeArtifact plants an executable where the debug build would put it.
func writeArtifact(t *testing.T, root, script string) {
	t.Helper()

	dir := filepath.Join(root, "target", "debug")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir target: %v", err)
	}
	path := platform.Host().ExecutablePath(dir, "demo")
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write artifact: %v", err)
	}
}

// execute drives the root command the way main does, returning the command
// error instead of exiting the process.
func execute(args ...string) error {
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}
