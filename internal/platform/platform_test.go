package platform

import (
	"path/filepath"
	"testing"
)

func TestExeSuffix(t *testing.T) {
	tests := []struct {
		goos string
		want string
	}{
		{"windows", ".exe"},
		{"linux", ""},
		{"darwin", ""},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			if got := (Platform{GOOS: tt.goos}).ExeSuffix(); got != tt.want {
				t.Errorf("ExeSuffix() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExecutablePath(t *testing.T) {
	dir := filepath.Join("target", "debug")

	tests := []struct {
		goos string
		name string
		want string
	}{
		{"linux", "app", filepath.Join(dir, "app")},
		{"darwin", "app", filepath.Join(dir, "app")},
		{"windows", "app", filepath.Join(dir, "app.exe")},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			if got := (Platform{GOOS: tt.goos}).ExecutablePath(dir, tt.name); got != tt.want {
				t.Errorf("ExecutablePath(%q, %q) = %q, want %q", dir, tt.name, got, tt.want)
			}
		})
	}
}

func TestQuotePath(t *testing.T) {
	tests := []struct {
		name string
		goos string
		path string
		want string
	}{
		{"windows always wraps", "windows", `C:\My Projects\app`, `"C:\My Projects\app"`},
		{"windows wraps plain paths too", "windows", `C:\sail`, `"C:\sail"`},
		{"posix plain path unchanged", "linux", "/home/me/app", "/home/me/app"},
		{"posix space quoted", "linux", "/home/me/my project", "'/home/me/my project'"},
		{"posix dollar quoted", "darwin", "/tmp/$dir", "'/tmp/$dir'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := (Platform{GOOS: tt.goos}).QuotePath(tt.path); got != tt.want {
				t.Errorf("QuotePath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestQuoteCommand(t *testing.T) {
	p := Platform{GOOS: "linux"}
	got := p.QuoteCommand("cmake", "-S", "/home/me/my project", "-B", "/home/me/my project/target/debug/build")
	want := "cmake -S '/home/me/my project' -B '/home/me/my project/target/debug/build'"
	if got != want {
		t.Errorf("QuoteCommand = %q, want %q", got, want)
	}

	w := Platform{GOOS: "windows"}
	got = w.QuoteCommand("cmake", "--build", `C:\proj\target\debug\build`)
	want = `"cmake" "--build" "C:\proj\target\debug\build"`
	if got != want {
		t.Errorf("QuoteCommand = %q, want %q", got, want)
	}
}
