// Command sail builds and runs C++ projects described by a Sail.toml
// manifest, driving CMake behind a Cargo-style workflow.
package main

import "github.com/sailbuild/sail/cmd/sail/internal"

func main() {
	internal.Execute()
}
