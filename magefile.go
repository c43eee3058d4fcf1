//go:build mage
// +build mage

package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/magefile/mage/mg"
)

// Default target to run when none is specified
// If not set, running mage will list available targets
var Default = Build

// Build compiles both executables into ./bin
func Build() error {
	mg.Deps(BuildDeadtime)
	mg.Deps(BuildSimulate)
	fmt.Println("Compilation finished")
	return nil
}

// BuildDeadtime needs cgo and the HDF5 C library for the file reader
func BuildDeadtime() error {
	fmt.Println("Building deadtime executable...")
	ldflags := os.Getenv("CGO_LDFLAGS")
	cflags := os.Getenv("CGO_CFLAGS")
	cmd := exec.Command("go", "build", "-o", "./bin/deadtime", "./deadtime")
	cmd.Env = append(os.Environ(),
		"CGO_ENABLED=1",
		fmt.Sprintf("CGO_LDFLAGS=%s", ldflags),
		fmt.Sprintf("CGO_CFLAGS=%s", cflags))
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func BuildSimulate() error {
	fmt.Println("Building simulate executable...")
	cmd := exec.Command("go", "build", "-o", "./bin/simulate", "./simulate")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Test runs the unit tests of the packages that do not need HDF5
func Test() error {
	cmd := exec.Command("go", "test", "./pkg", "./pkg/logging", "./simulate")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
