//go:build mage

// Package main provides build targets for convertly using Mage.
//
// Usage:
//
//	mage build          Compile the CLI and the API server to bin/
//	mage test           Run all tests
//	mage lint           Run golangci-lint
//	mage docs           Regenerate the swagger documentation in cmd/docs
//	mage clean          Remove build artifacts
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo     = "go"
	binSwag   = "swag"
	binLint   = "golangci-lint"
	binaryDir = "bin"
)

// binaries maps each output binary to its main package.
var binaries = map[string]string{
	"convertly":         "./cmd/convertly",
	"convertly_backend": "./cmd/convertly_backend",
}

// Build compiles the binaries to bin/.
func Build() error {
	mg.Deps(Docs)
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	version, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil {
		version = "dev"
	}
	for name, pkg := range binaries {
		if err := sh.RunV(binGo, "build", "-v",
			"-ldflags", "-X main.version="+version,
			"-o", filepath.Join(binaryDir, name), pkg); err != nil {
			return err
		}
	}
	return nil
}

// Test runs all tests.
func Test() error {
	return sh.RunV(binGo, "test", "./...")
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV(binLint, "run", "./...")
}

// Docs regenerates the swagger documentation from the handler annotations.
func Docs() error {
	return sh.RunV(binSwag, "init", "-g", "cmd/convertly_backend/main.go", "-o", "cmd/docs", "--outputTypes", "go")
}

// Clean removes build artifacts.
func Clean() error {
	return os.RemoveAll(binaryDir)
}
