//go:build tools

package main

// Pins build tooling so `go mod` tracks the versions used in CI.
import (
	_ "github.com/go-task/task/v3/cmd/task"
	_ "github.com/golangci/golangci-lint/v2/cmd/golangci-lint"
)
