// Package main provides the entry point for the rookery-deps CLI tool.
package main

import "rookery-deps/internal/cli"

func main() {
	cli.Execute()
}
