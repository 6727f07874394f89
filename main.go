// Package main is the entry point for the wdioreport CLI.
package main

import "github.com/awhisler/wdioTest/cmd"

func main() {
	cmd.Execute()
}
