// Package main is the entry point for the kitchensink CLI.
package main

import "github.com/moofone/kitchensink-testing/cmd"

func main() {
	cmd.Execute()
}
