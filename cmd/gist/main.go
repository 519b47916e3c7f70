// Package main provides the gist CLI tool for managing GitHub gists.
package main

import "github.com/mscno/gist/cmd/gist/commands"

func main() {
	commands.Execute(Version)
}
