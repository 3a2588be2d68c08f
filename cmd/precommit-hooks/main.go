package main

import "precommit-hooks/internal/cli"

func main() {
	cli.Execute()
}
