package main

import "github.com/pfrederiksen/hockey-fixtures/internal/cli"

func main() {
	cli.Execute()
}
