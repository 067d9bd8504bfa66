package main

import (
	"os"

	"github.com/Y3K/todos/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
