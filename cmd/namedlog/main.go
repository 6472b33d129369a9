package main

import (
	"os"

	"github.com/philipp01105/namedlog/cmd/namedlog/cmd"
)

func main() {
	os.Exit(cmd.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
