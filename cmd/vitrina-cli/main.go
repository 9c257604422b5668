package main

import (
	"github.com/dreyes/vitrina/cmd/vitrina-cli/cmd"
)

func main() {
	cmd.Execute()
}
