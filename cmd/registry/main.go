package main

import (
	"github.com/healthdesk/registry/cmd/registry/command"
)

func main() {
	command.Execute()
}
