package main

import (
	"github.com/healthdesk/registry/api"
)

func main() {
	api.MainLoop()
}
