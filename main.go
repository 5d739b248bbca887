package main

import (
	cmd "github.com/lingokit/lingo/cmd/lingo"
	"github.com/lingokit/lingo/internal"
)

var log = internal.GetLogger()

func main() {
	log.Info("Starting lingo")
	cmd.Execute()
}
