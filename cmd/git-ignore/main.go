package main

import (
	"os"
	"os/signal"

	"github.com/gitutils/git-ignore/internal/cli"
	"github.com/gitutils/git-ignore/internal/ui"
)

func main() {
	// Ctrl+C between staging and rename leaves the target untouched; all
	// that is left to do is report the interrupt with the usual code.
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	go func() {
		<-interrupts
		ui.Fail("Interrupted")
		os.Exit(cli.ExitInterrupted)
	}()

	os.Exit(cli.Execute(os.Args[1:]))
}
