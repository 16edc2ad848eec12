// Command ariasnap demonstrates the accessibility-tree matching engine
// end-to-end: parse an HTML fixture, build its aria snapshot, and either
// render it or match it against a YAML template, the way the teacher's
// cmd/readability is a thin demonstration shell around its library.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mackee/ariasnap/cmd/ariasnap/commands"
)

func main() {
	_ = godotenv.Load()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	rootCmd := commands.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
