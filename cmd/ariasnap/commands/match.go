package commands

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mackee/ariasnap"
	"github.com/mackee/ariasnap/internal/templateyaml"
)

func newMatchCmd() *cobra.Command {
	var forAI bool
	var refPrefix string

	cmd := &cobra.Command{
		Use:   "match <file.html> <template.aria.yaml>",
		Short: "Match an HTML fixture's accessibility tree against a template",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := loadFixture(args[0])
			if err != nil {
				return err
			}

			templateSource, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("read template: %w", err)
			}
			template, err := templateyaml.Parse(string(templateSource))
			if err != nil {
				return fmt.Errorf("parse template: %w", err)
			}

			engine := ariasnap.NewEngine()
			buildOpts := ariasnap.DefaultBuildOptions()
			buildOpts.ForAI = forAI
			buildOpts.RefPrefix = refPrefix
			logger := log.With().Str("cmd", "match").Logger()
			buildOpts.Logger = &logger
			matchOpts := ariasnap.MatchOptions{Logger: &logger}

			result := engine.MatchesAriaTree(root, template, buildOpts, matchOpts)

			if len(result.Matches) > 0 {
				fmt.Printf("matched %d subtree(s)\n", len(result.Matches))
				return nil
			}

			fmt.Println("no match")
			if result.Received.HasDiffTarget {
				fmt.Println("closest candidate:")
				fmt.Println(result.Received.DiffTarget)
			} else {
				fmt.Println("received:")
				fmt.Println(result.Received.Raw)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&forAI, "for-ai", false, "enable ref assignment and the geometric visibility fallback")
	cmd.Flags().StringVar(&refPrefix, "ref-prefix", "", "prefix for minted ref ids")

	return cmd
}
