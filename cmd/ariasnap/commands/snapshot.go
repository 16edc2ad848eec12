package commands

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mackee/ariasnap"
	"github.com/mackee/ariasnap/internal/dom"
)

func newSnapshotCmd() *cobra.Command {
	var mode string
	var forAI bool
	var refPrefix string

	cmd := &cobra.Command{
		Use:   "snapshot <file.html>",
		Short: "Render an HTML fixture's accessibility tree as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := loadFixture(args[0])
			if err != nil {
				return err
			}

			engine := ariasnap.NewEngine()
			buildOpts := ariasnap.DefaultBuildOptions()
			buildOpts.ForAI = forAI
			buildOpts.RefPrefix = refPrefix
			logger := log.With().Str("cmd", "snapshot").Logger()
			buildOpts.Logger = &logger

			snap := engine.Build(root, buildOpts)

			renderMode := ariasnap.RenderModeRaw
			if mode == "regex" {
				renderMode = ariasnap.RenderModeRegex
			}

			out := ariasnap.RenderAriaTree(snap, ariasnap.RenderOptions{Mode: renderMode, ForAI: forAI})
			fmt.Println(out)
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "raw", "render mode: raw or regex")
	cmd.Flags().BoolVar(&forAI, "for-ai", false, "enable ref assignment and the geometric visibility fallback")
	cmd.Flags().StringVar(&refPrefix, "ref-prefix", "", "prefix for minted ref ids")

	return cmd
}

func loadFixture(path string) (*dom.VElement, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}

	doc, err := ariasnap.ParseHTML(string(body), "")
	if err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}

	root := doc.Body
	if root == nil {
		root = doc.DocumentElement
	}
	if root == nil {
		return nil, fmt.Errorf("parse fixture: no root element found in %s", path)
	}
	return root, nil
}
