package main

import (
	"airship-delivery/internal/adapters/scenes"
	"airship-delivery/internal/domain"
	"fmt"

	"github.com/spf13/cobra"
)

var scenesCmd = &cobra.Command{
	Use:   "scenes [scene-id]",
	Short: "List scene ids, or print one scene of the script",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runScenes,
}

func runScenes(cmd *cobra.Command, args []string) error {
	var (
		p   *scenes.YAMLProvider
		err error
	)
	if cfg.ScenesPath == "" {
		p, err = scenes.LoadEmbedded()
	} else {
		p, err = scenes.LoadFile(cfg.ScenesPath)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(args) == 0 {
		for _, id := range p.IDs() {
			fmt.Fprintln(out, id)
		}
		fmt.Fprintf(out, "\nfraud customer: %s\n", p.FraudCustomer())
		return nil
	}

	text, err := p.Scene(domain.SceneID(args[0]))
	if err != nil {
		return err
	}
	fmt.Fprintln(out, text)
	return nil
}
