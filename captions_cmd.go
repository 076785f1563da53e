package main

import (
	"fmt"
	"os"

	"github.com/milk9111/replaycontrols/captions"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var captionsCmd = &cobra.Command{
	Use:   "captions",
	Short: "Inspect caption files",
}

var captionsShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Print a caption set with defaults applied",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCaptionsShow,
}

var captionsCheckCmd = &cobra.Command{
	Use:   "check file...",
	Short: "Validate caption files and list empty fields",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCaptionsCheck,
}

func init() {
	captionsCmd.AddCommand(captionsShowCmd, captionsCheckCmd)
	rootCmd.AddCommand(captionsCmd)
}

func runCaptionsShow(cmd *cobra.Command, args []string) error {
	name := captions.DefaultFile
	if len(args) > 0 {
		name = args[0]
	}
	c, err := captions.LoadCaptions(name)
	if err != nil {
		return err
	}
	out, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("captions: marshal %s: %w", name, err)
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}

func runCaptionsCheck(cmd *cobra.Command, args []string) error {
	failed := 0
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		missing, err := captions.Check(data)
		switch {
		case err != nil:
			failed++
			fmt.Fprintf(cmd.OutOrStdout(), "%s: invalid: %v\n", path, err)
		case len(missing) > 0:
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok, defaults used for %v\n", path, missing)
		default:
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", path)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d caption files invalid", failed, len(args))
	}
	return nil
}
