package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	replayLimits string
	replaySteps  int
)

func init() {
	cmd := newReplayCmd()
	cmd.Flags().StringVar(&replayLimits, "limits", "script", "Validation options (script, default, strict)")
	cmd.Flags().IntVar(&replaySteps, "steps", 0, "Replay only the first N updates (0 for all)")
	rootCmd.AddCommand(cmd)
}

func newReplayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay <script>",
		Short: "Replay updates and print change notifications",
		Long: `The replay command applies each update of a script in order and prints
the change notifications an adapter would raise. Rejected updates are
reported and skipped, leaving the tree at its last valid state.

Example:
  axctl replay testdata/scripts/hello_world.yaml
  axctl replay session.bin --limits strict
  axctl replay hello_world.yaml --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(args)
		},
	}
	return cmd
}

func runReplay(args []string) error {
	scriptPath := args[0]

	printVerbose("Loading script: %s\n", scriptPath)

	s, err := loadScript(scriptPath)
	if err != nil {
		return err
	}
	opts, err := scriptOptions(s, replayLimits)
	if err != nil {
		return err
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("%s: script has no updates", scriptPath)
	}

	_, results := replayScript(s, opts, replaySteps)

	// Output as JSON if requested
	if jsonOut {
		return printJSON(map[string]any{
			"script": s.Name,
			"steps":  results,
		})
	}

	printInfo("Replaying %s (%d updates)\n", s.Name, len(results))
	for i := range results {
		r := &results[i]
		printInfo("\nupdate %d", r.Step)
		if r.Line > 0 {
			printVerbose(" (line %d)", r.Line)
		}
		switch {
		case !r.Applied:
			printInfo(": %s %s\n", colorize(colorRed, "rejected"), r.Error)
		case r.Initial:
			printInfo(": initial tree, %d nodes\n", r.Nodes)
		case r.batch.IsEmpty():
			printInfo(": %s\n", colorize(colorDim, "no changes"))
		default:
			printInfo(": %d changes, %d nodes\n", r.batch.Len(), r.Nodes)
			for _, c := range r.batch.Changes() {
				printInfo("  %s\n", formatChange(c))
			}
		}
	}
	return nil
}
