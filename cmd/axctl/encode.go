package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/axtree/pkg/tree"
	"github.com/joshuapare/axtree/pkg/wire"
)

var encodeOutput string

func init() {
	cmd := newEncodeCmd()
	cmd.Flags().StringVarP(&encodeOutput, "output", "o", "", "Output file (required)")
	_ = cmd.MarkFlagRequired("output")
	rootCmd.AddCommand(cmd)
}

func newEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode <script>",
		Short: "Convert a YAML script to a MessagePack update stream",
		Long: `The encode command writes every update of a script to a MessagePack
stream, the form out-of-process adapters receive. Expectations are not
encoded, and neither are script options: a stream always replays with
the default options, so pass --limits strict to replay a script that
sets strict_relations or limits.

Example:
  axctl encode hello_world.yaml -o hello_world.bin
  axctl replay hello_world.bin`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(args)
		},
	}
	return cmd
}

func runEncode(args []string) error {
	s, err := loadScript(args[0])
	if err != nil {
		return err
	}

	f, err := os.Create(encodeOutput)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	enc := wire.NewEncoder(f)
	for i, st := range s.Steps {
		if err := enc.Encode(st.Update); err != nil {
			f.Close()
			return fmt.Errorf("update %d: %w", i+1, err)
		}
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	info, err := os.Stat(encodeOutput)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]any{
			"file":    encodeOutput,
			"updates": len(s.Steps),
			"bytes":   info.Size(),
		})
	}
	printInfo("Wrote %d updates (%d bytes) to %s\n", len(s.Steps), info.Size(), encodeOutput)
	if s.Options != tree.DefaultOptions() {
		printInfo("%s script options are not encoded; replay with --limits strict\n", colorize(colorYellow, "Note:"))
	}
	return nil
}
