package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/axtree/pkg/tree"
)

var validateLimits string

func init() {
	cmd := newValidateCmd()
	cmd.Flags().StringVar(&validateLimits, "limits", "script", "Validation options (script, default, strict)")
	rootCmd.AddCommand(cmd)
}

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <script>...",
		Short: "Check that every update is accepted or rejected as expected",
		Long: `The validate command replays each script and checks every update
against its expectation: updates without expect_error must be accepted,
updates with expect_error must be rejected with that error kind.

Limits presets:
  script  - Options declared by the script (default)
  default - Lenient relations, no size limits
  strict  - Dangling relations rejected, size limits enforced

Example:
  axctl validate testdata/scripts/*.yaml
  axctl validate app.yaml --limits strict
  axctl validate app.yaml --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args)
		},
	}
	return cmd
}

type validateResult struct {
	File     string       `json:"file"`
	Limits   string       `json:"limits"`
	Valid    bool         `json:"valid"`
	Error    string       `json:"error,omitempty"`
	Failures []stepResult `json:"failures,omitempty"`
}

func runValidate(args []string) error {
	var reports []validateResult
	failed := 0

	for _, scriptPath := range args {
		printVerbose("Validating script: %s\n", scriptPath)

		res := validateResult{File: scriptPath, Limits: validateLimits}
		s, err := loadScript(scriptPath)
		var opts tree.Options
		if err == nil {
			opts, err = scriptOptions(s, validateLimits)
		}
		if err == nil {
			_, results := replayScript(s, opts, 0)
			for _, r := range results {
				if !r.OK() {
					res.Failures = append(res.Failures, r)
				}
			}
		}
		if err != nil {
			res.Error = err.Error()
		}
		res.Valid = err == nil && len(res.Failures) == 0
		if !res.Valid {
			failed++
		}
		reports = append(reports, res)
	}

	// Output as JSON if requested
	if jsonOut {
		if err := printJSON(reports); err != nil {
			return err
		}
	} else {
		for _, res := range reports {
			if res.Valid {
				printInfo("%s %s\n", colorize(colorGreen, "✓"), res.File)
				continue
			}
			printInfo("%s %s\n", colorize(colorRed, "✗"), res.File)
			if res.Error != "" {
				printInfo("  %s\n", res.Error)
			}
			for _, f := range res.Failures {
				printInfo("  update %d (line %d): %s\n", f.Step, f.Line, describeFailure(f))
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d scripts failed validation", failed, len(args))
	}
	return nil
}

func describeFailure(r stepResult) string {
	switch {
	case r.Expected == "":
		return "rejected: " + r.Error
	case r.Applied:
		return fmt.Sprintf("expected %s, but the update was accepted", r.Expected)
	default:
		return fmt.Sprintf("expected %s, got %s: %s", r.Expected, r.Kind, r.Error)
	}
}
