package main

import (
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/joshuapare/axtree/pkg/wire"
)

// Set by the release build through -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type versionInfo struct {
	Version    string `json:"version"`
	Commit     string `json:"commit"`
	Built      string `json:"built"`
	GoVersion  string `json:"go_version"`
	WireFormat int    `json:"wire_format"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := currentVersion()
		if jsonOut {
			return printJSON(info)
		}
		printInfo("axctl %s\n", info.Version)
		printInfo("  commit:      %s\n", info.Commit)
		printInfo("  built:       %s\n", info.Built)
		printInfo("  go:          %s\n", info.GoVersion)
		printInfo("  wire format: v%d\n", info.WireFormat)
		return nil
	},
}

func currentVersion() versionInfo {
	info := versionInfo{
		Version:    version,
		Commit:     commit,
		Built:      date,
		GoVersion:  runtime.Version(),
		WireFormat: wire.FormatVersion,
	}
	// go install builds carry the module version instead of ldflags.
	if bi, ok := debug.ReadBuildInfo(); ok && info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	return info
}

func init() {
	rootCmd.Version = version
	rootCmd.AddCommand(versionCmd)
}
