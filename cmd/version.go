package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

const devVersion = "(devel)"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the wdioreport build version, its VCS revision when known, and the Go version used to build it.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			info, ok := debug.ReadBuildInfo()
			if !ok {
				cmd.Println("wdioreport version unknown")
				return
			}

			version := info.Main.Version
			if version == "" {
				version = devVersion
			}

			cmd.Printf("wdioreport %s\n", version)

			for _, setting := range info.Settings {
				if setting.Key == "vcs.revision" {
					cmd.Printf("revision\t%s\n", setting.Value)
				}
			}

			cmd.Printf("go\t%s\n", info.GoVersion)
		},
	}
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
