package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

const notDetected = "not found"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long: `Displays the build version of kitchensink and the toolchain it drives:
cargo, rustc and cargo-mutants as detected from the project directory.`,
		Run: func(cmd *cobra.Command, _ []string) {
			if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
				cmd.Println("kitchensink\t", info.Main.Version)
				cmd.Println("go\t\t", info.GoVersion)
			} else {
				cmd.Println("kitchensink\t unknown")
			}

			meta := envAdapter.Collect(commandContext(cmd), mutationConfig().ProjectDir)

			cmd.Println("cargo-mutants\t", orNotDetected(meta.CargoMutantsVersion))
			cmd.Println("cargo\t\t", orNotDetected(meta.CargoVersion))
			cmd.Println("rustc\t\t", orNotDetected(meta.RustcVersion))
		},
	}
}

func orNotDetected(version string) string {
	if version == "" {
		return notDetected
	}

	return version
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
