package cmd

import (
	"github.com/grngxd/tiramisu/app"
	"github.com/grngxd/tiramisu/bridge"
	"github.com/grngxd/tiramisu/filesystem"
	"github.com/grngxd/tiramisu/history"
	"github.com/grngxd/tiramisu/key"
	"github.com/grngxd/tiramisu/log"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(runCmd)
	addRuntimeFlags(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a Lua script with the bridge installed",
	Long: `Run a Lua 5.1 script. The host functions are injected and the tiramisu
namespace is installed before the script starts.`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionHistory,
	Example:           "  tiramisu run ./hello.lua\n  tiramisu run --variant minimal --root ./data ./list.lua",
	Run: func(cmd *cobra.Command, args []string) {
		a, err := newRuntime(cmd)
		handleErr(err)
		defer a.Close()

		handleErr(a.DoFile(args[0]))

		if err := history.Remember(args[0]); err != nil {
			log.Warnf("could not remember %s: %s", args[0], err)
		}
	},
}

// completionHistory offers recently run scripts before falling back to file completion.
func completionHistory(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return history.Suggest(toComplete), cobra.ShellCompDirectiveDefault
}

func addRuntimeFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("no-libs", false, "Do not preload the bundled Lua modules")
	cmd.Flags().Bool("no-cache", false, "Compile scripts again instead of using the bytecode cache")
	cmd.Flags().StringP("root", "r", "", "Confine the filesystem functions to this directory")
}

// newRuntime builds a runtime from the configuration and the flags of cmd.
func newRuntime(cmd *cobra.Command) (*app.App, error) {
	options, err := app.OptionsFromConfig()
	if err != nil {
		return nil, err
	}

	if lo.Must(cmd.Flags().GetBool("no-libs")) {
		options.Libs = false
	}

	if lo.Must(cmd.Flags().GetBool("no-cache")) {
		options.BytecodeCache = false
	}

	options.ScriptFs = filesystem.API()
	options.Fs = filesystem.Sandbox(lo.Must(cmd.Flags().GetString("root")))

	if options.Variant.Has(bridge.CapNotify) {
		checkNotifier(viper.GetString(key.NotificationsBackend))
	}

	return app.New(options)
}
