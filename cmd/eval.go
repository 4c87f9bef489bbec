package cmd

import (
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(evalCmd)
	addRuntimeFlags(evalCmd)
}

var evalCmd = &cobra.Command{
	Use:   "eval [code]",
	Short: "Run a Lua snippet with the bridge installed",
	Long:  `Run a Lua snippet. When no code is given it is read from standard input.`,
	Args:  cobra.MaximumNArgs(1),
	Example: `  tiramisu eval 'for _, n in ipairs(tiramisu.fs.readDir("."):await()) do print(n) end'
  echo 'print(tiramisu.notifications ~= nil)' | tiramisu eval`,
	Run: func(cmd *cobra.Command, args []string) {
		var code string
		if len(args) == 1 {
			code = args[0]
		} else {
			data, err := io.ReadAll(os.Stdin)
			handleErr(err)
			code = string(data)
		}

		a, err := newRuntime(cmd)
		handleErr(err)
		defer a.Close()

		handleErr(a.DoString(strings.TrimSpace(code)))
	},
}
