package cmd

import (
	"fmt"

	"github.com/grngxd/tiramisu/history"
	"github.com/grngxd/tiramisu/icon"
	"github.com/grngxd/tiramisu/util"
	"github.com/grngxd/tiramisu/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	clear    func() error
}

func removeAll(location func() string) func() error {
	return func() error {
		return util.Delete(location())
	}
}

var clearTargets = []clearTarget{
	{"cache directory", "cache", mo.Some("c"), removeAll(where.Cache)},
	{"logs directory", "logs", mo.Some("l"), removeAll(where.Logs)},
	{"temp directory", "temp", mo.Some("t"), removeAll(where.Temp)},
	{"script history", "history", mo.Some("s"), history.Forget},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("Clear the %s", target.name)
		if short, ok := target.argShort.Get(); ok {
			clearCmd.Flags().BoolP(target.argLong, short, false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove cached and temporary files",
	Run: func(cmd *cobra.Command, args []string) {
		selected := lo.Filter(clearTargets, func(t clearTarget, _ int) bool {
			return lo.Must(cmd.Flags().GetBool(t.argLong))
		})

		if len(selected) == 0 {
			handleErr(cmd.Help())
			return
		}

		for _, target := range selected {
			erase := util.PrintErasable(fmt.Sprintf("%s Clearing the %s...", icon.Get(icon.Progress), target.name))
			err := target.clear()
			erase()
			handleErr(err)

			fmt.Printf("%s %s cleared\n", icon.Get(icon.Success), util.Capitalize(target.name))
		}
	},
}
