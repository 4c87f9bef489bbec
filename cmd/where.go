package cmd

import (
	"os"

	"github.com/grngxd/tiramisu/color"
	"github.com/grngxd/tiramisu/open"
	"github.com/grngxd/tiramisu/style"
	"github.com/grngxd/tiramisu/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

type whereTarget struct {
	name     string
	where    func() string
	argLong  string
	argShort mo.Option[string]
	hidden   bool
}

var whereTargets = []*whereTarget{
	{"Config", where.Config, "config", mo.Some("c"), false},
	{"Scripts", where.Scripts, "scripts", mo.Some("s"), false},
	{"Logs", where.Logs, "logs", mo.Some("l"), false},
	{"Cache", where.Cache, "cache", mo.None[string](), true},
	{"Temp", where.Temp, "temp", mo.None[string](), true},
}

func init() {
	rootCmd.AddCommand(whereCmd)

	for _, t := range whereTargets {
		if t.argShort.IsPresent() {
			whereCmd.Flags().BoolP(t.argLong, t.argShort.MustGet(), false, t.name+" path")
		} else {
			whereCmd.Flags().Bool(t.argLong, false, t.name+" path")
		}

		if t.hidden {
			lo.Must0(whereCmd.Flags().MarkHidden(t.argLong))
		}
	}

	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(whereTargets, func(t *whereTarget, _ int) string {
		return t.argLong
	})...)

	whereCmd.Flags().BoolP("open", "o", false, "Open the selected path with the default handler")

	whereCmd.SetOut(os.Stdout)
}

var whereCmd = &cobra.Command{
	Use:     "where",
	Short:   "Show where tiramisu keeps its files",
	Example: "  tiramisu where --scripts --open",
	Run: func(cmd *cobra.Command, args []string) {
		selected, ok := lo.Find(whereTargets, func(t *whereTarget) bool {
			return lo.Must(cmd.Flags().GetBool(t.argLong))
		})

		if ok {
			path := selected.where()
			cmd.Println(path)

			if lo.Must(cmd.Flags().GetBool("open")) {
				handleErr(open.Start(path))
			}
			return
		}

		headerStyle := style.New().Bold(true).Foreground(color.HiPurple).Render
		visible := lo.Reject(whereTargets, func(t *whereTarget, _ int) bool {
			return t.hidden
		})

		for i, t := range visible {
			cmd.Printf("%s %s\n", headerStyle(t.name+"?"), style.Fg(color.Yellow)("--"+t.argLong))
			cmd.Println(t.where())

			if i < len(visible)-1 {
				cmd.Println()
			}
		}
	},
}
