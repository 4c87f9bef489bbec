package cmd

import (
	"os"
	"runtime"
	"strings"
	"text/template"

	"github.com/grngxd/tiramisu/bridge"
	"github.com/grngxd/tiramisu/color"
	"github.com/grngxd/tiramisu/constant"
	"github.com/grngxd/tiramisu/style"
	"github.com/grngxd/tiramisu/version"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	lua "github.com/yuin/gopher-lua"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.SetOut(os.Stdout)
	versionCmd.Flags().BoolP("short", "s", false, "Only print the version number")
}

var versionTemplate = lo.Must(template.New("version").Funcs(template.FuncMap{
	"faint":  style.Faint,
	"bold":   style.Bold,
	"accent": style.Fg(color.Ladyfinger),
}).Parse(`{{ accent "▇▇▇" }} {{ accent .App }}

  {{ faint "Version" }}         {{ bold .Version }}
  {{ faint "Git Commit" }}      {{ bold .Revision }}
  {{ faint "Build Date" }}      {{ bold .BuiltAt }}
  {{ faint "Built By" }}        {{ bold .BuiltBy }}
  {{ faint "Platform" }}        {{ bold .OS }}/{{ bold .Arch }}
  {{ faint "Lua" }}             {{ bold .Lua }}
  {{ faint "Bridge" }}          {{ bold .Variants }}
`))

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and build information",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(constant.Version)
			return
		}

		defer version.Notify()

		handleErr(versionTemplate.Execute(cmd.OutOrStdout(), struct {
			App, Version, OS, Arch, BuiltAt, BuiltBy, Revision, Lua, Variants string
		}{
			App:      constant.Tiramisu,
			Version:  constant.Version,
			OS:       runtime.GOOS,
			Arch:     runtime.GOARCH,
			BuiltAt:  strings.TrimSpace(constant.BuiltAt),
			BuiltBy:  constant.BuiltBy,
			Revision: constant.Revision,
			Lua:      lua.LuaVersion,
			Variants: strings.Join(bridge.Variants(), ", "),
		}))
	},
}
