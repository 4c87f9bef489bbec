package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/grngxd/tiramisu/bridge"
	"github.com/grngxd/tiramisu/color"
	"github.com/grngxd/tiramisu/constant"
	"github.com/grngxd/tiramisu/icon"
	"github.com/grngxd/tiramisu/key"
	"github.com/grngxd/tiramisu/style"
	"github.com/grngxd/tiramisu/util"
	"github.com/invopop/jsonschema"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(bridgeCmd)
	bridgeCmd.Flags().BoolP("json", "j", false, "Print the members as JSON")
	bridgeCmd.Flags().Bool("schema", false, "Print the JSON schema of the --json output")
	bridgeCmd.Flags().StringP("filter", "f", "", "Only show members whose path fuzzy matches the filter")
	bridgeCmd.Flags().BoolP("source", "s", false, "Print the Lua chunk that installs the namespace")
	bridgeCmd.MarkFlagsMutuallyExclusive("json", "schema", "source")

	bridgeCmd.SetOut(os.Stdout)
}

var bridgeCmd = &cobra.Command{
	Use:   "bridge",
	Short: "Show the namespace published to scripts",
	Long: `Show the functions scripts reach through the tiramisu namespace.
The variant is taken from --variant or the bridge.variant setting.`,
	Example: "  tiramisu bridge --variant minimal\n  tiramisu bridge --filter fs --json",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("schema")) {
			reflector := new(jsonschema.Reflector)
			reflector.Anonymous = true
			reflector.Namer = func(t reflect.Type) string {
				return constant.Namespace + "." + t.Name()
			}

			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(reflector.Reflect([]bridge.Member{})))
			return
		}

		variant, err := bridge.ParseVariant(viper.GetString(key.BridgeVariant))
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("source")) {
			source, err := bridge.Source(variant)
			handleErr(err)
			cmd.Print(string(source))
			return
		}

		members := filterMembers(bridge.Members(variant), lo.Must(cmd.Flags().GetString("filter")))

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(members))
			return
		}

		cmd.Printf(
			"%s %s %s\n\n",
			icon.Get(icon.Bridge),
			style.Bold(constant.Namespace),
			style.Tag(color.Espresso, color.Ladyfinger)(variant.String()),
		)

		for _, m := range members {
			group, _, _ := strings.Cut(m.Path, ".")
			cmd.Printf(
				"  %s(%s) %s %s\n",
				style.Fg(color.Of(group))(m.Path),
				strings.Join(m.Params, ", "),
				style.Faint("->"),
				style.Fg(color.Green)("promise<"+m.Resolves+">"),
			)
			cmd.Printf("    %s\n", style.Faint(m.Global))
		}

		cmd.Printf("\n%s\n", style.Faint(util.Quantify(len(members), "function", "functions")))
	},
}

// filterMembers keeps the members whose path fuzzy matches filter, case-insensitively.
func filterMembers(members []bridge.Member, filter string) []bridge.Member {
	filter = strings.TrimSpace(filter)
	if filter == "" {
		return members
	}

	return lo.Filter(members, func(m bridge.Member, _ int) bool {
		return fuzzy.MatchFold(filter, m.Path)
	})
}

func init() {
	bridgeCmd.AddCommand(bridgeVariantsCmd)
}

var bridgeVariantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "List the bridge variants",
	Run: func(cmd *cobra.Command, args []string) {
		current := viper.GetString(key.BridgeVariant)
		for _, name := range bridge.Variants() {
			marker := " "
			if name == current {
				marker = style.Fg(color.Green)("*")
			}

			variant := lo.Must(bridge.ParseVariant(name))
			cmd.Printf(
				"%s %s %s\n",
				marker,
				style.Bold(name),
				style.Faint(fmt.Sprintf("(%s)", strings.Join(lo.Map(variant.Capabilities(), func(c bridge.Capability, _ int) string {
					return c.String()
				}), ", "))),
			)
		}
	},
}
