// Package cmd implements the tiramisu command line.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/grngxd/tiramisu/bridge"
	"github.com/grngxd/tiramisu/color"
	"github.com/grngxd/tiramisu/constant"
	"github.com/grngxd/tiramisu/icon"
	"github.com/grngxd/tiramisu/key"
	"github.com/grngxd/tiramisu/log"
	"github.com/grngxd/tiramisu/style"
	"github.com/grngxd/tiramisu/util"
	"github.com/grngxd/tiramisu/version"
	"github.com/grngxd/tiramisu/where"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Icons variant")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("variant", "B", "", "Bridge variant published to scripts (full, minimal)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("variant", completionVariants))
	lo.Must0(viper.BindPFlag(key.BridgeVariant, rootCmd.PersistentFlags().Lookup("variant")))

	rootCmd.PersistentFlags().BoolP("debug", "D", false, "Log every injected call")
	lo.Must0(viper.BindPFlag(key.RuntimeDebug, rootCmd.PersistentFlags().Lookup("debug")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})

	go func() {
		_ = util.Delete(where.Temp())
	}()
}

var rootCmd = &cobra.Command{
	Use:   constant.Tiramisu,
	Short: "Lua scripts with a small, stable host bridge",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.Ladyfinger).Render("    - Lua scripts with a small, stable host bridge"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		handleErr(cmd.Help())
	},
}

// Execute runs the root command.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func completionVariants(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return bridge.Variants(), cobra.ShellCompDirectiveNoFileComp
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
