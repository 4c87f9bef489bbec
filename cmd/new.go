package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/AlecAivazis/survey/v2"
	"github.com/grngxd/tiramisu/bridge"
	"github.com/grngxd/tiramisu/color"
	"github.com/grngxd/tiramisu/constant"
	"github.com/grngxd/tiramisu/filesystem"
	"github.com/grngxd/tiramisu/icon"
	"github.com/grngxd/tiramisu/key"
	"github.com/grngxd/tiramisu/style"
	"github.com/grngxd/tiramisu/util"
	"github.com/grngxd/tiramisu/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(newCmd)
	newCmd.Flags().StringP("author", "a", "", "Author written to the script header")
	newCmd.Flags().StringP("dir", "d", "", "Directory to create the script in (defaults to the scripts directory)")
	newCmd.Flags().BoolP("force", "f", false, "Overwrite an existing script")
}

var newCmd = &cobra.Command{
	Use:   "new [name]",
	Short: "Create a script from a template",
	Long: `Create a Lua script that uses the tiramisu namespace.
Missing details are asked for interactively.`,
	Args:    cobra.MaximumNArgs(1),
	Example: "  tiramisu new \"list files\" --variant minimal",
	Run: func(cmd *cobra.Command, args []string) {
		var name string
		if len(args) == 1 {
			name = args[0]
		} else {
			handleErr(survey.AskOne(&survey.Input{
				Message: "Script name",
			}, &name, survey.WithValidator(survey.Required)))
		}

		author := lo.Must(cmd.Flags().GetString("author"))
		if author == "" {
			handleErr(survey.AskOne(&survey.Input{
				Message: "Author",
				Default: os.Getenv("USER"),
			}, &author))
		}

		variantName := viper.GetString(key.BridgeVariant)
		if !cmd.Flags().Changed("variant") && len(args) == 0 {
			handleErr(survey.AskOne(&survey.Select{
				Message: "Bridge variant",
				Options: bridge.Variants(),
				Default: variantName,
			}, &variantName))
		}

		variant, err := bridge.ParseVariant(variantName)
		handleErr(err)

		dir := lo.Must(cmd.Flags().GetString("dir"))
		if dir == "" {
			dir = where.Scripts()
		}

		path := filepath.Join(dir, util.ScriptFilename(name))
		exists, err := filesystem.API().Exists(path)
		handleErr(err)
		if exists && !lo.Must(cmd.Flags().GetBool("force")) {
			handleErr(fmt.Errorf("%s already exists, use --force to overwrite it", path))
		}

		source, err := renderScript(scriptInfo{
			Name:    strings.TrimSpace(name),
			Author:  author,
			Variant: variant,
		})
		handleErr(err)

		handleErr(filesystem.API().MkdirAll(dir, os.ModePerm))
		handleErr(filesystem.API().WriteFile(path, source, 0o644))

		fmt.Printf(
			"%s created %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(path),
		)
	},
}

type scriptInfo struct {
	Name    string
	Author  string
	Variant bridge.Variant
}

var scriptTemplate = lo.Must(template.New("script").Funcs(template.FuncMap{
	"repeat": strings.Repeat,
	"plus":   func(a, b int) int { return a + b },
	"max":    util.Max[int],
}).Parse(constant.ScriptTemplate))

func renderScript(info scriptInfo) ([]byte, error) {
	var buf bytes.Buffer
	err := scriptTemplate.Execute(&buf, struct {
		Name, Author, Variant, Namespace string
		Full                             bool
	}{
		Name:      info.Name,
		Author:    info.Author,
		Variant:   info.Variant.String(),
		Namespace: constant.Namespace,
		Full:      info.Variant.Has(bridge.CapNotify),
	})
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
