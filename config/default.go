package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/grngxd/tiramisu/bridge"
	"github.com/grngxd/tiramisu/color"
	"github.com/grngxd/tiramisu/constant"
	"github.com/grngxd/tiramisu/icon"
	"github.com/grngxd/tiramisu/key"
	"github.com/grngxd/tiramisu/notify"
	"github.com/grngxd/tiramisu/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field is a single configuration key with its default value.
type Field struct {
	Key         string
	Value       any
	Description string
	// Options restricts string values when non-empty.
	Options []string
}

// Pretty renders the field for `tiramisu config info`.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env is the variable that overrides the field, e.g. TIRAMISU_BRIDGE_VARIANT.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.Tiramisu + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

type fieldJSON struct {
	Key         string   `json:"key"`
	Env         string   `json:"env"`
	Value       any      `json:"value"`
	Default     any      `json:"default"`
	Description string   `json:"description"`
	Type        string   `json:"type"`
	Options     []string `json:"options,omitempty"`
}

func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(fieldJSON{
		Key:         f.Key,
		Env:         f.Env(),
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        reflect.TypeOf(f.Value).String(),
		Options:     f.Options,
	})
}

// Default maps every known key to its field.
var Default = make(map[string]Field)

// EnvExposed lists the keys bound to environment variables, in registration order.
var EnvExposed []string

func register(k string, v any, desc string, options ...string) {
	if _, exists := Default[k]; exists {
		panic("config key registered twice: " + k)
	}

	Default[k] = Field{Key: k, Value: v, Description: desc, Options: options}
	EnvExposed = append(EnvExposed, k)
}

func init() {
	register(key.BridgeVariant, "full", "Namespace shape published to scripts.\nAvailable options are: full, minimal\nminimal omits fs.exists and notifications", bridge.Variants()...)
	register(key.RuntimeDebug, false, "Log every injected function call at debug level")
	register(key.RuntimeLibs, true, "Preload the bundled Lua modules (json, http, strings, ...) into scripts")
	register(key.RuntimeBytecodeCache, true, "Reuse compiled bytecode when the same script is loaded more than once")
	register(key.NotificationsBackend, "desktop", "Where notifications are delivered.\nAvailable options are: desktop, log, none", notify.Backends()...)
	register(key.NotificationsIcon, "", "Icon used when a script does not pass one")
	register(key.NotificationsTitle, "Tiramisu", "Title shown on desktop notifications")
	register(key.HistoryRemember, true, "Remember run scripts to complete them in the run command")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)", icon.AvailableVariants()...)
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace",
		"panic", "fatal", "error", "warn", "info", "debug", "trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliVersionCheck, true, "Enable automatic version check")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"bold":     style.Bold,
	"purple":   style.Fg(color.Purple),
	"blue":     style.Fg(color.Blue),
	"cyan":     style.Fg(color.Cyan),
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"join":     strings.Join,
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename .Value }}{{ if .Options }}
{{ blue "Options:" }} {{ join .Options ", " }}{{ end }}`))
