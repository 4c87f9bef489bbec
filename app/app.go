// Package app assembles a script runtime: a Lua state with the host
// functions injected and the tiramisu namespace installed.
package app

import (
	"fmt"
	"sync"

	"github.com/grngxd/tiramisu/bridge"
	"github.com/grngxd/tiramisu/filesystem"
	"github.com/grngxd/tiramisu/host"
	"github.com/grngxd/tiramisu/internal/chunk"
	"github.com/grngxd/tiramisu/key"
	"github.com/grngxd/tiramisu/log"
	"github.com/grngxd/tiramisu/notify"
	libs "github.com/metafates/mangal-lua-libs"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	lua "github.com/yuin/gopher-lua"
)

// Options configure a runtime.
type Options struct {
	// Debug logs every injected call.
	Debug   bool
	Variant bridge.Variant
	// Fs backs the filesystem functions. Defaults to filesystem.API().
	Fs afero.Fs
	// ScriptFs is where DoFile reads scripts from. Defaults to Fs.
	ScriptFs afero.Fs
	Notifier notify.Notifier
	// Libs preloads the bundled Lua modules (http, json, strings...).
	Libs bool
	// BytecodeCache keeps compiled scripts across DoFile calls.
	BytecodeCache bool
	DefaultIcon   string
}

// OptionsFromConfig reads the runtime options from the configuration.
func OptionsFromConfig() (Options, error) {
	variant, err := bridge.ParseVariant(viper.GetString(key.BridgeVariant))
	if err != nil {
		return Options{}, err
	}

	notifier, err := notify.FromConfig()
	if err != nil {
		return Options{}, err
	}

	return Options{
		Debug:         viper.GetBool(key.RuntimeDebug),
		Variant:       variant,
		Notifier:      notifier,
		Libs:          viper.GetBool(key.RuntimeLibs),
		BytecodeCache: viper.GetBool(key.RuntimeBytecodeCache),
		DefaultIcon:   viper.GetString(key.NotificationsIcon),
	}, nil
}

// App is a single script runtime. Its methods may be called from several
// goroutines; script execution is serialized.
type App struct {
	mu        sync.Mutex
	options   Options
	state     *lua.LState
	functions *host.Functions
	bridge    *bridge.Bridge
}

// New creates the state and installs the namespace for options.Variant.
func New(options Options) (*App, error) {
	if options.Fs == nil {
		options.Fs = filesystem.API()
	}

	if options.ScriptFs == nil {
		options.ScriptFs = options.Fs
	}

	functions := host.NewFunctions(host.NewRegistry(), options.Fs, options.Notifier)
	functions.DefaultIcon = options.DefaultIcon

	b, err := bridge.New(options.Variant, functions.Injected())
	if err != nil {
		return nil, err
	}

	state := lua.NewState()
	if options.Libs {
		libs.Preload(state)
	}

	functions.Inject(state, options.Debug)

	if err := bridge.Preload(state, options.Variant); err != nil {
		state.Close()
		return nil, err
	}

	log.Infof("runtime ready with the %s bridge", options.Variant)

	return &App{
		options:   options,
		state:     state,
		functions: functions,
		bridge:    b,
	}, nil
}

// Bind makes fn callable from scripts through tiramisu.invoke(name, ...).
func (a *App) Bind(name string, fn host.Handler) error {
	return a.functions.Registry.Bind(name, fn)
}

// DoFile runs the script at path.
func (a *App) DoFile(path string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	log.Infof("running %s", path)
	if err := chunk.PreCompileAndLoad(a.state, a.options.ScriptFs, path, a.options.BytecodeCache); err != nil {
		return fmt.Errorf("error running %s: %w", path, err)
	}

	return nil
}

// DoString runs code.
func (a *App) DoString(code string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.state.DoString(code)
}

// Evalf runs the code produced by formatting format with args.
func (a *App) Evalf(format string, args ...any) error {
	return a.DoString(fmt.Sprintf(format, args...))
}

// Reload installs the namespace again, replacing whatever scripts left in the slot.
func (a *App) Reload() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	log.Debugf("reinstalling the %s bridge", a.options.Variant)
	return bridge.Preload(a.state, a.options.Variant)
}

// Bridge returns the Go-side view of the injected functions.
func (a *App) Bridge() *bridge.Bridge {
	return a.bridge
}

func (a *App) Registry() *host.Registry {
	return a.functions.Registry
}

// State returns the underlying Lua state. Callers must not use it while a script runs.
func (a *App) State() *lua.LState {
	return a.state
}

func (a *App) Variant() bridge.Variant {
	return a.options.Variant
}

func (a *App) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.state.Close()
}
