package host

import (
	"fmt"
	"os"

	"github.com/grngxd/tiramisu/constant"
	"github.com/grngxd/tiramisu/notify"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/afero"
)

// Functions are the primitives the host injects into every guest.
type Functions struct {
	Registry *Registry
	Fs       afero.Fs
	Notifier notify.Notifier
	// DefaultIcon is used when a script notifies without an icon.
	DefaultIcon string
}

// NewFunctions returns Functions over fs. A nil notifier drops notifications.
func NewFunctions(reg *Registry, fs afero.Fs, notifier notify.Notifier) *Functions {
	if notifier == nil {
		notifier = notify.None
	}
	return &Functions{
		Registry: reg,
		Fs:       fs,
		Notifier: notifier,
	}
}

// Handlers returns the injected functions keyed by their global name.
func (f *Functions) Handlers() map[string]Handler {
	return map[string]Handler{
		constant.InvokeFn:   f.invokeHandler,
		constant.ReadFileFn: f.readFileHandler,
		constant.ReadDirFn:  f.readDirHandler,
		constant.ExistsFn:   f.existsHandler,
		constant.NotifyFn:   f.notifyHandler,
	}
}

// ReadFile returns the contents of path.
func (f *Functions) ReadFile(path string) (string, error) {
	data, err := afero.ReadFile(f.Fs, path)
	if err != nil {
		return "", fmt.Errorf("error reading file %s: %w", path, err)
	}
	return string(data), nil
}

// ReadDir returns the entry names of path in the order the filesystem reports them.
func (f *Functions) ReadDir(path string) ([]string, error) {
	entries, err := afero.ReadDir(f.Fs, path)
	if err != nil {
		return nil, fmt.Errorf("error reading directory %s: %w", path, err)
	}
	return lo.Map(entries, func(e os.FileInfo, _ int) string {
		return e.Name()
	}), nil
}

// Exists reports whether path exists. Stat failures other than not-exist are errors.
func (f *Functions) Exists(path string) (bool, error) {
	_, err := f.Fs.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("error checking existence of %s: %w", path, err)
}

// Notify shows message, falling back to DefaultIcon.
func (f *Functions) Notify(message string, icon mo.Option[string]) error {
	if err := f.Notifier.Notify(message, icon.OrElse(f.DefaultIcon)); err != nil {
		return fmt.Errorf("error sending notification: %w", err)
	}
	return nil
}

func (f *Functions) invokeHandler(args ...any) (any, error) {
	name, err := ArgAs[string](args, 0)
	if err != nil {
		return nil, err
	}
	return f.Registry.Invoke(name, args[1:]...)
}

func (f *Functions) readFileHandler(args ...any) (any, error) {
	path, err := ArgAs[string](args, 0)
	if err != nil {
		return nil, err
	}
	return f.ReadFile(path)
}

func (f *Functions) readDirHandler(args ...any) (any, error) {
	path, err := ArgAs[string](args, 0)
	if err != nil {
		return nil, err
	}
	return f.ReadDir(path)
}

func (f *Functions) existsHandler(args ...any) (any, error) {
	path, err := ArgAs[string](args, 0)
	if err != nil {
		return nil, err
	}
	return f.Exists(path)
}

func (f *Functions) notifyHandler(args ...any) (any, error) {
	message, err := ArgAs[string](args, 0)
	if err != nil {
		return nil, err
	}
	icon, err := OptArgAs[string](args, 1)
	if err != nil {
		return nil, err
	}
	return nil, f.Notify(message, icon)
}
