// Package bridge publishes the host-injected functions under a single, stable namespace.
//
// The namespace has the same shape on both sides of the host boundary:
//
//	invoke(name, ...args)
//	fs.readFile(path)
//	fs.readDir(path)
//	fs.exists(path)                 -- full variant only
//	notifications.notify(msg, icon) -- full variant only
//
// Guest scripts see it as the global table "tiramisu" (see Preload). Go code
// receives it as an explicit *Bridge built by New. In both cases every member
// is the injected function itself: the bridge never wraps, retries, caches or
// translates errors.
package bridge

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// ErrMissingInjected is returned by New when the host did not supply a function the variant requires.
var ErrMissingInjected = errors.New("injected function is missing")

// InvokeFunc dispatches a named host operation.
type InvokeFunc func(name string, args ...any) *mo.Future[any]

// ReadFileFunc resolves to the contents of a file.
type ReadFileFunc func(path string) *mo.Future[string]

// ReadDirFunc resolves to the entry names of a directory, in host order.
type ReadDirFunc func(path string) *mo.Future[[]string]

// ExistsFunc resolves to whether a path exists.
type ExistsFunc func(path string) *mo.Future[bool]

// NotifyFunc delivers a notification with an optional icon.
type NotifyFunc func(message string, icon mo.Option[string]) *mo.Future[struct{}]

// Injected is the set of functions supplied by the host runtime.
type Injected struct {
	Invoke   InvokeFunc
	ReadFile ReadFileFunc
	ReadDir  ReadDirFunc
	Exists   ExistsFunc
	Notify   NotifyFunc
}

// FS groups the filesystem capabilities. Exists is nil in the minimal variant.
type FS struct {
	ReadFile ReadFileFunc
	ReadDir  ReadDirFunc
	Exists   ExistsFunc
}

// Notifications groups the notification capabilities.
type Notifications struct {
	Notify NotifyFunc
}

// Bridge is the namespaced view over the injected functions.
type Bridge struct {
	Invoke InvokeFunc
	FS     FS
	// Notifications is nil in the minimal variant.
	Notifications *Notifications

	variant Variant
}

// New builds the namespace for v from the injected functions.
// Functions the variant does not expose are left out even when the host supplied them.
func New(v Variant, in Injected) (*Bridge, error) {
	if !v.valid() {
		return nil, fmt.Errorf("unknown bridge variant %d", v)
	}

	present := map[Capability]bool{
		CapInvoke:   in.Invoke != nil,
		CapReadFile: in.ReadFile != nil,
		CapReadDir:  in.ReadDir != nil,
		CapExists:   in.Exists != nil,
		CapNotify:   in.Notify != nil,
	}

	missing := lo.Filter(v.Capabilities(), func(c Capability, _ int) bool {
		return !present[c]
	})
	if len(missing) > 0 {
		names := lo.Map(missing, func(c Capability, _ int) string { return c.String() })
		return nil, fmt.Errorf("%w: %s", ErrMissingInjected, strings.Join(names, ", "))
	}

	b := &Bridge{
		Invoke: in.Invoke,
		FS: FS{
			ReadFile: in.ReadFile,
			ReadDir:  in.ReadDir,
		},
		variant: v,
	}

	if v == VariantFull {
		b.FS.Exists = in.Exists
		b.Notifications = &Notifications{Notify: in.Notify}
	}

	return b, nil
}

// Variant reports which namespace shape b exposes.
func (b *Bridge) Variant() Variant {
	return b.variant
}

// Has reports whether c is part of b's namespace.
func (b *Bridge) Has(c Capability) bool {
	return b.variant.Has(c)
}
