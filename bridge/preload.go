package bridge

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/grngxd/tiramisu/constant"
	"github.com/samber/lo"
	lua "github.com/yuin/gopher-lua"
	"github.com/yuin/gopher-lua/parse"
)

var (
	// ErrNotInstalled is returned by Shape when the namespace slot does not hold a table.
	ErrNotInstalled = errors.New("bridge namespace is not installed")
	// ErrHybridShape is returned by Shape when the namespace matches neither variant.
	ErrHybridShape = errors.New("bridge namespace matches no variant")
	// ErrNotInjected is returned by Shape when a member is not the injected global it should reference.
	ErrNotInjected = errors.New("bridge member does not reference the injected function")
)

//go:embed preload/*.lua
var preloadFS embed.FS

var injectedNames = map[Capability]string{
	CapInvoke:   constant.InvokeFn,
	CapReadFile: constant.ReadFileFn,
	CapReadDir:  constant.ReadDirFn,
	CapExists:   constant.ExistsFn,
	CapNotify:   constant.NotifyFn,
}

// InjectedName returns the global the host defines for c.
func InjectedName(c Capability) string {
	return injectedNames[c]
}

// Source returns the preload chunk for v.
func Source(v Variant) ([]byte, error) {
	if !v.valid() {
		return nil, fmt.Errorf("unknown bridge variant %d", v)
	}
	return preloadFS.ReadFile(chunkName(v))
}

func chunkName(v Variant) string {
	return "preload/" + v.String() + constant.ScriptExtension
}

var (
	protos   = make(map[Variant]*lua.FunctionProto)
	protosMu sync.Mutex
)

// proto compiles the preload chunk for v once per process.
func proto(v Variant) (*lua.FunctionProto, error) {
	protosMu.Lock()
	defer protosMu.Unlock()

	if p, ok := protos[v]; ok {
		return p, nil
	}

	src, err := Source(v)
	if err != nil {
		return nil, err
	}

	chunk, err := parse.Parse(bytes.NewReader(src), chunkName(v))
	if err != nil {
		return nil, err
	}

	p, err := lua.Compile(chunk, chunkName(v))
	if err != nil {
		return nil, err
	}

	protos[v] = p
	return p, nil
}

// Preload publishes the namespace for v on L's global scope.
// Whatever the slot held before is replaced, never merged.
func Preload(L *lua.LState, v Variant) error {
	p, err := proto(v)
	if err != nil {
		return err
	}

	L.Push(L.NewFunctionFromProto(p))
	if err := L.PCall(0, 0, nil); err != nil {
		return fmt.Errorf("preload %s bridge: %w", v, err)
	}

	return nil
}

// Shape reports which variant the namespace installed on L matches.
// Every present member must be the injected global itself.
func Shape(L *lua.LState) (Variant, error) {
	ns, ok := L.GetGlobal(constant.Namespace).(*lua.LTable)
	if !ok {
		return 0, ErrNotInstalled
	}

	fs, fsOK := ns.RawGetString("fs").(*lua.LTable)
	notifications := ns.RawGetString("notifications")
	if !fsOK {
		return 0, fmt.Errorf("%w: fs is not a table", ErrHybridShape)
	}

	members := map[Capability]lua.LValue{
		CapInvoke:   ns.RawGetString("invoke"),
		CapReadFile: fs.RawGetString("readFile"),
		CapReadDir:  fs.RawGetString("readDir"),
		CapExists:   fs.RawGetString("exists"),
		CapNotify:   lua.LNil,
	}

	switch tbl := notifications.(type) {
	case *lua.LNilType:
	case *lua.LTable:
		members[CapNotify] = tbl.RawGetString("notify")
		if members[CapNotify] == lua.LNil {
			return 0, fmt.Errorf("%w: notifications has no notify", ErrHybridShape)
		}
	default:
		return 0, fmt.Errorf("%w: notifications is a %s", ErrHybridShape, notifications.Type())
	}

	present := lo.PickBy(members, func(_ Capability, lv lua.LValue) bool {
		return lv != lua.LNil
	})

	for c, lv := range present {
		if lv != L.GetGlobal(InjectedName(c)) {
			return 0, fmt.Errorf("%w: %s", ErrNotInjected, c)
		}
	}

	for _, v := range []Variant{VariantFull, VariantMinimal} {
		caps := v.Capabilities()
		if len(caps) == len(present) && lo.EveryBy(caps, func(c Capability) bool {
			_, ok := present[c]
			return ok
		}) {
			return v, nil
		}
	}

	return 0, ErrHybridShape
}
