package host

import (
	"github.com/grngxd/tiramisu/internal/luaconv"
	"github.com/grngxd/tiramisu/log"
	"github.com/samber/mo"
	"github.com/sirupsen/logrus"
	lua "github.com/yuin/gopher-lua"
)

const promiseTypeName = "tiramisu.promise"

// promise is the guest-side handle of a pending host call.
type promise struct {
	future *mo.Future[any]
	done   chan struct{}
}

// newPromise starts fn. done is closed before the future settles, so a
// promise that await or result returned from always reports done.
func newPromise(name string, fn func() (any, error)) *promise {
	p := &promise{done: make(chan struct{})}
	p.future = future(name, fn, func() { close(p.done) })
	return p
}

// Inject defines every injected function as a global of L.
// Calls convert their arguments on the script goroutine, run the handler on
// its own goroutine and return a promise immediately.
func (f *Functions) Inject(L *lua.LState, trace bool) {
	registerPromise(L)

	for name, h := range f.Handlers() {
		L.SetGlobal(name, L.NewFunction(lgFunction(name, h, trace)))
	}
}

func lgFunction(name string, h Handler, trace bool) lua.LGFunction {
	return func(L *lua.LState) int {
		args := luaconv.Args(L, 1)
		if trace {
			log.WithFields(logrus.Fields{"fn": name, "args": len(args)}).Debug("injected call")
		}

		pushPromise(L, newPromise(name, func() (any, error) {
			return h(args...)
		}))
		return 1
	}
}

func registerPromise(L *lua.LState) {
	mt := L.NewTypeMetatable(promiseTypeName)
	L.SetField(mt, "__index", L.SetFuncs(L.NewTable(), promiseMethods))
	L.SetField(mt, "__tostring", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LString(promiseTypeName))
		return 1
	}))
}

func pushPromise(L *lua.LState, p *promise) {
	ud := L.NewUserData()
	ud.Value = p
	L.SetMetatable(ud, L.GetTypeMetatable(promiseTypeName))
	L.Push(ud)
}

func checkPromise(L *lua.LState) *promise {
	ud := L.CheckUserData(1)
	if p, ok := ud.Value.(*promise); ok {
		return p
	}
	L.ArgError(1, "promise expected")
	return nil
}

var promiseMethods = map[string]lua.LGFunction{
	// await blocks the script until the call settles. A rejection is raised
	// with the host's message as is.
	"await": func(L *lua.LState) int {
		p := checkPromise(L)
		v, err := p.future.Collect()
		if err != nil {
			L.Error(lua.LString(err.Error()), 0)
			return 0
		}
		L.Push(luaconv.ToLua(L, v))
		return 1
	},
	// result is await without raising: value, nil or nil, message.
	"result": func(L *lua.LState) int {
		p := checkPromise(L)
		v, err := p.future.Collect()
		if err != nil {
			L.Push(lua.LNil)
			L.Push(lua.LString(err.Error()))
			return 2
		}
		L.Push(luaconv.ToLua(L, v))
		L.Push(lua.LNil)
		return 2
	},
	"done": func(L *lua.LState) int {
		p := checkPromise(L)
		select {
		case <-p.done:
			L.Push(lua.LTrue)
		default:
			L.Push(lua.LFalse)
		}
		return 1
	},
}
