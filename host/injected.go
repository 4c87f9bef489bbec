package host

import (
	"fmt"

	"github.com/grngxd/tiramisu/bridge"
	"github.com/samber/mo"
)

// future runs fn on its own goroutine and settles exactly once with its outcome.
// A panic in fn rejects the future. settled hooks run before it settles.
func future[T any](name string, fn func() (T, error), settled ...func()) *mo.Future[T] {
	return mo.NewFuture(func(resolve func(T), reject func(error)) {
		v, err := guard(name, fn)
		for _, hook := range settled {
			hook()
		}

		if err != nil {
			reject(err)
			return
		}
		resolve(v)
	})
}

func guard[T any](name string, fn func() (T, error)) (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", name, r)
		}
	}()

	return fn()
}

// Injected exposes the functions as the asynchronous primitives a bridge.Bridge is built from.
func (f *Functions) Injected() bridge.Injected {
	return bridge.Injected{
		Invoke: func(name string, args ...any) *mo.Future[any] {
			return future(name, func() (any, error) {
				return f.Registry.Invoke(name, args...)
			})
		},
		ReadFile: func(path string) *mo.Future[string] {
			return future(bridge.InjectedName(bridge.CapReadFile), func() (string, error) {
				return f.ReadFile(path)
			})
		},
		ReadDir: func(path string) *mo.Future[[]string] {
			return future(bridge.InjectedName(bridge.CapReadDir), func() ([]string, error) {
				return f.ReadDir(path)
			})
		},
		Exists: func(path string) *mo.Future[bool] {
			return future(bridge.InjectedName(bridge.CapExists), func() (bool, error) {
				return f.Exists(path)
			})
		},
		Notify: func(message string, icon mo.Option[string]) *mo.Future[struct{}] {
			return future(bridge.InjectedName(bridge.CapNotify), func() (struct{}, error) {
				return struct{}{}, f.Notify(message, icon)
			})
		},
	}
}
