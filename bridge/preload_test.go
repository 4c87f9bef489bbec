package bridge

import (
	"errors"
	"testing"

	"github.com/grngxd/tiramisu/constant"
	. "github.com/smartystreets/goconvey/convey"
	lua "github.com/yuin/gopher-lua"
)

// mockHost defines every injected global as a plain Lua function that records its calls.
const mockHost = `
calls = {}

local function record(fn, ...)
	calls[#calls + 1] = { fn = fn, args = { ... } }
end

__TIRAMISU_INTERNAL_invoke = function(name, ...)
	record("invoke", name, ...)
	if name == "missing" then
		error("NOT_FOUND", 0)
	end
	return name
end

__TIRAMISU_FILESYSTEM_readFile = function(path)
	record("readFile", path)
	return "contents"
end

__TIRAMISU_FILESYSTEM_readDir = function(path)
	record("readDir", path)
	if path == "/tmp" then
		return { "a.txt", "b.txt" }
	end
	return {}
end

__TIRAMISU_INTERNAL_exists = function(path)
	record("exists", path)
	return true
end

__TIRAMISU_NOTIFICATIONS_notify = function(message, icon)
	record("notify", message, icon)
end
`

func newMockState() *lua.LState {
	L := lua.NewState()
	if err := L.DoString(mockHost); err != nil {
		panic(err)
	}
	return L
}

func eval(L *lua.LState, expr string) lua.LValue {
	if err := L.DoString("__result = " + expr); err != nil {
		panic(err)
	}
	return L.GetGlobal("__result")
}

func TestPreload(t *testing.T) {
	Convey("Given a host that injected every function", t, func() {
		L := newMockState()
		defer L.Close()

		Convey("The full preload references each injected global", func() {
			So(Preload(L, VariantFull), ShouldBeNil)

			So(eval(L, "rawequal(tiramisu.invoke, __TIRAMISU_INTERNAL_invoke)"), ShouldEqual, lua.LTrue)
			So(eval(L, "rawequal(tiramisu.fs.readFile, __TIRAMISU_FILESYSTEM_readFile)"), ShouldEqual, lua.LTrue)
			So(eval(L, "rawequal(tiramisu.fs.readDir, __TIRAMISU_FILESYSTEM_readDir)"), ShouldEqual, lua.LTrue)
			So(eval(L, "rawequal(tiramisu.fs.exists, __TIRAMISU_INTERNAL_exists)"), ShouldEqual, lua.LTrue)
			So(eval(L, "rawequal(tiramisu.notifications.notify, __TIRAMISU_NOTIFICATIONS_notify)"), ShouldEqual, lua.LTrue)

			v, err := Shape(L)
			So(err, ShouldBeNil)
			So(v, ShouldEqual, VariantFull)
		})

		Convey("The minimal preload leaves exists and notifications absent", func() {
			So(Preload(L, VariantMinimal), ShouldBeNil)

			So(eval(L, "tiramisu.fs.exists"), ShouldEqual, lua.LNil)
			So(eval(L, "tiramisu.notifications"), ShouldEqual, lua.LNil)

			ok := eval(L, "pcall(function() return tiramisu.notifications.notify('x') end)")
			So(ok, ShouldEqual, lua.LFalse)

			v, err := Shape(L)
			So(err, ShouldBeNil)
			So(v, ShouldEqual, VariantMinimal)
		})

		Convey("readDir passes the host result through unchanged", func() {
			So(Preload(L, VariantFull), ShouldBeNil)

			So(L.DoString(`entries = tiramisu.fs.readDir("/tmp")`), ShouldBeNil)
			entries := L.GetGlobal("entries").(*lua.LTable)
			So(entries.Len(), ShouldEqual, 2)
			So(entries.RawGetInt(1).String(), ShouldEqual, "a.txt")
			So(entries.RawGetInt(2).String(), ShouldEqual, "b.txt")
		})

		Convey("invoke passes the host failure through unchanged", func() {
			So(Preload(L, VariantFull), ShouldBeNil)

			So(L.DoString(`ok, err = pcall(tiramisu.invoke, "missing")`), ShouldBeNil)
			So(L.GetGlobal("ok"), ShouldEqual, lua.LFalse)
			So(L.GetGlobal("err").String(), ShouldEqual, "NOT_FOUND")
		})

		Convey("Each call reaches the host once, with the same arguments in order", func() {
			So(Preload(L, VariantFull), ShouldBeNil)
			So(L.DoString(`tiramisu.invoke("hello", 1, "two")`), ShouldBeNil)

			So(eval(L, "#calls"), ShouldEqual, lua.LNumber(1))
			So(eval(L, "calls[1].fn"), ShouldEqual, lua.LString("invoke"))
			So(eval(L, "calls[1].args[1]"), ShouldEqual, lua.LString("hello"))
			So(eval(L, "calls[1].args[2]"), ShouldEqual, lua.LNumber(1))
			So(eval(L, "calls[1].args[3]"), ShouldEqual, lua.LString("two"))
		})

		Convey("Installing again overwrites instead of merging", func() {
			So(L.DoString(`tiramisu = { custom = true, fs = { extra = true } }`), ShouldBeNil)
			So(Preload(L, VariantFull), ShouldBeNil)
			So(eval(L, "tiramisu.custom"), ShouldEqual, lua.LNil)
			So(eval(L, "tiramisu.fs.extra"), ShouldEqual, lua.LNil)

			So(L.DoString(`previous = tiramisu`), ShouldBeNil)
			So(Preload(L, VariantMinimal), ShouldBeNil)
			So(eval(L, "rawequal(previous, tiramisu)"), ShouldEqual, lua.LFalse)
			So(eval(L, "tiramisu.fs.exists"), ShouldEqual, lua.LNil)
		})
	})
}

func TestShape(t *testing.T) {
	Convey("Given a host that injected every function", t, func() {
		L := newMockState()
		defer L.Close()

		Convey("Nothing installed is reported", func() {
			_, err := Shape(L)
			So(errors.Is(err, ErrNotInstalled), ShouldBeTrue)
		})

		Convey("A hybrid namespace is rejected", func() {
			So(Preload(L, VariantMinimal), ShouldBeNil)
			So(L.DoString(`tiramisu.fs.exists = __TIRAMISU_INTERNAL_exists`), ShouldBeNil)

			_, err := Shape(L)
			So(errors.Is(err, ErrHybridShape), ShouldBeTrue)
		})

		Convey("An empty notifications group is rejected", func() {
			So(Preload(L, VariantMinimal), ShouldBeNil)
			So(L.DoString(`tiramisu.notifications = {}`), ShouldBeNil)

			_, err := Shape(L)
			So(errors.Is(err, ErrHybridShape), ShouldBeTrue)
		})

		Convey("A wrapped member is rejected", func() {
			So(Preload(L, VariantFull), ShouldBeNil)
			So(L.DoString(`tiramisu.fs.readDir = function(p) return __TIRAMISU_FILESYSTEM_readDir(p) end`), ShouldBeNil)

			_, err := Shape(L)
			So(errors.Is(err, ErrNotInjected), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "fs.readDir")
		})
	})
}

func TestSource(t *testing.T) {
	Convey("Each preload chunk names the injected globals of its variant", t, func() {
		for _, v := range []Variant{VariantFull, VariantMinimal} {
			src, err := Source(v)
			So(err, ShouldBeNil)

			for _, c := range VariantFull.Capabilities() {
				if v.Has(c) {
					So(string(src), ShouldContainSubstring, InjectedName(c))
				} else {
					So(string(src), ShouldNotContainSubstring, InjectedName(c))
				}
			}
			So(string(src), ShouldContainSubstring, constant.Namespace+" =")
		}
	})
}
