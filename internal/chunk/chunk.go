// Package chunk compiles script files into reusable function prototypes.
package chunk

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/spf13/afero"
	lua "github.com/yuin/gopher-lua"
	"github.com/yuin/gopher-lua/parse"
)

// protos holds compiled prototypes per filesystem and path, for the whole process.
var protos sync.Map

type protoKey struct {
	fs   afero.Fs
	path string
}

// Compile parses and compiles the file at path read through fs.
func Compile(fs afero.Fs, path string) (*lua.FunctionProto, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("error reading script %s: %w", path, err)
	}

	return CompileString(string(data), path)
}

// CompileString compiles source under the given chunk name.
func CompileString(source, name string) (*lua.FunctionProto, error) {
	stmts, err := parse.Parse(bytes.NewBufferString(source), name)
	if err != nil {
		return nil, err
	}

	return lua.Compile(stmts, name)
}

// Load returns the prototype of path on fs, compiling it on the first request when cached is set.
// fs must be comparable; every afero backend is.
func Load(fs afero.Fs, path string, cached bool) (*lua.FunctionProto, error) {
	key := protoKey{fs: fs, path: path}
	if cached {
		if proto, ok := protos.Load(key); ok {
			return proto.(*lua.FunctionProto), nil
		}
	}

	proto, err := Compile(fs, path)
	if err != nil {
		return nil, err
	}

	if cached {
		protos.Store(key, proto)
	}

	return proto, nil
}

// Run executes proto in L, leaving its results on the stack.
func Run(L *lua.LState, proto *lua.FunctionProto) error {
	L.Push(L.NewFunctionFromProto(proto))
	return L.PCall(0, lua.MultRet, nil)
}

// PreCompileAndLoad loads path through the prototype cache and runs it in L.
func PreCompileAndLoad(L *lua.LState, fs afero.Fs, path string, cached bool) error {
	proto, err := Load(fs, path, cached)
	if err != nil {
		return err
	}

	return Run(L, proto)
}

// Forget drops path from the cache for every filesystem. It reports whether path was cached.
func Forget(path string) bool {
	var found bool
	protos.Range(func(k, _ any) bool {
		if k.(protoKey).path == path {
			protos.Delete(k)
			found = true
		}
		return true
	})
	return found
}

// Purge empties the cache.
func Purge() {
	protos.Range(func(k, _ any) bool {
		protos.Delete(k)
		return true
	})
}
