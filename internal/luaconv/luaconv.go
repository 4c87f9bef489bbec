// Package luaconv converts values across the Lua/Go boundary.
package luaconv

import (
	"fmt"
	"reflect"

	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"
)

var mapperOption = gluamapper.Option{
	NameFunc: func(s string) string { return s },
	TagName:  "lua",
}

// ToGo converts a Lua value into plain Go values.
// Tables become []any when they have an array part and map[any]any otherwise.
func ToGo(lv lua.LValue) any {
	return gluamapper.ToGoValue(lv, mapperOption)
}

// Args collects the arguments of the running Go function, starting at position from.
func Args(L *lua.LState, from int) []any {
	top := L.GetTop()
	if top < from {
		return []any{}
	}

	args := make([]any, 0, top-from+1)
	for i := from; i <= top; i++ {
		args = append(args, ToGo(L.Get(i)))
	}
	return args
}

// ToLua converts a Go value into a Lua value owned by L.
func ToLua(L *lua.LState, v any) lua.LValue {
	switch value := v.(type) {
	case nil:
		return lua.LNil
	case lua.LValue:
		return value
	case string:
		return lua.LString(value)
	case []byte:
		return lua.LString(value)
	case bool:
		return lua.LBool(value)
	case error:
		return lua.LString(value.Error())
	case []string:
		tbl := L.CreateTable(len(value), 0)
		for _, s := range value {
			tbl.Append(lua.LString(s))
		}
		return tbl
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return lua.LNumber(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return lua.LNumber(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return lua.LNumber(rv.Float())
	case reflect.Slice, reflect.Array:
		tbl := L.CreateTable(rv.Len(), 0)
		for i := 0; i < rv.Len(); i++ {
			tbl.Append(ToLua(L, rv.Index(i).Interface()))
		}
		return tbl
	case reflect.Map:
		tbl := L.CreateTable(0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			tbl.RawSet(ToLua(L, iter.Key().Interface()), ToLua(L, iter.Value().Interface()))
		}
		return tbl
	case reflect.Pointer:
		if rv.IsNil() {
			return lua.LNil
		}
		return ToLua(L, rv.Elem().Interface())
	default:
		return lua.LString(fmt.Sprint(v))
	}
}
