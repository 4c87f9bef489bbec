package host

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/mo"
)

// Arg returns args[i].
func Arg(args []any, i int) (any, error) {
	if i < 0 || i >= len(args) {
		return nil, fmt.Errorf("arg %d out of range [0..%d]", i, len(args)-1)
	}
	return args[i], nil
}

// ArgAs returns args[i] as T, weakly decoding it when it is not a T already.
// Lua numbers arrive as float64 and tables as maps or slices, so an int or a
// struct argument goes through the decoder.
func ArgAs[T any](args []any, i int) (T, error) {
	var t T

	arg, err := Arg(args, i)
	if err != nil {
		return t, err
	}

	if v, ok := arg.(T); ok {
		return v, nil
	}

	if err := mapstructure.WeakDecode(arg, &t); err != nil {
		return t, fmt.Errorf("cannot decode arg[%d] -> %T: %w", i, t, err)
	}
	return t, nil
}

// OptArgAs is ArgAs for trailing optional arguments: missing or nil yields None.
func OptArgAs[T any](args []any, i int) (mo.Option[T], error) {
	if i < 0 || i >= len(args) || args[i] == nil {
		return mo.None[T](), nil
	}

	v, err := ArgAs[T](args, i)
	if err != nil {
		return mo.None[T](), err
	}
	return mo.Some(v), nil
}
