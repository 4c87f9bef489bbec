package host

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestRegistry(t *testing.T) {
	Convey("Given a registry with a bound function", t, func() {
		reg := NewRegistry()
		So(reg.Bind("hello", func(args ...any) (any, error) {
			if len(args) == 0 {
				return "Hello, World!", nil
			}
			return "Hello, " + args[0].(string) + "!", nil
		}), ShouldBeNil)

		Convey("Invoke passes the arguments through", func() {
			v, err := reg.Invoke("hello", "Lua")
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "Hello, Lua!")

			v, err = reg.Invoke("hello")
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "Hello, World!")
		})

		Convey("Binding the same name twice fails", func() {
			err := reg.Bind("hello", func(...any) (any, error) { return nil, nil })
			So(errors.Is(err, ErrAlreadyBound), ShouldBeTrue)
		})

		Convey("Empty names and nil handlers are rejected", func() {
			So(reg.Bind("", func(...any) (any, error) { return nil, nil }), ShouldNotBeNil)
			So(reg.Bind("nil", nil), ShouldNotBeNil)
		})

		Convey("Unknown names suggest the closest bound name", func() {
			_, err := reg.Invoke("helo")
			So(errors.Is(err, ErrNotFound), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "did you mean hello?")
		})

		Convey("Handler failures are wrapped with the function name", func() {
			boom := errors.New("boom")
			So(reg.Bind("fail", func(...any) (any, error) { return nil, boom }), ShouldBeNil)

			_, err := reg.Invoke("fail")
			So(errors.Is(err, boom), ShouldBeTrue)
			So(err.Error(), ShouldEqual, "error invoking function fail: boom")
		})

		Convey("A panicking handler fails the call", func() {
			So(reg.Bind("explode", func(...any) (any, error) { panic("boom") }), ShouldBeNil)

			_, err := reg.Invoke("explode")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldEqual, "error invoking function explode: panic in explode: boom")
		})

		Convey("Names are sorted", func() {
			So(reg.Bind("abc", func(...any) (any, error) { return nil, nil }), ShouldBeNil)
			So(reg.Names(), ShouldResemble, []string{"abc", "hello"})
		})

		Convey("Unbind removes the function", func() {
			So(reg.Unbind("hello"), ShouldBeTrue)
			So(reg.Unbind("hello"), ShouldBeFalse)

			_, err := reg.Invoke("hello")
			So(errors.Is(err, ErrNotFound), ShouldBeTrue)
			So(err.Error(), ShouldNotContainSubstring, "did you mean")
		})
	})
}

func TestArgs(t *testing.T) {
	Convey("Given script arguments", t, func() {
		args := []any{"path", float64(3), map[any]any{"Name": "x", "Size": float64(2)}, nil}

		Convey("Arg checks the range", func() {
			v, err := Arg(args, 0)
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "path")

			_, err = Arg(args, 4)
			So(err, ShouldNotBeNil)
			_, err = Arg(args, -1)
			So(err, ShouldNotBeNil)
		})

		Convey("ArgAs asserts or decodes", func() {
			s, err := ArgAs[string](args, 0)
			So(err, ShouldBeNil)
			So(s, ShouldEqual, "path")

			n, err := ArgAs[int](args, 1)
			So(err, ShouldBeNil)
			So(n, ShouldEqual, 3)

			type entry struct {
				Name string
				Size int
			}
			e, err := ArgAs[entry](args, 2)
			So(err, ShouldBeNil)
			So(e, ShouldResemble, entry{Name: "x", Size: 2})

			_, err = ArgAs[int](args, 2)
			So(err, ShouldNotBeNil)
		})

		Convey("OptArgAs treats missing and nil as absent", func() {
			o, err := OptArgAs[string](args, 3)
			So(err, ShouldBeNil)
			So(o.IsPresent(), ShouldBeFalse)

			o, err = OptArgAs[string](args, 9)
			So(err, ShouldBeNil)
			So(o.IsPresent(), ShouldBeFalse)

			o, err = OptArgAs[string](args, 0)
			So(err, ShouldBeNil)
			So(o.MustGet(), ShouldEqual, "path")
		})
	})
}
