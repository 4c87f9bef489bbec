package bridge

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func resolved[T any](v T) *mo.Future[T] {
	return mo.NewFuture(func(resolve func(T), _ func(error)) {
		resolve(v)
	})
}

func rejected[T any](err error) *mo.Future[T] {
	return mo.NewFuture(func(_ func(T), reject func(error)) {
		reject(err)
	})
}

type call struct {
	fn   string
	args []any
}

type recorder struct {
	calls []call
}

func (r *recorder) injected() Injected {
	return Injected{
		Invoke: func(name string, args ...any) *mo.Future[any] {
			r.calls = append(r.calls, call{"invoke", append([]any{name}, args...)})
			return resolved[any](name)
		},
		ReadFile: func(path string) *mo.Future[string] {
			r.calls = append(r.calls, call{"readFile", []any{path}})
			return resolved("contents of " + path)
		},
		ReadDir: func(path string) *mo.Future[[]string] {
			r.calls = append(r.calls, call{"readDir", []any{path}})
			return resolved([]string{"a.txt", "b.txt"})
		},
		Exists: func(path string) *mo.Future[bool] {
			r.calls = append(r.calls, call{"exists", []any{path}})
			return resolved(true)
		},
		Notify: func(message string, icon mo.Option[string]) *mo.Future[struct{}] {
			r.calls = append(r.calls, call{"notify", []any{message, icon.OrEmpty()}})
			return resolved(struct{}{})
		},
	}
}

func samePointer(a, b any) bool {
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}

func TestNew(t *testing.T) {
	Convey("Given a host that injects every function", t, func() {
		rec := &recorder{}
		in := rec.injected()

		Convey("The full variant references each injected function", func() {
			b, err := New(VariantFull, in)
			So(err, ShouldBeNil)
			So(b.Variant(), ShouldEqual, VariantFull)
			So(samePointer(b.Invoke, in.Invoke), ShouldBeTrue)
			So(samePointer(b.FS.ReadFile, in.ReadFile), ShouldBeTrue)
			So(samePointer(b.FS.ReadDir, in.ReadDir), ShouldBeTrue)
			So(samePointer(b.FS.Exists, in.Exists), ShouldBeTrue)
			So(b.Notifications, ShouldNotBeNil)
			So(samePointer(b.Notifications.Notify, in.Notify), ShouldBeTrue)

			for _, c := range VariantFull.Capabilities() {
				So(b.Has(c), ShouldBeTrue)
			}
		})

		Convey("The minimal variant leaves exists and notifications absent", func() {
			b, err := New(VariantMinimal, in)
			So(err, ShouldBeNil)
			So(b.Variant(), ShouldEqual, VariantMinimal)
			So(b.FS.Exists, ShouldBeNil)
			So(b.Notifications, ShouldBeNil)
			So(b.Has(CapExists), ShouldBeFalse)
			So(b.Has(CapNotify), ShouldBeFalse)
			So(b.Has(CapReadDir), ShouldBeTrue)
		})

		Convey("Calls reach the injected function once with the same arguments", func() {
			b, err := New(VariantFull, in)
			So(err, ShouldBeNil)

			v, err := b.Invoke("hello", 1, "two").Collect()
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "hello")

			_, _ = b.FS.ReadFile("/etc/hosts").Collect()
			_, _ = b.FS.Exists("/nope").Collect()
			_, _ = b.Notifications.Notify("done", mo.Some("info")).Collect()

			So(rec.calls, ShouldResemble, []call{
				{"invoke", []any{"hello", 1, "two"}},
				{"readFile", []any{"/etc/hosts"}},
				{"exists", []any{"/nope"}},
				{"notify", []any{"done", "info"}},
			})
		})
	})

	Convey("Given a mock readDir that resolves to two entries for /tmp", t, func() {
		in := Injected{
			Invoke:   func(string, ...any) *mo.Future[any] { return resolved[any](nil) },
			ReadFile: func(string) *mo.Future[string] { return resolved("") },
			ReadDir: func(path string) *mo.Future[[]string] {
				if path == "/tmp" {
					return resolved([]string{"a.txt", "b.txt"})
				}
				return resolved([]string{})
			},
		}

		b, err := New(VariantMinimal, in)
		So(err, ShouldBeNil)

		entries, err := b.FS.ReadDir("/tmp").Collect()
		So(err, ShouldBeNil)
		So(entries, ShouldResemble, []string{"a.txt", "b.txt"})
	})

	Convey("Given a mock invoke that rejects unknown names", t, func() {
		notFound := errors.New("NOT_FOUND")
		in := Injected{
			Invoke: func(name string, _ ...any) *mo.Future[any] {
				if name == "missing" {
					return rejected[any](notFound)
				}
				return resolved[any](name)
			},
			ReadFile: func(string) *mo.Future[string] { return resolved("") },
			ReadDir:  func(string) *mo.Future[[]string] { return resolved([]string{}) },
		}

		b, err := New(VariantMinimal, in)
		So(err, ShouldBeNil)

		_, err = b.Invoke("missing").Collect()
		So(err, ShouldEqual, notFound)
		So(err.Error(), ShouldEqual, "NOT_FOUND")
	})

	Convey("Given a host missing functions the variant needs", t, func() {
		in := (&recorder{}).injected()
		in.Notify = nil

		Convey("The full variant fails to build", func() {
			_, err := New(VariantFull, in)
			So(errors.Is(err, ErrMissingInjected), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "notifications.notify")
		})

		Convey("The minimal variant does not need it", func() {
			_, err := New(VariantMinimal, in)
			So(err, ShouldBeNil)
		})
	})

	Convey("An unknown variant is rejected", t, func() {
		_, err := New(Variant(42), (&recorder{}).injected())
		So(err, ShouldNotBeNil)
	})
}

func TestVariant(t *testing.T) {
	Convey("ParseVariant", t, func() {
		v, err := ParseVariant(" Full ")
		So(err, ShouldBeNil)
		So(v, ShouldEqual, VariantFull)

		v, err = ParseVariant("minimal")
		So(err, ShouldBeNil)
		So(v, ShouldEqual, VariantMinimal)

		_, err = ParseVariant("legacy")
		So(err, ShouldNotBeNil)
	})

	Convey("Capability paths", t, func() {
		So(CapReadDir.String(), ShouldEqual, "fs.readDir")
		So(CapNotify.String(), ShouldEqual, "notifications.notify")
	})
}

func TestContext(t *testing.T) {
	Convey("A bridge travels through a context", t, func() {
		b, err := New(VariantFull, (&recorder{}).injected())
		So(err, ShouldBeNil)

		got, ok := FromContext(WithContext(context.Background(), b))
		So(ok, ShouldBeTrue)
		So(got, ShouldEqual, b)

		_, ok = FromContext(context.Background())
		So(ok, ShouldBeFalse)
	})
}

func TestMembers(t *testing.T) {
	Convey("Given the variants", t, func() {
		Convey("The full variant describes five members", func() {
			members := Members(VariantFull)
			So(members, ShouldHaveLength, 5)
			So(members[2], ShouldResemble, Member{
				Path:     "fs.readDir",
				Global:   "__TIRAMISU_FILESYSTEM_readDir",
				Params:   []string{"path"},
				Resolves: "string[]",
			})
			So(members[4].Params, ShouldResemble, []string{"message", "icon?"})
		})

		Convey("The minimal variant stops at readDir", func() {
			paths := make([]string, 0, 3)
			for _, m := range Members(VariantMinimal) {
				paths = append(paths, m.Path)
			}
			So(paths, ShouldResemble, []string{"invoke", "fs.readFile", "fs.readDir"})
		})

		Convey("Unknown variants describe nothing", func() {
			So(Members(Variant(9)), ShouldBeEmpty)
		})
	})
}
