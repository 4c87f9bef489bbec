package util

import (
	"strings"
	"testing"

	"github.com/grngxd/tiramisu/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func TestScriptFilename(t *testing.T) {
	Convey("Given free-form script names", t, func() {
		Convey("Unsafe characters become underscores", func() {
			So(ScriptFilename("list files"), ShouldEqual, "list_files.lua")
		})

		Convey("Leading and trailing separators are trimmed", func() {
			So(ScriptFilename("list files?"), ShouldEqual, "list_files.lua")
			So(ScriptFilename("_draft-"), ShouldEqual, "draft.lua")
		})

		Convey("Repeated underscores collapse", func() {
			So(ScriptFilename("read__dir"), ShouldEqual, "read_dir.lua")
		})

		Convey("The extension is not doubled", func() {
			So(ScriptFilename("Notify.lua"), ShouldEqual, "notify.lua")
		})

		Convey("Empty names fall back to the application name", func() {
			So(ScriptFilename("  "), ShouldEqual, "tiramisu.lua")
		})
	})
}

func TestText(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "function", "functions"), ShouldEqual, "1 function")
		So(Quantify(5, "function", "functions"), ShouldEqual, "5 functions")
	})

	Convey("Capitalize", t, func() {
		So(Capitalize("cache"), ShouldEqual, "Cache")
		So(Capitalize(""), ShouldEqual, "")
	})

	Convey("FileStem", t, func() {
		So(FileStem("scripts/hello.lua"), ShouldEqual, "hello")
		So(FileStem("hello"), ShouldEqual, "hello")
	})

	Convey("Wrap", t, func() {
		wrapped := Wrap("the host injects five functions", 10)
		for _, line := range strings.Split(wrapped, "\n") {
			So(len(line), ShouldBeLessThanOrEqualTo, 10)
		}
		So(Wrap("unchanged", 0), ShouldEqual, "unchanged")
	})

	Convey("Max", t, func() {
		So(Max(3, 12, 7), ShouldEqual, 12)
		So(Max[int](), ShouldEqual, 0)
	})
}

func TestDelete(t *testing.T) {
	Convey("Given an in-memory filesystem", t, func() {
		filesystem.SetMemMapFs()
		fs := filesystem.API()
		So(fs.MkdirAll("/cache/nested", 0o755), ShouldBeNil)
		So(fs.WriteFile("/cache/nested/a", []byte("a"), 0o644), ShouldBeNil)
		So(fs.WriteFile("/file", []byte("f"), 0o644), ShouldBeNil)

		Convey("Directories are removed recursively", func() {
			So(Delete("/cache"), ShouldBeNil)
			exists, _ := fs.Exists("/cache/nested/a")
			So(exists, ShouldBeFalse)
		})

		Convey("Files are removed", func() {
			So(Delete("/file"), ShouldBeNil)
			exists, _ := fs.Exists("/file")
			So(exists, ShouldBeFalse)
		})

		Convey("Missing paths are ignored", func() {
			So(Delete("/missing"), ShouldBeNil)
		})
	})
}
