package cmd

import (
	"testing"

	"github.com/grngxd/tiramisu/bridge"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestFilterMembers(t *testing.T) {
	Convey("Given the members of the full variant", t, func() {
		members := bridge.Members(bridge.VariantFull)
		paths := func(ms []bridge.Member) []string {
			return lo.Map(ms, func(m bridge.Member, _ int) string { return m.Path })
		}

		Convey("An empty filter keeps everything", func() {
			So(filterMembers(members, " "), ShouldHaveLength, 5)
		})

		Convey("The filter fuzzy matches paths", func() {
			So(paths(filterMembers(members, "rd")), ShouldResemble, []string{"fs.readFile", "fs.readDir"})
			So(paths(filterMembers(members, "NOTIFY")), ShouldResemble, []string{"notifications.notify"})
		})

		Convey("Nothing matches a foreign name", func() {
			So(filterMembers(members, "zzz"), ShouldBeEmpty)
		})
	})
}

func TestRenderScript(t *testing.T) {
	Convey("Given script details", t, func() {
		Convey("A full script uses every group", func() {
			source, err := renderScript(scriptInfo{Name: "list", Author: "someone", Variant: bridge.VariantFull})
			So(err, ShouldBeNil)
			So(string(source), ShouldContainSubstring, "-- @bridge  full")
			So(string(source), ShouldContainSubstring, `tiramisu.fs.readDir(".")`)
			So(string(source), ShouldContainSubstring, "tiramisu.notifications.notify")
		})

		Convey("A minimal script leaves the full-only members out", func() {
			source, err := renderScript(scriptInfo{Name: "list", Author: "someone", Variant: bridge.VariantMinimal})
			So(err, ShouldBeNil)
			So(string(source), ShouldContainSubstring, "-- @bridge  minimal")
			So(string(source), ShouldNotContainSubstring, "notifications")
			So(string(source), ShouldNotContainSubstring, "exists")
		})
	})
}
