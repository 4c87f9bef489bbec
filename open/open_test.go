package open

import (
	"testing"

	"github.com/grngxd/tiramisu/constant"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCommand(t *testing.T) {
	Convey("Given a directory to open", t, func() {
		Convey("Each platform has its opener", func() {
			for goos, bin := range map[string]string{
				constant.Linux:   "xdg-open",
				constant.Darwin:  "open",
				constant.Android: "termux-open",
			} {
				cmd, err := Command(goos, "/scripts")
				So(err, ShouldBeNil)
				So(cmd.Args, ShouldResemble, []string{bin, "/scripts"})
			}

			cmd, err := Command(constant.Windows, "/scripts")
			So(err, ShouldBeNil)
			So(cmd.Args[1:], ShouldResemble, []string{"url.dll,FileProtocolHandler", "/scripts"})
		})

		Convey("Unknown platforms fail", func() {
			_, err := Command("plan9", "/scripts")
			So(err, ShouldNotBeNil)
		})
	})
}
