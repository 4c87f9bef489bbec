package log

import (
	"testing"

	"github.com/grngxd/tiramisu/filesystem"
	"github.com/grngxd/tiramisu/key"
	"github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given logging is disabled", t, func() {
		viper.Set(key.LogsWrite, false)
		So(Setup(), ShouldBeNil)
		So(Enabled(), ShouldBeFalse)

		Convey("Structured entries are discarded", func() {
			entry := WithFields(logrus.Fields{"fn": "readDir"})
			So(entry.Logger, ShouldEqual, discard)
			So(func() { entry.Info("ignored") }, ShouldNotPanic)
		})
	})

	Convey("Given logging is enabled", t, func() {
		viper.Set(key.LogsWrite, true)
		viper.Set(key.LogsLevel, "debug")
		defer viper.Set(key.LogsWrite, false)

		So(Setup(), ShouldBeNil)
		So(Enabled(), ShouldBeTrue)
		So(logrus.GetLevel(), ShouldEqual, logrus.DebugLevel)

		Convey("Structured entries go to the standard logger", func() {
			So(WithFields(logrus.Fields{"fn": "notify"}).Logger, ShouldEqual, logrus.StandardLogger())
		})
	})
}
