package logger_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/namepulse/pkg/logger"
)

func TestInitAndLevels(t *testing.T) {
	Convey("Given an initialized logger", t, func() {
		So(logger.Init(), ShouldBeNil)

		Convey("Then the global logger is available", func() {
			So(logger.Get(), ShouldNotBeNil)
			So(logger.Named("test"), ShouldNotBeNil)
		})

		Convey("Then known level strings parse", func() {
			for _, lvl := range []string{"debug", "info", "WARN", "warning", "Error", ""} {
				So(logger.SetLevelString(lvl), ShouldBeNil)
			}
		})

		Convey("Then unknown level strings are rejected", func() {
			So(logger.SetLevelString("loud"), ShouldNotBeNil)
		})
	})
}
