package config_test

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/namepulse/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	Convey("Given no file and no environment overrides", t, func() {
		cfg, err := config.Load()

		Convey("Then defaults come back intact", func() {
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":9080")
			So(cfg.LogLevel, ShouldEqual, "info")
			So(cfg.TopListSize, ShouldEqual, 20)
			So(cfg.EvergreenMinDecades, ShouldEqual, 10)
			So(cfg.Decades, ShouldHaveLength, 15)
			So(cfg.Decades[0], ShouldEqual, "1880s")
		})
	})
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("NAMEPULSE_ADDR", ":7070")
	t.Setenv("NAMEPULSE_LOG_LEVEL", "debug")
	t.Setenv("NAMEPULSE_TOP_LIST_SIZE", "5")

	Convey("Given NAMEPULSE_-prefixed environment variables", t, func() {
		cfg, err := config.Load()

		Convey("Then they override the defaults", func() {
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":7070")
			So(cfg.LogLevel, ShouldEqual, "debug")
			So(cfg.TopListSize, ShouldEqual, 5)
		})
	})
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "namepulse.yaml")
	yaml := "addr: \":6060\"\ndecades:\n  - 1990s\n  - 2000s\n"
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("NAMEPULSE_CONFIG", path)

	Convey("Given a YAML config file", t, func() {
		cfg, err := config.Load()

		Convey("Then file values override defaults", func() {
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":6060")
			So(cfg.Decades, ShouldResemble, []string{"1990s", "2000s"})
		})
	})

	Convey("Given the file plus an environment override", t, func() {
		t.Setenv("NAMEPULSE_ADDR", ":5050")
		cfg, err := config.Load()

		Convey("Then the environment wins", func() {
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":5050")
		})
	})
}

func TestLoadValidation(t *testing.T) {
	t.Setenv("NAMEPULSE_TOP_LIST_SIZE", "0")

	Convey("Given an invalid top_list_size", t, func() {
		_, err := config.Load()

		Convey("Then validation rejects the config", func() {
			So(err, ShouldWrap, config.ErrInvalidConfig)
		})
	})
}
