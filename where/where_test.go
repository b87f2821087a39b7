package where

import (
	"path/filepath"
	"testing"

	"github.com/samber/lo"

	"github.com/micropad-cli/micropad/filesystem"

	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Use in-memory filesystem for tests to avoid creating real directories
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Logs()", func() {
			path := Logs()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("State() lives under the config directory", func() {
			So(State(), ShouldEqual, filepath.Join(Config(), "state.json"))
		})

		Convey("UserStylesheet() lives under the config directory", func() {
			So(UserStylesheet(), ShouldEqual, filepath.Join(Config(), "style.css"))
		})

		Convey("Config() honors the override variable", func() {
			t.Setenv(EnvConfigPath, filepath.Join("/", "custom", "micropad"))
			So(Config(), ShouldEqual, filepath.Join("/", "custom", "micropad"))
		})
	})
}

func TestThemePaths(t *testing.T) {
	Convey("Theme-source paths", t, func() {
		t.Setenv("XDG_CONFIG_HOME", filepath.Join("/", "xdg"))

		Convey("Omarchy paths hang off the shared config home", func() {
			So(OmarchyRoot(), ShouldEqual, filepath.Join("/", "xdg", "omarchy"))
			So(OmarchyThemes(), ShouldEqual, filepath.Join(OmarchyRoot(), "themes"))
			So(OmarchyCurrentTheme(), ShouldEqual, filepath.Join(OmarchyRoot(), "current", "theme"))
			So(OmarchyMarkers(), ShouldHaveLength, 3)
		})

		Convey("Alacritty candidates are ordered toml, yml, yaml, home dotfile", func() {
			cands := AlacrittyCandidates()
			So(cands, ShouldHaveLength, 4)
			So(cands[0], ShouldEqual, filepath.Join(AlacrittyDir(), "alacritty.toml"))
			So(filepath.Base(cands[3]), ShouldEqual, ".alacritty.yml")
		})

		Convey("HyprConfig points at the window manager config", func() {
			So(HyprConfig(), ShouldEqual, filepath.Join("/", "xdg", "hypr", "hyprland.conf"))
		})
	})
}
