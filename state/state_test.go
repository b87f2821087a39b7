package state

import (
	"testing"

	"github.com/samber/mo"

	"github.com/micropad-cli/micropad/filesystem"
	"github.com/micropad-cli/micropad/where"

	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestState(t *testing.T) {
	Convey("Session persistence", t, func() {
		filesystem.SetMemMapFs()

		Convey("The default session has a sensible geometry", func() {
			s := Default()

			So(s.Path.IsAbsent(), ShouldBeTrue)
			So(s.Geometry.Width, ShouldEqual, 800)
			So(s.Geometry.Height, ShouldEqual, 600)
			So(s.Geometry.Maximized, ShouldBeFalse)
		})

		Convey("Load without a state file returns the default", func() {
			So(Load(), ShouldResemble, Default())
		})

		Convey("Save and load round-trip", func() {
			original := State{
				Path:     mo.Some("/home/user/notes.txt"),
				Geometry: Geometry{Width: 1024, Height: 768, Maximized: true},
			}
			So(original.Save(), ShouldBeNil)

			loaded := Load()

			So(loaded.Path.MustGet(), ShouldEqual, "/home/user/notes.txt")
			So(loaded.Geometry, ShouldResemble, original.Geometry)
		})

		Convey("A null path round-trips as unset", func() {
			So(State{Geometry: Geometry{Width: 640, Height: 480}}.Save(), ShouldBeNil)

			loaded := Load()

			So(loaded.Path.IsAbsent(), ShouldBeTrue)
			So(loaded.Geometry.Width, ShouldEqual, 640)
		})

		Convey("Corrupt JSON degrades to the default", func() {
			So(filesystem.API().WriteFile(where.State(),
				[]byte("not valid json {{{"), 0o644), ShouldBeNil)

			So(Load(), ShouldResemble, Default())
		})

		Convey("Partial JSON keeps defaults for missing fields", func() {
			So(filesystem.API().WriteFile(where.State(),
				[]byte(`{"geometry":{"maximized":true}}`), 0o644), ShouldBeNil)

			loaded := Load()

			So(loaded.Geometry.Maximized, ShouldBeTrue)
			So(loaded.Geometry.Width, ShouldEqual, 800)
		})
	})
}
