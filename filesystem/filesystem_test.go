package filesystem

import (
	"testing"

	"github.com/spf13/afero"

	. "github.com/smartystreets/goconvey/convey"
)

func TestBackendSwitching(t *testing.T) {
	Convey("Filesystem backend", t, func() {
		Convey("Defaults to the OS filesystem", func() {
			SetOsFs()
			_, ok := API().Fs.(*afero.OsFs)
			So(ok, ShouldBeTrue)
		})

		Convey("Switches to an in-memory filesystem", func() {
			SetMemMapFs()
			_, ok := API().Fs.(*afero.MemMapFs)
			So(ok, ShouldBeTrue)

			So(API().WriteFile("/probe", []byte("x"), 0644), ShouldBeNil)
			exists, err := API().Exists("/probe")
			So(err, ShouldBeNil)
			So(exists, ShouldBeTrue)
		})

		Reset(SetOsFs)
	})
}
