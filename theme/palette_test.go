package theme

import (
	"testing"

	"github.com/samber/mo"

	. "github.com/smartystreets/goconvey/convey"
)

func TestPalette(t *testing.T) {
	Convey("IsEmpty", t, func() {
		So(Palette{}.IsEmpty(), ShouldBeTrue)
		So(Palette{Caret: mo.Some("#ffffff")}.IsEmpty(), ShouldBeFalse)
	})

	Convey("Merge", t, func() {
		Convey("Earlier palettes win per field", func() {
			merged := Merge(
				Palette{Background: mo.Some("#111111")},
				Palette{Background: mo.Some("#222222"), Foreground: mo.Some("#eeeeee")},
			)

			So(merged.Background.MustGet(), ShouldEqual, "#111111")
			So(merged.Foreground.MustGet(), ShouldEqual, "#eeeeee")
		})

		Convey("An unset field falls through to a later palette", func() {
			merged := Merge(
				Palette{},
				Palette{Caret: mo.Some("#abcdef")},
				Palette{Caret: mo.Some("#000000")},
			)

			So(merged.Caret.MustGet(), ShouldEqual, "#abcdef")
			So(merged.Background.IsAbsent(), ShouldBeTrue)
		})

		Convey("Merging nothing yields the empty palette", func() {
			So(Merge().IsEmpty(), ShouldBeTrue)
		})
	})
}
