package theme

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestStyleManager(t *testing.T) {
	Convey("Appearance tracking", t, func() {
		m := &StyleManager{}

		Convey("SetDark pins the value without probing", func() {
			m.SetDark(true)
			So(m.Dark(), ShouldBeTrue)

			m.SetDark(false)
			So(m.Dark(), ShouldBeFalse)
		})

		Convey("The listener fires only on an actual flip", func() {
			var fired int
			m.SetDark(true)
			m.Notify(func() { fired++ })

			m.SetDark(true)
			So(fired, ShouldEqual, 0)

			m.SetDark(false)
			So(fired, ShouldEqual, 1)
		})

		Convey("ClearNotify detaches the listener", func() {
			var fired int
			m.SetDark(true)
			m.Notify(func() { fired++ })
			m.ClearNotify()

			m.SetDark(false)
			So(fired, ShouldEqual, 0)
		})

		Convey("A new listener replaces the previous one", func() {
			var first, second int
			m.SetDark(true)
			m.Notify(func() { first++ })
			m.Notify(func() { second++ })

			m.SetDark(false)
			So(first, ShouldEqual, 0)
			So(second, ShouldEqual, 1)
		})
	})
}
