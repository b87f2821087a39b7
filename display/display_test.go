package display

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestDisplay(t *testing.T) {
	Convey("Provider layering", t, func() {
		d := &Display{}

		theme := NewProvider("@define-color term_bg #111111;")
		app := NewProvider("@define-color term_bg #222222;")
		user := NewProvider("@define-color term_bg #333333;")

		Convey("An empty display has no provider and ambient styles", func() {
			So(d.Provider().IsAbsent(), ShouldBeTrue)
			So(d.Styles().Themed, ShouldBeFalse)
		})

		Convey("The topmost occupied layer wins", func() {
			d.AddProvider(theme, PriorityTheme)
			d.AddProvider(app, PriorityApplication)

			So(d.Provider().MustGet(), ShouldEqual, app)

			d.AddProvider(user, PriorityUser)
			So(d.Provider().MustGet(), ShouldEqual, user)
		})

		Convey("Installing at an occupied layer replaces, never stacks", func() {
			d.AddProvider(theme, PriorityApplication)
			d.AddProvider(app, PriorityApplication)

			So(d.Provider().MustGet(), ShouldEqual, app)

			d.RemoveProvider(app)
			So(d.Provider().IsAbsent(), ShouldBeTrue)
		})

		Convey("Removing an uninstalled provider is a no-op", func() {
			d.AddProvider(app, PriorityApplication)
			d.RemoveProvider(user)

			So(d.Provider().MustGet(), ShouldEqual, app)
		})

		Convey("Styles come from the winning provider", func() {
			d.AddProvider(app, PriorityApplication)

			So(d.Styles().Themed, ShouldBeTrue)
		})
	})
}
