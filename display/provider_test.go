package display

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNewProvider(t *testing.T) {
	Convey("Stylesheet interpretation", t, func() {
		Convey("Literal declarations in every accepted syntax", func() {
			p := NewProvider("" +
				"@define-color term_bg #1d2021;\n" +
				"@define-color term_fg 0xebdbb2;\n" +
				"@define-color term_caret rgb:fa/bd/2f;\n")

			So(p.Color("term_bg").MustGet(), ShouldEqual, "#1d2021")
			So(p.Color("term_fg").MustGet(), ShouldEqual, "#ebdbb2")
			So(p.Color("term_caret").MustGet(), ShouldEqual, "#fabd2f")
		})

		Convey("References resolve through @name indirection", func() {
			p := NewProvider("" +
				"@define-color term_fg #e0e0e0;\n" +
				"@define-color term_sel_fg @term_fg;\n" +
				"@define-color term_caret @term_sel_fg;\n")

			So(p.Color("term_caret").MustGet(), ShouldEqual, "#e0e0e0")
		})

		Convey("A reference cycle drops the declaration instead of looping", func() {
			p := NewProvider("" +
				"@define-color a @b;\n" +
				"@define-color b @a;\n")

			So(p.Color("a").IsAbsent(), ShouldBeTrue)
			So(p.Color("b").IsAbsent(), ShouldBeTrue)
		})

		Convey("alpha() tints over the declared background", func() {
			p := NewProvider("" +
				"@define-color term_bg #101010;\n" +
				"@define-color term_fg #eeeeee;\n" +
				"@define-color term_sel_bg alpha(@term_fg,0.15);\n")

			So(p.Color("term_sel_bg").MustGet(), ShouldEqual, "#313131")
		})

		Convey("mix() blends two resolved colors", func() {
			p := NewProvider("" +
				"@define-color term_bg #101010;\n" +
				"@define-color term_fg #eeeeee;\n" +
				"@define-color term_entry_bg mix(@term_bg, @term_fg, 0.06);\n")

			So(p.Color("term_entry_bg").MustGet(), ShouldEqual, "#1d1d1d")
		})

		Convey("Rule bodies are carried verbatim but not interpreted", func() {
			css := "@define-color term_bg #101010;\nwindow { background-color: @term_bg; }\n"
			p := NewProvider(css)

			So(p.CSS(), ShouldEqual, css)
			So(p.Color("window").IsAbsent(), ShouldBeTrue)
		})

		Convey("An unresolvable declaration is dropped", func() {
			p := NewProvider("@define-color term_bg nonsense;\n")

			So(p.Color("term_bg").IsAbsent(), ShouldBeTrue)
		})
	})
}

func TestProviderStyles(t *testing.T) {
	Convey("Style bundle mapping", t, func() {
		Convey("A themed provider paints the bundle", func() {
			p := NewProvider("" +
				"@define-color term_bg #101010;\n" +
				"@define-color term_fg #eeeeee;\n" +
				"@define-color term_caret #fabd2f;\n")

			s := p.Styles()

			So(s.Themed, ShouldBeTrue)
			So(string(s.Caret), ShouldEqual, "#fabd2f")
		})

		Convey("The ambient bundle is unthemed", func() {
			So(Ambient().Themed, ShouldBeFalse)
		})
	})
}
