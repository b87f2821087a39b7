package theme

import (
	"testing"

	"github.com/micropad-cli/micropad/filesystem"

	. "github.com/smartystreets/goconvey/convey"
)

func writeTestFile(path, content string) {
	So(filesystem.API().WriteFile(path, []byte(content), 0o644), ShouldBeNil)
}

func TestParseAlacritty(t *testing.T) {
	Convey("Structured alacritty parsing", t, func() {
		filesystem.SetMemMapFs()

		Convey("A minimal TOML config synthesizes the missing fields", func() {
			writeTestFile("/cfg/alacritty.toml", ""+
				"[colors.primary]\n"+
				"background = \"#101010\"\n"+
				"foreground = \"#eeeeee\"\n")

			pal, ok := ParseAlacritty("/cfg/alacritty.toml").Get()

			So(ok, ShouldBeTrue)
			So(pal.Background.MustGet(), ShouldEqual, "#101010")
			So(pal.Foreground.MustGet(), ShouldEqual, "#eeeeee")
			So(pal.SelectionBackground.MustGet(), ShouldEqual, "#313131")
			So(pal.SelectionForeground.MustGet(), ShouldEqual, "#eeeeee")
			So(pal.Caret.MustGet(), ShouldEqual, "#eeeeee")
		})

		Convey("Explicit selection and cursor blocks are preferred", func() {
			writeTestFile("/cfg/alacritty.toml", ""+
				"[colors.primary]\n"+
				"background = \"#101010\"\n"+
				"foreground = \"#eeeeee\"\n"+
				"[colors.selection]\n"+
				"background = \"#334455\"\n"+
				"text = \"#ffffff\"\n"+
				"[colors.bright]\n"+
				"white = \"#fafafa\"\n")

			pal := ParseAlacritty("/cfg/alacritty.toml").MustGet()

			So(pal.SelectionBackground.MustGet(), ShouldEqual, "#334455")
			So(pal.SelectionForeground.MustGet(), ShouldEqual, "#ffffff")
			So(pal.Caret.MustGet(), ShouldEqual, "#fafafa")
		})

		Convey("Legacy YAML is handled by extension", func() {
			writeTestFile("/cfg/alacritty.yml", ""+
				"colors:\n"+
				"  primary:\n"+
				"    background: \"0x1d2021\"\n"+
				"    foreground: \"0xebdbb2\"\n")

			pal := ParseAlacritty("/cfg/alacritty.yml").MustGet()

			So(pal.Background.MustGet(), ShouldEqual, "#1d2021")
			So(pal.Foreground.MustGet(), ShouldEqual, "#ebdbb2")
		})

		Convey("An empty structured config falls back to the default pair", func() {
			writeTestFile("/cfg/alacritty.toml", "[window]\nopacity = 1.0\n")

			pal := ParseAlacritty("/cfg/alacritty.toml").MustGet()

			So(pal.Background.MustGet(), ShouldEqual, "#1e1e1e")
			So(pal.Foreground.MustGet(), ShouldEqual, "#e0e0e0")
		})

		Convey("Undeserializable input returns None", func() {
			writeTestFile("/cfg/alacritty.toml", "= this is not toml =\n")

			So(ParseAlacritty("/cfg/alacritty.toml").IsAbsent(), ShouldBeTrue)
		})

		Convey("Unknown extensions are rejected without reading", func() {
			So(ParseAlacritty("/cfg/alacritty.conf").IsAbsent(), ShouldBeTrue)
		})
	})
}

func TestExtractAlacrittyText(t *testing.T) {
	Convey("Regex fallback extraction", t, func() {
		Convey("Block-scoped keys are found across dialect styles", func() {
			pal := ExtractAlacrittyText("" +
				"colors.primary:\n" +
				"  background: 0x282828\n" +
				"  foreground: rgb:eb/db/b2\n" +
				"selection:\n" +
				"  background = #45403d\n")

			So(pal.Background.MustGet(), ShouldEqual, "#282828")
			So(pal.Foreground.MustGet(), ShouldEqual, "#ebdbb2")
			So(pal.SelectionBackground.MustGet(), ShouldEqual, "#45403d")
			So(pal.Caret.IsAbsent(), ShouldBeTrue)
		})

		Convey("The first match in scan order wins", func() {
			pal := ExtractAlacrittyText("" +
				"primary:\n" +
				"  background: #111111\n" +
				"primary:\n" +
				"  background: #222222\n")

			So(pal.Background.MustGet(), ShouldEqual, "#111111")
		})

		Convey("Selection text is preferred over selection foreground", func() {
			pal := ExtractAlacrittyText("" +
				"selection:\n" +
				"  foreground: #111111\n" +
				"  text: #222222\n")

			So(pal.SelectionForeground.MustGet(), ShouldEqual, "#222222")
		})
	})
}

func TestPaletteFromThemeDir(t *testing.T) {
	Convey("Theme directory extraction", t, func() {
		filesystem.SetMemMapFs()

		Convey("Alacritty files are preferred over kitty and foot", func() {
			writeTestFile("/theme/alacritty.toml", ""+
				"[colors.primary]\nbackground = \"#101010\"\nforeground = \"#eeeeee\"\n")
			writeTestFile("/theme/kitty.conf", "background #222222\n")

			pal := PaletteFromThemeDir("/theme")

			So(pal.Background.MustGet(), ShouldEqual, "#101010")
		})

		Convey("kitty.conf is used when no alacritty file exists", func() {
			writeTestFile("/theme/kitty.conf", ""+
				"background #1d2021\n"+
				"foreground #ebdbb2\n"+
				"cursor #fabd2f\n"+
				"selection_background #504945\n")

			pal := PaletteFromThemeDir("/theme")

			So(pal.Background.MustGet(), ShouldEqual, "#1d2021")
			So(pal.Caret.MustGet(), ShouldEqual, "#fabd2f")
			So(pal.SelectionBackground.MustGet(), ShouldEqual, "#504945")
			So(pal.SelectionForeground.IsAbsent(), ShouldBeTrue)
		})

		Convey("foot.ini is the last resort", func() {
			writeTestFile("/theme/foot.ini", ""+
				"[colors]\n"+
				"background=1e1e2e\n"+
				"foreground = #cdd6f4\n")

			pal := PaletteFromThemeDir("/theme")

			// bare hex without a recognized prefix is not a color form
			So(pal.Background.IsAbsent(), ShouldBeTrue)
			So(pal.Foreground.MustGet(), ShouldEqual, "#cdd6f4")
		})

		Convey("An empty directory yields an empty palette", func() {
			So(PaletteFromThemeDir("/nowhere").IsEmpty(), ShouldBeTrue)
		})
	})
}
