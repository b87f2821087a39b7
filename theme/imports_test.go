package theme

import (
	"strings"
	"testing"

	"github.com/micropad-cli/micropad/filesystem"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCollectImports(t *testing.T) {
	Convey("Import-chain aggregation", t, func() {
		filesystem.SetMemMapFs()

		Convey("Inline quoted imports are followed", func() {
			writeTestFile("/cfg/alacritty.yml", "import: \"/cfg/colors.yml\"\nfont: mono\n")
			writeTestFile("/cfg/colors.yml", "primary:\n  background: #111111\n")

			agg := CollectImports("/cfg/alacritty.yml")

			So(agg, ShouldContainSubstring, "background: #111111")
			So(agg, ShouldContainSubstring, "font: mono")
		})

		Convey("Imported text precedes the root text", func() {
			writeTestFile("/cfg/alacritty.yml", ""+
				"import: \"/cfg/colors.yml\"\n"+
				"primary:\n  background: #222222\n")
			writeTestFile("/cfg/colors.yml", "primary:\n  background: #111111\n")

			agg := CollectImports("/cfg/alacritty.yml")

			So(strings.Index(agg, "#111111"), ShouldBeLessThan, strings.Index(agg, "#222222"))
			So(ExtractAlacrittyText(agg).Background.MustGet(), ShouldEqual, "#111111")
		})

		Convey("Dash-list imports stop at a section header", func() {
			writeTestFile("/cfg/alacritty.yml", ""+
				"imports:\n"+
				"  - \"/cfg/a.yml\"\n"+
				"  - '/cfg/b.yml'\n"+
				"colors:\n"+
				"  - \"/cfg/ignored.yml\"\n")
			writeTestFile("/cfg/a.yml", "# a\n")
			writeTestFile("/cfg/b.yml", "# b\n")
			writeTestFile("/cfg/ignored.yml", "# ignored\n")

			agg := CollectImports("/cfg/alacritty.yml")

			So(agg, ShouldContainSubstring, "# a")
			So(agg, ShouldContainSubstring, "# b")
			So(agg, ShouldNotContainSubstring, "# ignored")
		})

		Convey("Relative imports resolve against the referencing file", func() {
			writeTestFile("/cfg/nested/alacritty.yml", "import: \"themes/dark.yml\"\n")
			writeTestFile("/cfg/nested/themes/dark.yml", "# dark\n")

			So(CollectImports("/cfg/nested/alacritty.yml"), ShouldContainSubstring, "# dark")
		})

		Convey("A cycle terminates and keeps both files once", func() {
			writeTestFile("/cfg/a.yml", "import: \"/cfg/b.yml\"\n# from-a\n")
			writeTestFile("/cfg/b.yml", "import: \"/cfg/a.yml\"\n# from-b\n")

			agg := CollectImports("/cfg/a.yml")

			So(strings.Count(agg, "# from-a"), ShouldEqual, 1)
			So(strings.Count(agg, "# from-b"), ShouldEqual, 1)
		})

		Convey("A diamond includes the shared file once", func() {
			writeTestFile("/cfg/root.yml", "imports:\n  - \"/cfg/a.yml\"\n  - \"/cfg/b.yml\"\n")
			writeTestFile("/cfg/a.yml", "import: \"/cfg/shared.yml\"\n")
			writeTestFile("/cfg/b.yml", "import: \"/cfg/shared.yml\"\n")
			writeTestFile("/cfg/shared.yml", "# shared\n")

			So(strings.Count(CollectImports("/cfg/root.yml"), "# shared"), ShouldEqual, 1)
		})

		Convey("A missing import is skipped", func() {
			writeTestFile("/cfg/alacritty.yml", "import: \"/cfg/gone.yml\"\n# root\n")

			So(CollectImports("/cfg/alacritty.yml"), ShouldContainSubstring, "# root")
		})

		Convey("A missing root yields nothing", func() {
			So(CollectImports("/cfg/gone.yml"), ShouldBeEmpty)
		})
	})
}
