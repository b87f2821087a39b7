package icon

import (
	"testing"

	"github.com/spf13/viper"

	"github.com/micropad-cli/micropad/key"

	. "github.com/smartystreets/goconvey/convey"
)

func TestGet(t *testing.T) {
	Convey("Given a registered icon", t, func() {
		target := Success

		Convey("It renders correctly for each variant", func() {
			for _, variant := range AvailableVariants() {
				Convey("variant="+variant, func() {
					viper.Set(key.CliIcons, variant)
					So(Get(target), ShouldNotBeEmpty)
				})
			}
		})

		Convey("It falls back to plain for an unknown variant", func() {
			viper.Set(key.CliIcons, "")
			So(Get(target), ShouldEqual, "+")
		})

		Reset(func() {
			viper.Set(key.CliIcons, "plain")
		})
	})
}
