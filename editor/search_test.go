package editor

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestMatchOffsets(t *testing.T) {
	Convey("Match scanning", t, func() {
		Convey("Offsets come back in scan order, case-insensitively", func() {
			So(matchOffsets("Hello world, hello!", "hello"), ShouldResemble, []int{0, 13})
		})

		Convey("An empty needle has no matches", func() {
			So(matchOffsets("abc", ""), ShouldBeNil)
		})

		Convey("Matches do not overlap", func() {
			So(matchOffsets("aaa", "aa"), ShouldResemble, []int{0})
		})
	})
}

func TestMatchNavigation(t *testing.T) {
	Convey("Match navigation", t, func() {
		offsets := []int{3, 10, 20}

		Convey("nextMatch picks the first offset at or after the cursor", func() {
			So(nextMatch(offsets, 0), ShouldEqual, 0)
			So(nextMatch(offsets, 4), ShouldEqual, 1)
			So(nextMatch(offsets, 10), ShouldEqual, 1)
		})

		Convey("nextMatch wraps to the start", func() {
			So(nextMatch(offsets, 21), ShouldEqual, 0)
		})

		Convey("prevMatch picks the last offset before the cursor", func() {
			So(prevMatch(offsets, 20), ShouldEqual, 1)
			So(prevMatch(offsets, 11), ShouldEqual, 1)
		})

		Convey("prevMatch wraps to the end", func() {
			So(prevMatch(offsets, 0), ShouldEqual, 2)
		})

		Convey("Empty offsets yield -1", func() {
			So(nextMatch(nil, 0), ShouldEqual, -1)
			So(prevMatch(nil, 0), ShouldEqual, -1)
		})
	})
}

func TestLineCol(t *testing.T) {
	Convey("Offset to line and column", t, func() {
		text := "one\ntwo\nthree"

		Convey("Start of text", func() {
			line, col := lineCol(text, 0)
			So(line, ShouldEqual, 0)
			So(col, ShouldEqual, 0)
		})

		Convey("Middle of a later line", func() {
			line, col := lineCol(text, 9)
			So(line, ShouldEqual, 2)
			So(col, ShouldEqual, 1)
		})

		Convey("An offset past the end clamps", func() {
			line, col := lineCol(text, 99)
			So(line, ShouldEqual, 2)
			So(col, ShouldEqual, 5)
		})
	})
}
