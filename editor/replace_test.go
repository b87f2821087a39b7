package editor

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestReplaceAllFold(t *testing.T) {
	Convey("Replace all", t, func() {
		Convey("Every occurrence is replaced and counted", func() {
			text, n := ReplaceAllFold("hello world, hello!", "hello", "yo")

			So(text, ShouldEqual, "yo world, yo!")
			So(n, ShouldEqual, 2)
		})

		Convey("Matching is case-insensitive", func() {
			text, n := ReplaceAllFold("Hello HELLO hello HeLLo", "hello", "hi")

			So(text, ShouldEqual, "hi hi hi hi")
			So(n, ShouldEqual, 4)
		})

		Convey("An empty needle is a no-op", func() {
			text, n := ReplaceAllFold("abc", "", "x")

			So(text, ShouldEqual, "abc")
			So(n, ShouldEqual, 0)
		})

		Convey("No matches leaves the text unchanged", func() {
			text, n := ReplaceAllFold("Hello world", "foo", "bar")

			So(text, ShouldEqual, "Hello world")
			So(n, ShouldEqual, 0)
		})

		Convey("An empty replacement deletes occurrences", func() {
			text, n := ReplaceAllFold("a-b-c-d", "-", "")

			So(text, ShouldEqual, "abcd")
			So(n, ShouldEqual, 3)
		})

		Convey("Matches never overlap", func() {
			text, n := ReplaceAllFold("aaa", "aa", "b")

			So(text, ShouldEqual, "ba")
			So(n, ShouldEqual, 1)
		})

		Convey("A longer replacement is safe", func() {
			text, _ := ReplaceAllFold("a b c", " ", "   ")

			So(text, ShouldEqual, "a   b   c")
		})

		Convey("Newlines are literal characters", func() {
			text, n := ReplaceAllFold("line1\nline2\nline3", "\n", " | ")

			So(text, ShouldEqual, "line1 | line2 | line3")
			So(n, ShouldEqual, 2)
		})

		Convey("Multi-byte text passes through untouched", func() {
			text, n := ReplaceAllFold("Hello 世界 Hello", "Hello", "你好")

			So(text, ShouldEqual, "你好 世界 你好")
			So(n, ShouldEqual, 2)
		})
	})
}
