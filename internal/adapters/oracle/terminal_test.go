package oracle_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/okian/ranked/internal/adapters/oracle"
	. "github.com/smartystreets/goconvey/convey"
)

func TestTerminalAsk(t *testing.T) {
	Convey("Given a terminal oracle with scripted input", t, func() {
		ctx := context.Background()

		ask := func(input string) (oracle.Answer, string, error) {
			var out bytes.Buffer
			term := oracle.NewTerminal(
				oracle.WithInput(strings.NewReader(input)),
				oracle.WithOutput(&out),
			)
			answer, err := term.Ask(ctx, "Blue Album", "Pinkerton")
			return answer, out.String(), err
		}

		Convey("When the human picks the first candidate", func() {
			answer, prompt, err := ask("1\n")

			Convey("Then the answer is Left and both names were shown", func() {
				So(err, ShouldBeNil)
				So(answer, ShouldEqual, oracle.Left)
				So(prompt, ShouldContainSubstring, "1. Blue Album")
				So(prompt, ShouldContainSubstring, "2. Pinkerton")
			})
		})

		Convey("When the human picks the second candidate", func() {
			answer, _, err := ask("2\n")

			Convey("Then the answer is Right", func() {
				So(err, ShouldBeNil)
				So(answer, ShouldEqual, oracle.Right)
			})
		})

		Convey("When the human just presses enter", func() {
			answer, _, err := ask("\n")

			Convey("Then the default answer is Equal", func() {
				So(err, ShouldBeNil)
				So(answer, ShouldEqual, oracle.Equal)
			})
		})

		Convey("When the human types a word", func() {
			for input, want := range map[string]oracle.Answer{
				"left\n":  oracle.Left,
				"RIGHT\n": oracle.Right,
				"equal\n": oracle.Equal,
				"=\n":     oracle.Equal,
			} {
				answer, _, err := ask(input)
				So(err, ShouldBeNil)
				So(answer, ShouldEqual, want)
			}
		})

		Convey("When the answer is unrecognized", func() {
			_, _, err := ask("maybe\n")

			Convey("Then the run is aborted", func() {
				So(err, ShouldWrap, oracle.ErrAborted)
				So(err.Error(), ShouldContainSubstring, "maybe")
			})
		})

		Convey("When input ends before an answer", func() {
			_, _, err := ask("")

			Convey("Then the run is aborted", func() {
				So(err, ShouldWrap, oracle.ErrAborted)
			})
		})
	})

	Convey("Given a cancelled context", t, func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		term := oracle.NewTerminal(
			oracle.WithInput(strings.NewReader("1\n")),
			oracle.WithOutput(&bytes.Buffer{}),
		)

		Convey("When asking", func() {
			_, err := term.Ask(ctx, "a", "b")

			Convey("Then no prompt is issued and the run aborts", func() {
				So(err, ShouldWrap, oracle.ErrAborted)
			})
		})
	})
}
