package glicko_test

import (
	"math"
	"testing"

	"github.com/okian/ranked/internal/domain/glicko"
	. "github.com/smartystreets/goconvey/convey"
)

func TestGlicko1Update(t *testing.T) {
	Convey("Given two fresh players", t, func() {
		rater := glicko.New()
		left := glicko.Rating{Value: 1500, Deviation: 100}
		right := glicko.Rating{Value: 1500, Deviation: 100}

		Convey("When the left player wins", func() {
			newLeft, newRight, err := rater.Update(left, right, glicko.Win)

			Convey("Then the winner gains and the loser loses", func() {
				So(err, ShouldBeNil)
				So(newLeft.Value, ShouldBeGreaterThan, left.Value)
				So(newRight.Value, ShouldBeLessThan, right.Value)
			})

			Convey("And both deviations shrink", func() {
				So(err, ShouldBeNil)
				So(newLeft.Deviation, ShouldBeLessThan, left.Deviation)
				So(newRight.Deviation, ShouldBeLessThan, right.Deviation)
				So(newLeft.Deviation, ShouldBeGreaterThan, 0)
				So(newRight.Deviation, ShouldBeGreaterThan, 0)
			})

			Convey("And the update is symmetric for equal players", func() {
				So(err, ShouldBeNil)
				So(newLeft.Value-left.Value, ShouldAlmostEqual, right.Value-newRight.Value, 1e-9)
				So(newLeft.Deviation, ShouldAlmostEqual, newRight.Deviation, 1e-9)
			})
		})

		Convey("When the right player wins", func() {
			newLeft, newRight, err := rater.Update(left, right, glicko.Loss)

			Convey("Then the left player loses rating", func() {
				So(err, ShouldBeNil)
				So(newLeft.Value, ShouldBeLessThan, left.Value)
				So(newRight.Value, ShouldBeGreaterThan, right.Value)
			})
		})

		Convey("When one side keeps winning", func() {
			a, b := left, right
			rounds := 0
			for b.Deviation > 65 || a.Deviation > 65 {
				var err error
				a, b, err = rater.Update(a, b, glicko.Win)
				So(err, ShouldBeNil)
				rounds++
				So(rounds, ShouldBeLessThan, 1000)
			}

			Convey("Then both ratings settle with the winner ahead", func() {
				So(a.Value, ShouldBeGreaterThan, b.Value)
				So(a.Deviation, ShouldBeLessThanOrEqualTo, 65)
				So(b.Deviation, ShouldBeLessThanOrEqualTo, 65)
			})
		})
	})

	Convey("Given corrupt input", t, func() {
		rater := glicko.New()
		good := glicko.Rating{Value: 1500, Deviation: 100}

		Convey("When a rating is NaN", func() {
			_, _, err := rater.Update(glicko.Rating{Value: math.NaN(), Deviation: 100}, good, glicko.Win)

			Convey("Then the update is rejected, never clamped", func() {
				So(err, ShouldNotBeNil)
				So(err, ShouldWrap, glicko.ErrNonFinite)
			})
		})

		Convey("When a deviation is infinite", func() {
			_, _, err := rater.Update(good, glicko.Rating{Value: 1500, Deviation: math.Inf(1)}, glicko.Win)

			Convey("Then the update is rejected", func() {
				So(err, ShouldNotBeNil)
				So(err, ShouldWrap, glicko.ErrNonFinite)
			})
		})

		Convey("When a deviation is negative", func() {
			_, _, err := rater.Update(good, glicko.Rating{Value: 1500, Deviation: -1}, glicko.Win)

			Convey("Then the update is rejected", func() {
				So(err, ShouldNotBeNil)
				So(err, ShouldWrap, glicko.ErrNonFinite)
			})
		})
	})
}

func TestGlicko1Decay(t *testing.T) {
	Convey("Given a settled rating", t, func() {
		rater := glicko.New()
		settled := glicko.Rating{Value: 1600, Deviation: 60}

		Convey("When a decay step is applied", func() {
			decayed := rater.Decay(settled)

			Convey("Then the deviation widens past the convergence threshold", func() {
				So(decayed.Deviation, ShouldBeGreaterThan, 65)
				So(decayed.Value, ShouldEqual, settled.Value)
			})
		})

		Convey("When decay is applied many times", func() {
			r := settled
			for i := 0; i < 100; i++ {
				r = rater.Decay(r)
			}

			Convey("Then the deviation is capped at the ceiling", func() {
				So(r.Deviation, ShouldEqual, 350.0)
			})
		})

		Convey("When a custom decay factor and ceiling are configured", func() {
			custom := glicko.New(glicko.WithDecayFactor(10), glicko.WithMaxDeviation(70))
			decayed := custom.Decay(settled)

			Convey("Then one step widens by the smaller factor", func() {
				So(decayed.Deviation, ShouldAlmostEqual, math.Sqrt(60*60+10*10), 1e-9)
				So(decayed.Deviation, ShouldBeLessThan, 70)
			})
		})
	})
}
