package repository_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/ranked/internal/adapters/repository"
	"github.com/okian/ranked/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCSVStoreRoundTrip(t *testing.T) {
	Convey("Given a store in a fresh directory", t, func() {
		ctx := context.Background()
		path := filepath.Join(t.TempDir(), "items.csv")
		store := repository.NewCSVStore(path)

		items := []*model.Item{
			{Name: "first", Rating: 1500, Deviation: 100, Bucket: 0},
			{Name: "with, comma", Rating: 1480.5, Deviation: 71.25, Bucket: 3},
			{Name: "third", Rating: 1620, Deviation: 55, Bucket: 9},
		}

		Convey("When items are saved and loaded back", func() {
			err := store.Save(ctx, items)
			So(err, ShouldBeNil)

			loaded, err := store.Load(ctx)

			Convey("Then every record survives unchanged", func() {
				So(err, ShouldBeNil)
				So(len(loaded), ShouldEqual, len(items))
				for i, it := range items {
					So(loaded[i].Name, ShouldEqual, it.Name)
					So(loaded[i].Rating, ShouldEqual, it.Rating)
					So(loaded[i].Deviation, ShouldEqual, it.Deviation)
					So(loaded[i].Bucket, ShouldEqual, it.Bucket)
				}
			})

			Convey("And no scratch file is left behind", func() {
				So(err, ShouldBeNil)
				_, statErr := os.Stat(path + ".new")
				So(os.IsNotExist(statErr), ShouldBeTrue)
			})
		})

		Convey("When a save replaces previous contents", func() {
			So(store.Save(ctx, items), ShouldBeNil)
			So(store.Save(ctx, items[:1]), ShouldBeNil)

			loaded, err := store.Load(ctx)

			Convey("Then only the fresh copy remains", func() {
				So(err, ShouldBeNil)
				So(len(loaded), ShouldEqual, 1)
				So(loaded[0].Name, ShouldEqual, "first")
			})
		})
	})
}

func TestCSVStoreAppend(t *testing.T) {
	Convey("Given a path with no file yet", t, func() {
		ctx := context.Background()
		path := filepath.Join(t.TempDir(), "items.csv")
		store := repository.NewCSVStore(path)

		Convey("When an item is appended", func() {
			err := store.Append(ctx, model.New("newcomer"))

			Convey("Then the file is created with one default record", func() {
				So(err, ShouldBeNil)
				loaded, err := store.Load(ctx)
				So(err, ShouldBeNil)
				So(len(loaded), ShouldEqual, 1)
				So(loaded[0].Name, ShouldEqual, "newcomer")
				So(loaded[0].Rating, ShouldEqual, model.DefaultRating)
				So(loaded[0].Deviation, ShouldEqual, model.DefaultDeviation)
				So(loaded[0].Bucket, ShouldEqual, 0)
			})
		})

		Convey("When several items are appended", func() {
			So(store.Append(ctx, model.New("a")), ShouldBeNil)
			So(store.Append(ctx, model.New("b")), ShouldBeNil)

			Convey("Then records accumulate in order", func() {
				loaded, err := store.Load(ctx)
				So(err, ShouldBeNil)
				So(len(loaded), ShouldEqual, 2)
				So(loaded[0].Name, ShouldEqual, "a")
				So(loaded[1].Name, ShouldEqual, "b")
			})
		})
	})
}

func TestCSVStoreErrors(t *testing.T) {
	Convey("Given a missing file", t, func() {
		ctx := context.Background()
		path := filepath.Join(t.TempDir(), "missing.csv")
		store := repository.NewCSVStore(path)

		Convey("When loading", func() {
			_, err := store.Load(ctx)

			Convey("Then the error names the file", func() {
				So(err, ShouldNotBeNil)
				So(err, ShouldWrap, repository.ErrOpen)
				So(err.Error(), ShouldContainSubstring, path)
			})
		})
	})

	Convey("Given a file with a malformed record", t, func() {
		ctx := context.Background()
		path := filepath.Join(t.TempDir(), "broken.csv")
		So(os.WriteFile(path, []byte("ok,1500,100,0\nbad,not-a-number,100,0\n"), 0o644), ShouldBeNil)
		store := repository.NewCSVStore(path)

		Convey("When loading", func() {
			_, err := store.Load(ctx)

			Convey("Then parsing fails with the offending record called out", func() {
				So(err, ShouldNotBeNil)
				So(err, ShouldWrap, repository.ErrParse)
				So(err.Error(), ShouldContainSubstring, "record 2")
			})
		})
	})

	Convey("Given a file with the wrong number of fields", t, func() {
		ctx := context.Background()
		path := filepath.Join(t.TempDir(), "short.csv")
		So(os.WriteFile(path, []byte("only,two\n"), 0o644), ShouldBeNil)
		store := repository.NewCSVStore(path)

		Convey("When loading", func() {
			_, err := store.Load(ctx)

			Convey("Then parsing fails", func() {
				So(err, ShouldNotBeNil)
				So(err, ShouldWrap, repository.ErrParse)
			})
		})
	})

	Convey("Given a cancelled context", t, func() {
		path := filepath.Join(t.TempDir(), "items.csv")
		store := repository.NewCSVStore(path)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		Convey("When saving", func() {
			err := store.Save(ctx, nil)

			Convey("Then the write is refused", func() {
				So(err, ShouldWrap, context.Canceled)
			})
		})
	})
}
