package repository_test

import (
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/namepulse/internal/adapters/repository"
	"github.com/okian/namepulse/internal/domain/model"
)

func TestMemStore(t *testing.T) {
	tl := model.NewTimeline([]string{"1990s", "2000s"})
	records := []model.NameRecord{
		{Decade: "2000s", Gender: model.Boy, Rank: 2, Name: "Noah", Count: 10},
		{Decade: "1990s", Gender: model.Girl, Rank: 1, Name: "Emma", Count: 20},
		{Decade: "2000s", Gender: model.Boy, Rank: 1, Name: "Liam", Count: 30},
	}

	Convey("Given a populated in-memory store", t, func() {
		store := repository.NewMemStore(tl, records)
		ctx := context.Background()

		Convey("Then All returns every record in timeline order", func() {
			all, err := store.All(ctx)
			So(err, ShouldBeNil)
			So(all, ShouldHaveLength, 3)
			So(all[0].Name, ShouldEqual, "Emma")
			So(all[1].Name, ShouldEqual, "Liam")
			So(all[2].Name, ShouldEqual, "Noah")
		})

		Convey("Then Cohort returns one bucket ordered by rank", func() {
			boys, err := store.Cohort(ctx, "2000s", model.Boy)
			So(err, ShouldBeNil)
			So(boys, ShouldHaveLength, 2)
			So(boys[0].Rank, ShouldEqual, 1)
		})

		Convey("Then an unknown decade yields an empty cohort, not an error", func() {
			got, err := store.Cohort(ctx, "1850s", model.Boy)
			So(err, ShouldBeNil)
			So(got, ShouldBeEmpty)
		})

		Convey("Then reads hand out copies", func() {
			a, _ := store.All(ctx)
			a[0].Name = "mutated"
			b, _ := store.All(ctx)
			So(b[0].Name, ShouldEqual, "Emma")
		})

		Convey("Then the timeline round-trips", func() {
			got, err := store.Timeline(ctx)
			So(err, ShouldBeNil)
			So(got.Decades(), ShouldResemble, []string{"1990s", "2000s"})
		})
	})

	Convey("Given a store without a timeline", t, func() {
		store := repository.NewMemStore(nil, nil)

		Convey("Then Timeline reports the sentinel error", func() {
			_, err := store.Timeline(context.Background())
			So(err, ShouldEqual, repository.ErrNoTimeline)
		})
	})
}
