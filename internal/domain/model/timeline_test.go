package model_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/namepulse/internal/domain/model"
)

func TestTimeline(t *testing.T) {
	Convey("Given a chronological decade sequence", t, func() {
		tl := model.NewTimeline([]string{"1990s", "2000s", "2010s", "2020s"})

		Convey("Then positions follow sequence order, not lexical order", func() {
			So(tl.Index("1990s"), ShouldEqual, 0)
			So(tl.Index("2020s"), ShouldEqual, 3)
			So(tl.Len(), ShouldEqual, 4)
		})

		Convey("Then unknown labels resolve to the sentinel", func() {
			So(tl.Index("1880s"), ShouldEqual, model.NoDecade)
		})

		Convey("Then At is the inverse of Index inside the range", func() {
			So(tl.At(2), ShouldEqual, "2010s")
			So(tl.At(-1), ShouldEqual, "")
			So(tl.At(4), ShouldEqual, "")
		})

		Convey("Then consecutive pairs cover every adjacent step once", func() {
			pairs := tl.ConsecutivePairs()
			So(pairs, ShouldHaveLength, 3)
			So(pairs[0], ShouldResemble, model.Pair{From: "1990s", To: "2000s"})
			So(pairs[2], ShouldResemble, model.Pair{From: "2010s", To: "2020s"})
		})
	})

	Convey("Given duplicate labels", t, func() {
		tl := model.NewTimeline([]string{"2000s", "2000s", "2010s"})

		Convey("Then the first position wins", func() {
			So(tl.Len(), ShouldEqual, 2)
			So(tl.Index("2000s"), ShouldEqual, 0)
			So(tl.Index("2010s"), ShouldEqual, 1)
		})
	})

	Convey("Given a single decade", t, func() {
		tl := model.NewTimeline([]string{"2000s"})

		Convey("Then there are no consecutive pairs", func() {
			So(tl.ConsecutivePairs(), ShouldBeNil)
		})
	})
}

func TestGrouping(t *testing.T) {
	Convey("Given mixed records", t, func() {
		records := []model.NameRecord{
			{Decade: "2000s", Gender: model.Boy, Rank: 1, Name: "Liam", Count: 10},
			{Decade: "2000s", Gender: model.Girl, Rank: 1, Name: "Emma", Count: 12},
			{Decade: "2010s", Gender: model.Boy, Rank: 2, Name: "Liam", Count: 9},
		}

		Convey("Then cohort grouping keys on decade and gender", func() {
			cohorts := model.GroupByCohort(records)
			So(cohorts, ShouldHaveLength, 3)
			So(cohorts[model.CohortKey{Decade: "2000s", Gender: model.Boy}], ShouldHaveLength, 1)
		})

		Convey("Then trajectory grouping keys on name and gender", func() {
			trajectories := model.GroupByTrajectory(records)
			So(trajectories, ShouldHaveLength, 2)
			So(trajectories[model.TrajectoryKey{Name: "Liam", Gender: model.Boy}], ShouldHaveLength, 2)
		})
	})
}
