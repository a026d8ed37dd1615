package lifecycle_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/namepulse/internal/domain/lifecycle"
	"github.com/okian/namepulse/internal/domain/model"
)

const epsilon = 1e-9

func decades() *model.Timeline {
	return model.NewTimeline([]string{"1980s", "1990s", "2000s", "2010s", "2020s"})
}

func TestBuild(t *testing.T) {
	tl := decades()

	Convey("Given a trajectory spanning several decades", t, func() {
		records := []model.NameRecord{
			{Decade: "2010s", Gender: model.Boy, Rank: 3, Name: "Felix", Count: 40},
			{Decade: "1990s", Gender: model.Boy, Rank: 9, Name: "Felix", Count: 10},
			{Decade: "2000s", Gender: model.Boy, Rank: 5, Name: "Felix", Count: 25},
		}

		out := lifecycle.Build(records, tl)

		Convey("Then appearances are ordered by timeline position", func() {
			So(out, ShouldHaveLength, 1)
			So(out[0].FirstDecade, ShouldEqual, "1990s")
			So(out[0].LastDecade, ShouldEqual, "2010s")
			So(out[0].Longevity, ShouldEqual, 3)
			So(out[0].TotalCount, ShouldEqual, 75)
		})

		Convey("Then rank moments are exact", func() {
			So(out[0].AvgRank, ShouldAlmostEqual, (9.0+5.0+3.0)/3, epsilon)
			// population stddev of {9,5,3}
			So(out[0].RankStddev, ShouldAlmostEqual, 2.494438257849294, 1e-9)
		})

		Convey("Then the peak is the smallest rank and time to peak counts from first appearance", func() {
			So(out[0].PeakDecade, ShouldEqual, "2010s")
			So(out[0].PeakRank, ShouldEqual, 3)
			So(out[0].TimeToPeak, ShouldEqual, 2)
		})
	})

	Convey("Given two decades tied on the best rank", t, func() {
		// The tie-break picks the most recent decade; see DESIGN.md.
		records := []model.NameRecord{
			{Decade: "1990s", Gender: model.Girl, Rank: 2, Name: "Iris", Count: 5},
			{Decade: "2010s", Gender: model.Girl, Rank: 2, Name: "Iris", Count: 7},
			{Decade: "2000s", Gender: model.Girl, Rank: 4, Name: "Iris", Count: 3},
		}

		out := lifecycle.Build(records, tl)

		Convey("Then the most recent tied decade wins", func() {
			So(out, ShouldHaveLength, 1)
			So(out[0].PeakRank, ShouldEqual, 2)
			So(out[0].PeakDecade, ShouldEqual, "2010s")
			So(out[0].TimeToPeak, ShouldEqual, 2)
		})
	})

	Convey("Given a single appearance", t, func() {
		records := []model.NameRecord{
			{Decade: "2020s", Gender: model.Boy, Rank: 7, Name: "Odin", Count: 3},
		}

		out := lifecycle.Build(records, tl)

		Convey("Then stddev is zero and time to peak floors at zero", func() {
			So(out, ShouldHaveLength, 1)
			So(out[0].RankStddev, ShouldAlmostEqual, 0, epsilon)
			So(out[0].TimeToPeak, ShouldEqual, 0)
			So(out[0].Longevity, ShouldEqual, 1)
		})
	})

	Convey("Given a record whose decade is off the timeline", t, func() {
		records := []model.NameRecord{
			{Decade: "1770s", Gender: model.Boy, Rank: 1, Name: "Ezra", Count: 2},
		}

		Convey("Then the trajectory is dropped rather than mis-ordered", func() {
			So(lifecycle.Build(records, tl), ShouldBeEmpty)
		})
	})

	Convey("Given several trajectories", t, func() {
		records := []model.NameRecord{
			{Decade: "2000s", Gender: model.Girl, Rank: 1, Name: "Zoe", Count: 4},
			{Decade: "2000s", Gender: model.Boy, Rank: 1, Name: "Ash", Count: 4},
			{Decade: "2000s", Gender: model.Boy, Rank: 2, Name: "Ben", Count: 2},
		}

		out := lifecycle.Build(records, tl)

		Convey("Then output is sorted by gender then name", func() {
			So(out, ShouldHaveLength, 3)
			So(out[0].Name, ShouldEqual, "Ash")
			So(out[1].Name, ShouldEqual, "Ben")
			So(out[2].Name, ShouldEqual, "Zoe")
		})
	})
}

func TestEvergreenNames(t *testing.T) {
	tl := model.NewTimeline([]string{
		"1900s", "1910s", "1920s", "1930s", "1940s",
		"1950s", "1960s", "1970s", "1980s", "1990s", "2000s",
	})

	Convey("Given one name present in ten decades and one in three", t, func() {
		var records []model.NameRecord
		for _, d := range tl.Decades()[:10] {
			records = append(records, model.NameRecord{
				Decade: d, Gender: model.Girl, Rank: 4, Name: "Anna", Count: 100,
			})
		}
		for _, d := range []string{"1900s", "1950s", "2000s"} {
			records = append(records, model.NameRecord{
				Decade: d, Gender: model.Girl, Rank: 9, Name: "Fay", Count: 10,
			})
		}

		lifecycles := lifecycle.Build(records, tl)
		out := lifecycle.EvergreenNames(lifecycles, 10)

		Convey("Then only the long-lived name qualifies", func() {
			So(out, ShouldHaveLength, 1)
			So(out[0].Name, ShouldEqual, "Anna")
			So(out[0].DecadesPresent, ShouldEqual, 10)
			So(out[0].AvgRank, ShouldAlmostEqual, 4, epsilon)
			So(out[0].TotalCount, ShouldEqual, 1000)
		})
	})

	Convey("Given qualifying names tied on decades present", t, func() {
		lifecycles := []lifecycle.Lifecycle{
			{Name: "B", Gender: model.Boy, Longevity: 10, AvgRank: 6},
			{Name: "A", Gender: model.Boy, Longevity: 12, AvgRank: 8},
			{Name: "C", Gender: model.Boy, Longevity: 10, AvgRank: 2},
		}

		out := lifecycle.EvergreenNames(lifecycles, 10)

		Convey("Then longer presence ranks first, avg rank breaks ties", func() {
			So(out, ShouldHaveLength, 3)
			So(out[0].Name, ShouldEqual, "A")
			So(out[1].Name, ShouldEqual, "C")
			So(out[2].Name, ShouldEqual, "B")
		})
	})
}
