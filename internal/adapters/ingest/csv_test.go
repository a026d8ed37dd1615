package ingest_test

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/namepulse/internal/adapters/ingest"
	"github.com/okian/namepulse/internal/domain/model"
)

func TestParse(t *testing.T) {
	Convey("Given a well-formed snapshot", t, func() {
		in := strings.NewReader(
			"decade,gender,rank,name,count\n" +
				"1990s,girl,1,Emma,20\n" +
				"2000s,boy,1,Liam,30\n")

		records, err := ingest.Parse(in)

		Convey("Then every row parses into a record", func() {
			So(err, ShouldBeNil)
			So(records, ShouldHaveLength, 2)
			So(records[0], ShouldResemble, model.NameRecord{
				Decade: "1990s", Gender: model.Girl, Rank: 1, Name: "Emma", Count: 20,
			})
		})
	})

	Convey("Given padded fields and uppercase gender", t, func() {
		in := strings.NewReader(
			"decade,gender,rank,name,count\n" +
				"2000s, BOY , 2 , Noah , 10\n")

		records, err := ingest.Parse(in)

		Convey("Then fields are trimmed and gender normalized", func() {
			So(err, ShouldBeNil)
			So(records[0].Gender, ShouldEqual, model.Boy)
			So(records[0].Name, ShouldEqual, "Noah")
			So(records[0].Rank, ShouldEqual, 2)
		})
	})

	Convey("Given an empty file", t, func() {
		_, err := ingest.Parse(strings.NewReader(""))

		Convey("Then the empty-snapshot sentinel surfaces", func() {
			So(err, ShouldWrap, ingest.ErrEmptySnapshot)
		})
	})

	Convey("Given data without a header", t, func() {
		_, err := ingest.Parse(strings.NewReader("1990s,girl,1,Emma,20\n"))

		Convey("Then the missing-header sentinel surfaces", func() {
			So(err, ShouldWrap, ingest.ErrMissingHeader)
		})
	})

	Convey("Given an unknown gender", t, func() {
		in := strings.NewReader(
			"decade,gender,rank,name,count\n" +
				"1990s,other,1,Emma,20\n")

		_, err := ingest.Parse(in)

		Convey("Then the error names the offending line", func() {
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "line 2")
			So(err, ShouldWrap, ingest.ErrUnknownGender)
		})
	})

	Convey("Given a non-numeric rank", t, func() {
		in := strings.NewReader(
			"decade,gender,rank,name,count\n" +
				"1990s,girl,first,Emma,20\n")

		_, err := ingest.Parse(in)

		Convey("Then parsing fails with the line number", func() {
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "line 2")
		})
	})

	Convey("Given a row with the wrong field count", t, func() {
		in := strings.NewReader(
			"decade,gender,rank,name,count\n" +
				"1990s,girl,1,Emma\n")

		Convey("Then the reader rejects it", func() {
			_, err := ingest.Parse(in)
			So(err, ShouldNotBeNil)
		})
	})
}
