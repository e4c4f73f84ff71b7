package workbook_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/xuri/excelize/v2"

	"github.com/ianmperryman/hockey-team-selection/internal/adapters/workbook"
	"github.com/ianmperryman/hockey-team-selection/internal/domain/model"
	"github.com/ianmperryman/hockey-team-selection/internal/roster"
)

func sampleRecords() []roster.Record {
	return []roster.Record{
		{Selected: "TRUE", Name: "Alex", Rank: "7", Position: "F"},
		{Selected: "", Name: "Brett", Rank: "4", Position: "D"},
		{Selected: "YES", Name: "Casey", Rank: "6", Position: "FLEX"},
	}
}

func samplePartition() model.Partition {
	teamA := model.NewTeamState()
	teamA.Forwards = append(teamA.Forwards,
		model.Player{Name: "Alex", Rank: 7, Role: model.RoleForward},
		model.Player{Name: "Casey", Rank: 6, Role: model.RoleFlex},
	)
	teamA.Defence = append(teamA.Defence, model.Player{Name: "Drew", Rank: 3, Role: model.RoleDefence})
	teamA.Total = 16

	teamB := model.NewTeamState()
	teamB.Forwards = append(teamB.Forwards, model.Player{Name: "Evan", Rank: 9, Role: model.RoleForward})
	teamB.Defence = append(teamB.Defence, model.Player{Name: "Fin", Rank: 5, Role: model.RoleDefence})
	teamB.Total = 14

	return model.Partition{TeamA: teamA, TeamB: teamB, Diff: 2, Overflows: 1}
}

func TestRosterRoundTrip(t *testing.T) {
	Convey("Given roster records", t, func() {
		records := sampleRecords()

		Convey("When written and re-read as xlsx", func() {
			path := filepath.Join(t.TempDir(), "roster.xlsx")
			So(workbook.WriteRoster(path, records), ShouldBeNil)

			got, err := workbook.Read(path)

			Convey("Then the records survive unchanged", func() {
				So(err, ShouldBeNil)
				So(got, ShouldResemble, records)
			})
		})

		Convey("When written and re-read as csv", func() {
			path := filepath.Join(t.TempDir(), "roster.csv")
			So(workbook.WriteRoster(path, records), ShouldBeNil)

			got, err := workbook.Read(path)

			Convey("Then the records survive unchanged", func() {
				So(err, ShouldBeNil)
				So(got, ShouldResemble, records)
			})
		})
	})
}

func TestReadValidation(t *testing.T) {
	Convey("Given malformed input files", t, func() {
		dir := t.TempDir()

		Convey("When the header misses required columns", func() {
			path := filepath.Join(dir, "bad.csv")
			So(os.WriteFile(path, []byte("Name,Rank\nAlex,7\n"), 0o600), ShouldBeNil)

			_, err := workbook.Read(path)

			Convey("Then the missing columns are named", func() {
				So(errors.Is(err, workbook.ErrMissingColumns), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "Selected")
				So(err.Error(), ShouldContainSubstring, "Position")
			})
		})

		Convey("When the file does not exist", func() {
			_, err := workbook.Read(filepath.Join(dir, "nope.xlsx"))

			Convey("Then opening fails", func() {
				So(errors.Is(err, workbook.ErrOpen), ShouldBeTrue)
			})
		})

		Convey("When a csv is empty", func() {
			path := filepath.Join(dir, "empty.csv")
			So(os.WriteFile(path, nil, 0o600), ShouldBeNil)

			_, err := workbook.Read(path)

			Convey("Then the empty sheet is rejected", func() {
				So(errors.Is(err, workbook.ErrEmptySheet), ShouldBeTrue)
			})
		})

		Convey("When extra columns and ragged rows appear", func() {
			path := filepath.Join(dir, "extra.csv")
			content := "Email,Selected,Name,Rank,Position\nx@y.z,TRUE,Alex,7,F\n,1,Brett,4\n"
			So(os.WriteFile(path, []byte(content), 0o600), ShouldBeNil)

			got, err := workbook.Read(path)

			Convey("Then known columns map and short rows default blank", func() {
				So(err, ShouldBeNil)
				So(got, ShouldHaveLength, 2)
				So(got[0].Name, ShouldEqual, "Alex")
				So(got[1].Rank, ShouldEqual, "4")
				So(got[1].Position, ShouldEqual, "")
			})
		})
	})
}

func TestWritePartition(t *testing.T) {
	Convey("Given a finished partition", t, func() {
		part := samplePartition()

		Convey("When written as a workbook", func() {
			path := filepath.Join(t.TempDir(), "teams.xlsx")
			w := workbook.NewWriter()
			So(w.Write(path, part), ShouldBeNil)

			f, err := excelize.OpenFile(path)
			So(err, ShouldBeNil)
			defer f.Close()

			Convey("Then both team sheets and the summary exist", func() {
				sheets := f.GetSheetList()
				So(sheets, ShouldContain, "Light Team")
				So(sheets, ShouldContain, "Dark Team")
				So(sheets, ShouldContain, "Summary")
			})

			Convey("Then team rows list forwards before defence with jerseys", func() {
				rows, err := f.GetRows("Light Team")
				So(err, ShouldBeNil)
				So(rows, ShouldHaveLength, 4)
				So(rows[0], ShouldResemble, []string{"Name", "Rank", "Position", "Jersey"})
				So(rows[1], ShouldResemble, []string{"Alex", "7", "F", "LIGHT"})
				So(rows[3], ShouldResemble, []string{"Drew", "3", "D", "LIGHT"})
			})

			Convey("Then the summary carries totals, diff and overflows", func() {
				rows, err := f.GetRows("Summary")
				So(err, ShouldBeNil)
				So(rows[1], ShouldResemble, []string{"Light Team Total Rank", "16"})
				So(rows[2], ShouldResemble, []string{"Dark Team Total Rank", "14"})
				So(rows[3], ShouldResemble, []string{"Skill Difference", "2"})
				So(rows[4], ShouldResemble, []string{"Overflow Placements", "1"})
			})
		})

		Convey("When written with custom naming", func() {
			path := filepath.Join(t.TempDir(), "teams.xlsx")
			w := workbook.NewWriter(
				workbook.WithTeamNames("Home", "Away"),
				workbook.WithJerseys("RED", "BLUE"),
			)
			So(w.Write(path, part), ShouldBeNil)

			f, err := excelize.OpenFile(path)
			So(err, ShouldBeNil)
			defer f.Close()

			Convey("Then the sheets and jerseys use the custom names", func() {
				So(f.GetSheetList(), ShouldContain, "Home")
				rows, err := f.GetRows("Away")
				So(err, ShouldBeNil)
				So(rows[1][3], ShouldEqual, "BLUE")
			})
		})

		Convey("When written as csv", func() {
			path := filepath.Join(t.TempDir(), "teams.csv")
			So(workbook.NewWriter().Write(path, part), ShouldBeNil)

			raw, err := os.ReadFile(path)
			So(err, ShouldBeNil)
			content := string(raw)

			Convey("Then the flat table holds both teams and the summary", func() {
				So(content, ShouldContainSubstring, "Alex,7,F,LIGHT")
				So(content, ShouldContainSubstring, "Evan,9,F,DARK")
				So(content, ShouldContainSubstring, "Skill Difference,2")
				So(strings.Count(content, "LIGHT"), ShouldEqual, 3)
			})
		})
	})
}
