package app_test

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/xuri/excelize/v2"

	"github.com/ianmperryman/hockey-team-selection/internal/adapters/workbook"
	"github.com/ianmperryman/hockey-team-selection/internal/app"
	"github.com/ianmperryman/hockey-team-selection/internal/domain/balance"
	"github.com/ianmperryman/hockey-team-selection/internal/domain/placement"
	"github.com/ianmperryman/hockey-team-selection/internal/roster"
	"github.com/ianmperryman/hockey-team-selection/pkg/logger"
)

// flexRows builds n selected flex rows, all rank 5.
func flexRows(n int) []roster.Record {
	rows := make([]roster.Record, n)
	for i := range rows {
		rows[i] = roster.Record{
			Selected: "TRUE",
			Name:     fmt.Sprintf("Player %02d", i+1),
			Rank:     "5",
			Position: "FLEX",
		}
	}
	return rows
}

func newService(opts ...app.Option) *app.Service {
	_ = logger.Init()
	base := []app.Option{
		app.WithTargets(placement.Targets{Forwards: 4, Defence: 2}),
		app.WithIterations(200),
	}
	return app.New(append(base, opts...)...)
}

func TestServiceBalance(t *testing.T) {
	Convey("Given a service over a 4F/2D shape", t, func() {
		svc := newService()

		Convey("When balancing a roster that admits a perfect split", func() {
			result, err := svc.Balance(context.Background(), flexRows(12))

			Convey("Then it returns a complete partition with a run id", func() {
				So(err, ShouldBeNil)
				So(result.Partition.Size(), ShouldEqual, 12)
				So(result.Partition.Diff, ShouldEqual, 0)
				So(result.Players, ShouldEqual, 12)
				_, parseErr := uuid.Parse(result.RunID)
				So(parseErr, ShouldBeNil)
			})

			Convey("Then stats reflect the run", func() {
				stats := svc.Stats()
				So(stats["runs"], ShouldEqual, int64(1))
				So(stats["lastRunID"], ShouldEqual, result.RunID)
				So(stats["lastSkillDiff"], ShouldEqual, 0)
			})
		})

		Convey("When the roster has too few selected players", func() {
			_, err := svc.Balance(context.Background(), flexRows(9))

			Convey("Then the run is rejected before searching", func() {
				So(errors.Is(err, balance.ErrInsufficientPlayers), ShouldBeTrue)
			})
		})

		Convey("When a selected rank is malformed", func() {
			rows := flexRows(12)
			rows[5].Rank = "???"

			_, err := svc.Balance(context.Background(), rows)

			Convey("Then the parse failure surfaces", func() {
				So(errors.Is(err, roster.ErrInvalidRank), ShouldBeTrue)
			})
		})
	})
}

func TestServiceBalanceFile(t *testing.T) {
	Convey("Given a roster spreadsheet on disk", t, func() {
		dir := t.TempDir()
		input := filepath.Join(dir, "roster.xlsx")
		So(workbook.WriteRoster(input, flexRows(12)), ShouldBeNil)

		svc := newService(app.WithTeamNames("Home", "Away"))

		Convey("When balancing file to file", func() {
			output := filepath.Join(dir, "teams.xlsx")
			result, err := svc.BalanceFile(context.Background(), input, output)

			Convey("Then the result workbook is written with the configured sheets", func() {
				So(err, ShouldBeNil)
				So(result.Partition.Size(), ShouldEqual, 12)

				f, openErr := excelize.OpenFile(output)
				So(openErr, ShouldBeNil)
				defer f.Close()
				So(f.GetSheetList(), ShouldContain, "Home")
				So(f.GetSheetList(), ShouldContain, "Away")
				So(f.GetSheetList(), ShouldContain, "Summary")
			})
		})

		Convey("When the input file is missing", func() {
			_, err := svc.BalanceFile(context.Background(), filepath.Join(dir, "nope.xlsx"), filepath.Join(dir, "out.xlsx"))

			Convey("Then the read failure surfaces", func() {
				So(errors.Is(err, workbook.ErrOpen), ShouldBeTrue)
			})
		})
	})
}
