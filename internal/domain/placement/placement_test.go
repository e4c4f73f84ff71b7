package placement_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/ianmperryman/hockey-team-selection/internal/domain/model"
	"github.com/ianmperryman/hockey-team-selection/internal/domain/placement"
)

func TestCanAdd(t *testing.T) {
	Convey("Given a team and 2F/1D targets", t, func() {
		targets := placement.Targets{Forwards: 2, Defence: 1}
		team := model.NewTeamState()

		Convey("Then an empty team accepts both roles", func() {
			So(targets.CanAdd(team, model.RoleForward), ShouldBeTrue)
			So(targets.CanAdd(team, model.RoleDefence), ShouldBeTrue)
		})

		Convey("Then CanAdd never mutates the team", func() {
			targets.CanAdd(team, model.RoleForward)
			targets.CanAdd(team, model.RoleDefence)
			So(team.Size(), ShouldEqual, 0)
			So(team.Total, ShouldEqual, 0)
		})

		Convey("Then flex and opaque roles are rejected outright", func() {
			So(targets.CanAdd(team, model.RoleFlex), ShouldBeFalse)
			So(targets.CanAdd(team, model.Role("GOALIE")), ShouldBeFalse)
		})

		Convey("When a collection reaches its target", func() {
			targets.Assign(team, model.Player{Name: "a", Rank: 4}, model.RoleForward)
			targets.Assign(team, model.Player{Name: "b", Rank: 2}, model.RoleForward)

			Convey("Then that role is full while the other stays open", func() {
				So(targets.CanAdd(team, model.RoleForward), ShouldBeFalse)
				So(targets.CanAdd(team, model.RoleDefence), ShouldBeTrue)
			})
		})
	})
}

func TestAssign(t *testing.T) {
	Convey("Given a team accumulating players", t, func() {
		targets := placement.DefaultTargets()
		team := model.NewTeamState()

		Convey("When players are assigned to both roles", func() {
			targets.Assign(team, model.Player{Name: "a", Rank: 7}, model.RoleForward)
			targets.Assign(team, model.Player{Name: "b", Rank: 5}, model.RoleDefence)

			Convey("Then collections and total stay in sync", func() {
				So(team.Forwards, ShouldHaveLength, 1)
				So(team.Defence, ShouldHaveLength, 1)
				So(team.Total, ShouldEqual, 12)
			})
		})

		Convey("Then defaults match the standard 6F/4D shape", func() {
			So(placement.DefaultTargets().Forwards, ShouldEqual, 6)
			So(placement.DefaultTargets().Defence, ShouldEqual, 4)
		})
	})
}
