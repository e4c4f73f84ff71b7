package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"github.com/ianmperryman/hockey-team-selection/internal/config"
)

func clearConfigEnvVars() {
	for _, key := range []string{
		"HTS_CONFIG", "HTS_ADDR", "HTS_LOG_LEVEL", "HTS_ITERATIONS",
		"HTS_FORWARDS_TARGET", "HTS_DEFENCE_TARGET", "HTS_EARLY_STOP_DIFF",
		"HTS_WORKERS", "HTS_TEAM_A_NAME", "HTS_TEAM_B_NAME", "HTS_OUTPUT_FILE",
	} {
		_ = os.Unsetenv(key)
	}
}

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8090")
				convey.So(cfg.ForwardsTarget, convey.ShouldEqual, 6)
				convey.So(cfg.DefenceTarget, convey.ShouldEqual, 4)
				convey.So(cfg.Iterations, convey.ShouldEqual, 7000)
				convey.So(cfg.EarlyStopDiff, convey.ShouldEqual, 0)
				convey.So(cfg.Workers, convey.ShouldEqual, runtime.NumCPU())
				convey.So(cfg.TeamAName, convey.ShouldEqual, "Light Team")
				convey.So(cfg.TeamBName, convey.ShouldEqual, "Dark Team")
				convey.So(cfg.OutputFile, convey.ShouldEqual, "game_night_teams.xlsx")
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("HTS_ADDR", ":7070")
			_ = os.Setenv("HTS_ITERATIONS", "500")
			_ = os.Setenv("HTS_FORWARDS_TARGET", "5")
			_ = os.Setenv("HTS_TEAM_A_NAME", "Red Team")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":7070")
				convey.So(cfg.Iterations, convey.ShouldEqual, 500)
				convey.So(cfg.ForwardsTarget, convey.ShouldEqual, 5)
				convey.So(cfg.TeamAName, convey.ShouldEqual, "Red Team")
				convey.So(cfg.DefenceTarget, convey.ShouldEqual, 4)
			})
		})

		convey.Convey("When loading config with a YAML file", func() {
			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			yaml := "addr: \":6060\"\niterations: 1234\nteam_b_name: Blue Team\n"
			convey.So(os.WriteFile(path, []byte(yaml), 0o600), convey.ShouldBeNil)

			_ = os.Setenv("HTS_CONFIG", path)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then file values layer over defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":6060")
				convey.So(cfg.Iterations, convey.ShouldEqual, 1234)
				convey.So(cfg.TeamBName, convey.ShouldEqual, "Blue Team")
			})
		})

		convey.Convey("When env and file disagree", func() {
			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			convey.So(os.WriteFile(path, []byte("iterations: 100\n"), 0o600), convey.ShouldBeNil)

			_ = os.Setenv("HTS_CONFIG", path)
			_ = os.Setenv("HTS_ITERATIONS", "200")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then env wins", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Iterations, convey.ShouldEqual, 200)
			})
		})

		convey.Convey("When values fail validation", func() {
			defer clearConfigEnvVars()

			cases := map[string]string{
				"HTS_ITERATIONS":      "0",
				"HTS_FORWARDS_TARGET": "0",
				"HTS_DEFENCE_TARGET":  "-1",
				"HTS_WORKERS":         "0",
				"HTS_EARLY_STOP_DIFF": "-5",
			}
			for key, value := range cases {
				clearConfigEnvVars()
				_ = os.Setenv(key, value)

				_, err := config.Load(ctx)
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			}
		})
	})
}
