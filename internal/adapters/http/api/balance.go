// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ianmperryman/hockey-team-selection/internal/domain/balance"
	"github.com/ianmperryman/hockey-team-selection/internal/domain/model"
	"github.com/ianmperryman/hockey-team-selection/internal/roster"
)

// BalanceHandler handles balance requests.
type BalanceHandler struct {
	balancer Balancer
}

// NewBalanceHandler creates a new balance handler.
func NewBalanceHandler(balancer Balancer) *BalanceHandler {
	return &BalanceHandler{balancer: balancer}
}

// balanceRequest is the JSON body for POST /balance.
type balanceRequest struct {
	Roster []roster.Record `json:"roster"`
}

// playerView is one member row in a balance response.
type playerView struct {
	Name     string `json:"name"`
	Rank     int    `json:"rank"`
	Position string `json:"position"`
}

// teamView is one team in a balance response.
type teamView struct {
	Name     string       `json:"name"`
	Total    int          `json:"total"`
	Forwards []playerView `json:"forwards"`
	Defence  []playerView `json:"defence"`
}

// balanceResponse mirrors the result workbook: both teams plus the summary.
type balanceResponse struct {
	RunID     string   `json:"run_id"`
	TeamA     teamView `json:"team_a"`
	TeamB     teamView `json:"team_b"`
	SkillDiff int      `json:"skill_diff"`
	Overflows int      `json:"overflows"`
	Attempts  int      `json:"attempts"`
}

// HandleBalance handles POST /balance requests.
func (h *BalanceHandler) HandleBalance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req balanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	if len(req.Roster) == 0 {
		writeError(w, http.StatusBadRequest, "bad_request", errors.New("missing roster"))
		return
	}

	result, err := h.balancer.Balance(r.Context(), req.Roster)
	if err != nil {
		status, code := http.StatusInternalServerError, "search_failed"
		if errors.Is(err, balance.ErrInsufficientPlayers) || errors.Is(err, roster.ErrInvalidRank) {
			status, code = http.StatusUnprocessableEntity, "invalid_roster"
		}
		writeError(w, status, code, err)
		return
	}

	nameA, nameB := h.balancer.TeamNames()
	writeJSON(w, http.StatusOK, balanceResponse{
		RunID:     result.RunID,
		TeamA:     toTeamView(nameA, result.Partition.TeamA),
		TeamB:     toTeamView(nameB, result.Partition.TeamB),
		SkillDiff: result.Partition.Diff,
		Overflows: result.Partition.Overflows,
		Attempts:  result.Attempts,
	})
}

func toTeamView(name string, team *model.TeamState) teamView {
	v := teamView{
		Name:     name,
		Total:    team.Total,
		Forwards: make([]playerView, 0, len(team.Forwards)),
		Defence:  make([]playerView, 0, len(team.Defence)),
	}
	for _, p := range team.Forwards {
		v.Forwards = append(v.Forwards, playerView{Name: p.Name, Rank: p.Rank, Position: string(model.RoleForward)})
	}
	for _, p := range team.Defence {
		v.Defence = append(v.Defence, playerView{Name: p.Name, Rank: p.Rank, Position: string(model.RoleDefence)})
	}
	return v
}
