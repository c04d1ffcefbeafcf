package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/shadyltdcry-byte/classiklust/internal/api/request"
	"github.com/shadyltdcry-byte/classiklust/internal/api/response"
	"github.com/shadyltdcry-byte/classiklust/internal/dependencies/clock"
	"github.com/shadyltdcry-byte/classiklust/internal/model"
	"github.com/shadyltdcry-byte/classiklust/internal/services/session"
)

// AchievementHandler handles achievement progress and claim endpoints
type AchievementHandler struct {
	engine *session.Engine
	clock  clock.Clock
}

// NewAchievementHandler creates a new achievement handler
func NewAchievementHandler(engine *session.Engine, clk clock.Clock) *AchievementHandler {
	return &AchievementHandler{
		engine: engine,
		clock:  clk,
	}
}

func achievementID(r *http.Request) (model.AchievementID, error) {
	id := mux.Vars(r)["achievement_id"]
	if id == "" {
		return "", NewInvalidRequestError("achievement id is required")
	}
	return model.AchievementID(id), nil
}

// Progress handles POST /api/v1/players/{id}/achievements/{achievement_id}/progress
func (h *AchievementHandler) Progress(w http.ResponseWriter, r *http.Request) {
	id, err := playerID(r)
	if err != nil {
		WriteError(w, err)
		return
	}
	aid, err := achievementID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var req request.AchievementProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	player, err := h.engine.UpdateAchievementProgress(r.Context(), id, aid, req.Delta)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player, h.clock.NowMillis()))
}

// Claim handles POST /api/v1/players/{id}/achievements/{achievement_id}/claim
func (h *AchievementHandler) Claim(w http.ResponseWriter, r *http.Request) {
	id, err := playerID(r)
	if err != nil {
		WriteError(w, err)
		return
	}
	aid, err := achievementID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	player, err := h.engine.ClaimAchievement(r.Context(), id, aid)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player, h.clock.NowMillis()))
}
