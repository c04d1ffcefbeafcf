package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/shadyltdcry-byte/classiklust/internal/api/response"
	"github.com/shadyltdcry-byte/classiklust/internal/dependencies/clock"
	"github.com/shadyltdcry-byte/classiklust/internal/model"
	"github.com/shadyltdcry-byte/classiklust/internal/services/session"
)

// PlayerHandler handles tap, login and snapshot endpoints
type PlayerHandler struct {
	engine *session.Engine
	clock  clock.Clock
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(engine *session.Engine, clk clock.Clock) *PlayerHandler {
	return &PlayerHandler{
		engine: engine,
		clock:  clk,
	}
}

// playerID extracts the player id path variable
func playerID(r *http.Request) (model.PlayerID, error) {
	id := mux.Vars(r)["id"]
	if id == "" {
		return "", NewInvalidRequestError("player id is required")
	}
	return model.PlayerID(id), nil
}

// Tap handles POST /api/v1/players/{id}/tap
func (h *PlayerHandler) Tap(w http.ResponseWriter, r *http.Request) {
	id, err := playerID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	player, err := h.engine.Tap(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player, h.clock.NowMillis()))
}

// Login handles POST /api/v1/players/{id}/login
func (h *PlayerHandler) Login(w http.ResponseWriter, r *http.Request) {
	id, err := playerID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	player, err := h.engine.Login(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player, h.clock.NowMillis()))
}

// Get handles GET /api/v1/players/{id}
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := playerID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	player, err := h.engine.GetPlayer(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player, h.clock.NowMillis()))
}
