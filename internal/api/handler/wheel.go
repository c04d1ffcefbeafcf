package handler

import (
	"net/http"

	"github.com/shadyltdcry-byte/classiklust/internal/api/response"
	"github.com/shadyltdcry-byte/classiklust/internal/dependencies/clock"
	"github.com/shadyltdcry-byte/classiklust/internal/services/session"
)

// WheelHandler handles the wheel spin endpoint. The spin cooldown is
// enforced by rate-limiting middleware on the route, not here.
type WheelHandler struct {
	engine *session.Engine
	clock  clock.Clock
}

// NewWheelHandler creates a new wheel handler
func NewWheelHandler(engine *session.Engine, clk clock.Clock) *WheelHandler {
	return &WheelHandler{
		engine: engine,
		clock:  clk,
	}
}

// Spin handles POST /api/v1/players/{id}/wheel/spin
func (h *WheelHandler) Spin(w http.ResponseWriter, r *http.Request) {
	id, err := playerID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	result, err := h.engine.SpinWheel(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SpinResultFromModel(result, h.clock.NowMillis()))
}
