package handler

import (
	"encoding/json"
	"net/http"

	"github.com/shadyltdcry-byte/classiklust/internal/api/request"
	"github.com/shadyltdcry-byte/classiklust/internal/api/response"
	"github.com/shadyltdcry-byte/classiklust/internal/dependencies/clock"
	"github.com/shadyltdcry-byte/classiklust/internal/services/session"
)

// VipHandler handles VIP purchase and status endpoints
type VipHandler struct {
	engine *session.Engine
	clock  clock.Clock
}

// NewVipHandler creates a new VIP handler
func NewVipHandler(engine *session.Engine, clk clock.Clock) *VipHandler {
	return &VipHandler{
		engine: engine,
		clock:  clk,
	}
}

// Purchase handles POST /api/v1/players/{id}/vip
func (h *VipHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	id, err := playerID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var req request.PurchaseVipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.PlanID == "" {
		WriteError(w, NewInvalidRequestError("plan_id is required"))
		return
	}

	player, err := h.engine.PurchaseVip(r.Context(), id, req.PlanID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player, h.clock.NowMillis()))
}

// Status handles GET /api/v1/players/{id}/vip
func (h *VipHandler) Status(w http.ResponseWriter, r *http.Request) {
	id, err := playerID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	info, err := h.engine.VipStatus(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.VipStatusFromInfo(info))
}
