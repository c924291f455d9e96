package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/leave_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/leave_tracker_app/internal/dto"
	"github.com/SscSPs/leave_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// leaveHandler handles HTTP requests related to leave days.
type leaveHandler struct {
	leaveService portssvc.LeaveSvcFacade
}

func newLeaveHandler(ls portssvc.LeaveSvcFacade) *leaveHandler {
	return &leaveHandler{
		leaveService: ls,
	}
}

func registerLeaveRoutes(rg *gin.RouterGroup, leaveService portssvc.LeaveSvcFacade, writeLimit gin.HandlerFunc) {
	h := newLeaveHandler(leaveService)

	leaves := rg.Group("/leaves")
	{
		leaves.POST("", writeLimit, h.createLeave)
		leaves.GET("", h.listLeaves)
		leaves.DELETE("/:leaveID", writeLimit, h.deleteLeave)
	}
}

// createLeave godoc
// @Summary Book a leave day
// @Description Admits the entry against the scheduling rules: known employee, not today, exclusive pairs, daily cap, one entry per employee and date
// @Tags leaves
// @Accept json
// @Produce json
// @Param leave body dto.CreateLeaveRequest true "Leave details"
// @Success 201 {object} dto.LeaveResponse
// @Failure 400 {object} dto.ErrorResponse "Rejected by a scheduling rule"
// @Router /leaves [post]
func (h *leaveHandler) createLeave(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.CreateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "Failed to bind JSON for CreateLeave")
		return
	}

	logger = logger.With(slog.String("employee_id", req.EmployeeID), slog.String("date", req.Date))
	entry, err := h.leaveService.CreateLeave(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Leave not created")
		return
	}

	logger.Info("Leave created successfully", slog.String("leave_id", entry.ID))
	c.JSON(http.StatusCreated, dto.ToLeaveResponse(entry))
}

// listLeaves godoc
// @Summary List leave days
// @Tags leaves
// @Produce json
// @Param week_start query string false "Only entries of this week (YYYY-MM-DD)"
// @Success 200 {array} dto.LeaveResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid filter"
// @Router /leaves [get]
func (h *leaveHandler) listLeaves(c *gin.Context) {
	var params dto.ListLeavesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err, "Failed to bind query for ListLeaves")
		return
	}

	leaves, err := h.leaveService.ListLeaves(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list leaves")
		return
	}
	c.JSON(http.StatusOK, dto.ToListLeaveResponse(leaves))
}

// deleteLeave godoc
// @Summary Delete a leave day
// @Tags leaves
// @Produce json
// @Param leaveID path string true "Leave ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Leave not found"
// @Router /leaves/{leaveID} [delete]
func (h *leaveHandler) deleteLeave(c *gin.Context) {
	if err := h.leaveService.DeleteLeave(c.Request.Context(), c.Param("leaveID")); err != nil {
		respondError(c, err, "Failed to delete leave")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "İzin silindi"})
}
