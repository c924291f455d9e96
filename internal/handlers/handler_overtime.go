package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/leave_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/leave_tracker_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type overtimeHandler struct {
	overtimeService portssvc.OvertimeSvcFacade
}

func newOvertimeHandler(ots portssvc.OvertimeSvcFacade) *overtimeHandler {
	return &overtimeHandler{
		overtimeService: ots,
	}
}

func registerOvertimeRoutes(rg *gin.RouterGroup, overtimeService portssvc.OvertimeSvcFacade, writeLimit gin.HandlerFunc) {
	h := newOvertimeHandler(overtimeService)

	overtime := rg.Group("/overtime")
	{
		overtime.POST("", writeLimit, h.createOvertime)
		overtime.GET("", h.listOvertime)
		overtime.DELETE("/:overtimeID", writeLimit, h.deleteOvertime)
	}
}

// createOvertime godoc
// @Summary Record overtime
// @Tags overtime
// @Accept json
// @Produce json
// @Param overtime body dto.CreateOvertimeRequest true "Overtime details"
// @Success 201 {object} dto.OvertimeResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or unknown employee"
// @Router /overtime [post]
func (h *overtimeHandler) createOvertime(c *gin.Context) {
	var req dto.CreateOvertimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "Failed to bind JSON for CreateOvertime")
		return
	}

	entry, err := h.overtimeService.CreateOvertime(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Overtime not created")
		return
	}
	c.JSON(http.StatusCreated, dto.ToOvertimeResponse(entry))
}

// listOvertime godoc
// @Summary List overtime records
// @Tags overtime
// @Produce json
// @Success 200 {array} dto.OvertimeResponse
// @Router /overtime [get]
func (h *overtimeHandler) listOvertime(c *gin.Context) {
	entries, err := h.overtimeService.ListOvertime(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list overtime")
		return
	}
	c.JSON(http.StatusOK, dto.ToListOvertimeResponse(entries))
}

// deleteOvertime godoc
// @Summary Delete an overtime record
// @Tags overtime
// @Produce json
// @Param overtimeID path string true "Overtime ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Overtime not found"
// @Router /overtime/{overtimeID} [delete]
func (h *overtimeHandler) deleteOvertime(c *gin.Context) {
	if err := h.overtimeService.DeleteOvertime(c.Request.Context(), c.Param("overtimeID")); err != nil {
		respondError(c, err, "Failed to delete overtime")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Fazla çalışma silindi"})
}
