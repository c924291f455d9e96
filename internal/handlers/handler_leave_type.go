package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/leave_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/leave_tracker_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type leaveTypeHandler struct {
	leaveTypeService portssvc.LeaveTypeSvcFacade
}

func newLeaveTypeHandler(lts portssvc.LeaveTypeSvcFacade) *leaveTypeHandler {
	return &leaveTypeHandler{
		leaveTypeService: lts,
	}
}

func registerLeaveTypeRoutes(rg *gin.RouterGroup, leaveTypeService portssvc.LeaveTypeSvcFacade, writeLimit gin.HandlerFunc) {
	h := newLeaveTypeHandler(leaveTypeService)

	leaveTypes := rg.Group("/leave-types")
	{
		leaveTypes.POST("", writeLimit, h.createLeaveType)
		leaveTypes.GET("", h.listLeaveTypes)
		leaveTypes.DELETE("/:leaveTypeID", writeLimit, h.deleteLeaveType)
	}
}

// createLeaveType godoc
// @Summary Classify a leave day
// @Description Compensatory leave requires a non-zero number of hours
// @Tags leave-types
// @Accept json
// @Produce json
// @Param leaveType body dto.CreateLeaveTypeRequest true "Leave type details"
// @Success 201 {object} dto.LeaveTypeResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input, unknown employee or missing hours"
// @Router /leave-types [post]
func (h *leaveTypeHandler) createLeaveType(c *gin.Context) {
	var req dto.CreateLeaveTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "Failed to bind JSON for CreateLeaveType")
		return
	}

	entry, err := h.leaveTypeService.CreateLeaveType(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Leave type not created")
		return
	}
	c.JSON(http.StatusCreated, dto.ToLeaveTypeResponse(entry))
}

// listLeaveTypes godoc
// @Summary List leave-type records
// @Tags leave-types
// @Produce json
// @Success 200 {array} dto.LeaveTypeResponse
// @Router /leave-types [get]
func (h *leaveTypeHandler) listLeaveTypes(c *gin.Context) {
	entries, err := h.leaveTypeService.ListLeaveTypes(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list leave types")
		return
	}
	c.JSON(http.StatusOK, dto.ToListLeaveTypeResponse(entries))
}

// deleteLeaveType godoc
// @Summary Delete a leave-type record
// @Tags leave-types
// @Produce json
// @Param leaveTypeID path string true "Leave type ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Leave type not found"
// @Router /leave-types/{leaveTypeID} [delete]
func (h *leaveTypeHandler) deleteLeaveType(c *gin.Context) {
	if err := h.leaveTypeService.DeleteLeaveType(c.Request.Context(), c.Param("leaveTypeID")); err != nil {
		respondError(c, err, "Failed to delete leave type")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "İzin türü silindi"})
}
