package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/leave_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/leave_tracker_app/internal/dto"
	"github.com/SscSPs/leave_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// employeeHandler handles HTTP requests related to employees.
type employeeHandler struct {
	employeeService portssvc.EmployeeSvcFacade
}

// newEmployeeHandler creates a new employeeHandler.
func newEmployeeHandler(es portssvc.EmployeeSvcFacade) *employeeHandler {
	return &employeeHandler{
		employeeService: es,
	}
}

// registerEmployeeRoutes registers routes related to employees.
func registerEmployeeRoutes(rg *gin.RouterGroup, employeeService portssvc.EmployeeSvcFacade, writeLimit gin.HandlerFunc) {
	h := newEmployeeHandler(employeeService)

	employees := rg.Group("/employees")
	{
		employees.GET("", h.listEmployees)
		employees.POST("", writeLimit, h.createEmployee)
		employees.PUT("/:employeeID", writeLimit, h.updateEmployee)
		employees.DELETE("/:employeeID", writeLimit, h.deleteEmployee)
	}
}

// listEmployees godoc
// @Summary List employees
// @Description Retrieves every employee in creation order
// @Tags employees
// @Produce json
// @Success 200 {array} dto.EmployeeResponse
// @Failure 503 {object} dto.ErrorResponse "Storage unavailable"
// @Router /employees [get]
func (h *employeeHandler) listEmployees(c *gin.Context) {
	employees, err := h.employeeService.ListEmployees(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list employees")
		return
	}
	c.JSON(http.StatusOK, dto.ToListEmployeeResponse(employees))
}

// createEmployee godoc
// @Summary Create an employee
// @Description Position defaults to Agent, work type to Office and colour to the next palette entry
// @Tags employees
// @Accept json
// @Produce json
// @Param employee body dto.CreateEmployeeRequest true "Employee details"
// @Success 201 {object} dto.EmployeeResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Router /employees [post]
func (h *employeeHandler) createEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "Failed to bind JSON for CreateEmployee")
		return
	}

	employee, err := h.employeeService.CreateEmployee(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create employee")
		return
	}

	logger.Info("Employee created successfully", slog.String("employee_id", employee.ID))
	c.JSON(http.StatusCreated, dto.ToEmployeeResponse(employee))
}

// updateEmployee godoc
// @Summary Update an employee
// @Description Partially updates an employee; at least one field is required
// @Tags employees
// @Accept json
// @Produce json
// @Param employeeID path string true "Employee ID"
// @Param employee body dto.UpdateEmployeeRequest true "Fields to change"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or empty update"
// @Failure 404 {object} dto.ErrorResponse "Employee not found"
// @Router /employees/{employeeID} [put]
func (h *employeeHandler) updateEmployee(c *gin.Context) {
	employeeID := c.Param("employeeID")
	var req dto.UpdateEmployeeRequest
	// An empty body is an update without fields.
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondBindError(c, err, "Failed to bind JSON for UpdateEmployee")
		return
	}

	employee, err := h.employeeService.UpdateEmployee(c.Request.Context(), employeeID, req)
	if err != nil {
		respondError(c, err, "Failed to update employee")
		return
	}
	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

// deleteEmployee godoc
// @Summary Delete an employee
// @Description Fails while any leave, overtime or leave-type record references the employee
// @Tags employees
// @Produce json
// @Param employeeID path string true "Employee ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Employee has dependent records"
// @Failure 404 {object} dto.ErrorResponse "Employee not found"
// @Router /employees/{employeeID} [delete]
func (h *employeeHandler) deleteEmployee(c *gin.Context) {
	employeeID := c.Param("employeeID")
	if err := h.employeeService.DeleteEmployee(c.Request.Context(), employeeID); err != nil {
		respondError(c, err, "Failed to delete employee")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Temsilci silindi"})
}
