package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"

	portssvc "github.com/SscSPs/hr_payroll_admin/internal/core/ports/services"
	"github.com/SscSPs/hr_payroll_admin/internal/dto"
	"github.com/SscSPs/hr_payroll_admin/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// ImportSettings configures the roster upload route.
type ImportSettings struct {
	MaxUploadBytes    int64
	ErrorDisplayLimit int
	// RateLimiter is optional; nil disables rate limiting on the upload route.
	RateLimiter *limiter.Limiter
}

// employeeHandler handles HTTP requests related to employees.
type employeeHandler struct {
	employeeService portssvc.EmployeeSvcFacade
	importService   portssvc.RosterImportSvc
	importSettings  ImportSettings
}

func newEmployeeHandler(es portssvc.EmployeeSvcFacade, is portssvc.RosterImportSvc, settings ImportSettings) *employeeHandler {
	return &employeeHandler{
		employeeService: es,
		importService:   is,
		importSettings:  settings,
	}
}

// RegisterEmployeeRoutes registers employee routes, including the bulk roster import.
func RegisterEmployeeRoutes(rg *gin.RouterGroup, employeeService portssvc.EmployeeSvcFacade, importService portssvc.RosterImportSvc, settings ImportSettings) {
	h := newEmployeeHandler(employeeService, importService, settings)

	employees := rg.Group("/employees")
	{
		employees.POST("", h.createEmployee)
		employees.GET("", h.listEmployees)

		importHandlers := []gin.HandlerFunc{}
		if settings.RateLimiter != nil {
			importHandlers = append(importHandlers, middleware.RateLimit(settings.RateLimiter))
		}
		importHandlers = append(importHandlers, h.importRoster)
		employees.POST("/import", importHandlers...)

		employees.GET("/:employeeID", h.getEmployee)
		employees.PUT("/:employeeID", h.updateEmployee)
		employees.PUT("/:employeeID/compensation", h.updateCompensation)
		employees.GET("/:employeeID/compensation/totals", h.getEmployeeTotals)
	}
}

// createEmployee godoc
// @Summary Create an employee
// @Description Creates an employee record with legacy or component-based compensation. Fails when the plan's employee limit is reached.
// @Tags employees
// @Accept  json
// @Produce  json
// @Param   employee body dto.EmployeeRequest true "Employee details"
// @Success 201 {object} dto.EmployeeResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Employee already exists"
// @Failure 422 {object} map[string]string "Employee limit reached"
// @Failure 500 {object} map[string]string "Failed to create employee"
// @Security BearerAuth
// @Router /employees [post]
func (h *employeeHandler) createEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateEmployee", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	employee, err := req.ToDomain()
	if err != nil {
		respondError(c, logger, err, "Failed to create employee")
		return
	}

	created, err := h.employeeService.CreateEmployee(c.Request.Context(), employee, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create employee")
		return
	}

	logger.Info("Employee created", slog.String("employee_id", created.EmployeeID))
	c.JSON(http.StatusCreated, dto.ToEmployeeResponse(created))
}

// listEmployees godoc
// @Summary List employees
// @Description Lists employees in creation order using token pagination.
// @Tags employees
// @Produce  json
// @Param   limit query int false "Page size (1-200)" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListEmployeesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list employees"
// @Security BearerAuth
// @Router /employees [get]
func (h *employeeHandler) listEmployees(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListEmployeesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListEmployees", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	employees, nextToken, err := h.employeeService.ListEmployees(c.Request.Context(), params.Limit, params.NextToken)
	if err != nil {
		respondError(c, logger, err, "Failed to list employees")
		return
	}

	c.JSON(http.StatusOK, dto.ToListEmployeesResponse(employees, nextToken))
}

// getEmployee godoc
// @Summary Get an employee
// @Tags employees
// @Produce  json
// @Param   employeeID path string true "Employee ID"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Employee not found"
// @Failure 500 {object} map[string]string "Failed to get employee"
// @Security BearerAuth
// @Router /employees/{employeeID} [get]
func (h *employeeHandler) getEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID := c.Param("employeeID")

	employee, err := h.employeeService.GetEmployee(c.Request.Context(), employeeID)
	if err != nil {
		respondError(c, logger.With(slog.String("employee_id", employeeID)), err, "Failed to get employee")
		return
	}
	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

// updateEmployee godoc
// @Summary Update an employee
// @Description Replaces an employee record, including its compensation.
// @Tags employees
// @Accept  json
// @Produce  json
// @Param   employeeID path string true "Employee ID"
// @Param   employee body dto.EmployeeRequest true "Employee details"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Employee not found"
// @Failure 500 {object} map[string]string "Failed to update employee"
// @Security BearerAuth
// @Router /employees/{employeeID} [put]
func (h *employeeHandler) updateEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID := c.Param("employeeID")

	var req dto.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateEmployee", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	employee, err := req.ToDomain()
	if err != nil {
		respondError(c, logger, err, "Failed to update employee")
		return
	}

	updated, err := h.employeeService.UpdateEmployee(c.Request.Context(), employeeID, employee, userID)
	if err != nil {
		respondError(c, logger.With(slog.String("employee_id", employeeID)), err, "Failed to update employee")
		return
	}

	logger.Info("Employee updated", slog.String("employee_id", employeeID))
	c.JSON(http.StatusOK, dto.ToEmployeeResponse(updated))
}

// updateCompensation godoc
// @Summary Replace an employee's compensation
// @Tags employees
// @Accept  json
// @Produce  json
// @Param   employeeID path string true "Employee ID"
// @Param   compensation body dto.CompensationPayload true "Compensation structure"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Employee not found"
// @Failure 500 {object} map[string]string "Failed to update compensation"
// @Security BearerAuth
// @Router /employees/{employeeID}/compensation [put]
func (h *employeeHandler) updateCompensation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID := c.Param("employeeID")

	var req dto.CompensationPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateCompensation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	updated, err := h.employeeService.UpdateCompensation(c.Request.Context(), employeeID, req.ToDomain(), userID)
	if err != nil {
		respondError(c, logger.With(slog.String("employee_id", employeeID)), err, "Failed to update compensation")
		return
	}

	logger.Info("Employee compensation replaced", slog.String("employee_id", employeeID))
	c.JSON(http.StatusOK, dto.ToEmployeeResponse(updated))
}

// getEmployeeTotals godoc
// @Summary Get compensation totals
// @Description Derives gross, deductions and net from the employee's current structure.
// @Tags employees
// @Produce  json
// @Param   employeeID path string true "Employee ID"
// @Success 200 {object} dto.CompensationTotalsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Employee not found"
// @Failure 500 {object} map[string]string "Failed to compute totals"
// @Security BearerAuth
// @Router /employees/{employeeID}/compensation/totals [get]
func (h *employeeHandler) getEmployeeTotals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID := c.Param("employeeID")

	totals, err := h.employeeService.GetEmployeeTotals(c.Request.Context(), employeeID)
	if err != nil {
		respondError(c, logger.With(slog.String("employee_id", employeeID)), err, "Failed to compute totals")
		return
	}
	c.JSON(http.StatusOK, dto.ToCompensationTotalsResponse(totals))
}

// importRoster godoc
// @Summary Import an employee roster
// @Description Creates employees from the first sheet of an .xlsx, .xls or .csv file. Row failures are reported in the outcome, not as request errors.
// @Tags employees
// @Accept  multipart/form-data
// @Produce  json
// @Param   file formData file true "Roster spreadsheet"
// @Success 200 {object} dto.ImportRosterResponse
// @Failure 400 {object} map[string]string "Missing file"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 413 {object} map[string]string "File too large"
// @Failure 422 {object} map[string]string "File could not be parsed"
// @Failure 429 {object} map[string]string "Too many imports"
// @Failure 500 {object} map[string]string "Failed to import roster"
// @Security BearerAuth
// @Router /employees/import [post]
func (h *employeeHandler) importRoster(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	maxBytes := h.importSettings.MaxUploadBytes
	// Multipart framing needs some headroom above the file itself.
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes+1<<20)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File too large"})
			return
		}
		logger.Warn("Roster file missing from upload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "A roster file is required in the 'file' field"})
		return
	}
	if fileHeader.Size > maxBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, logger, err, "Failed to read uploaded file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		respondError(c, logger, err, "Failed to read uploaded file")
		return
	}
	if int64(len(data)) > maxBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File too large"})
		return
	}

	fileName := filepath.Base(fileHeader.Filename)
	logger = logger.With(slog.String("file_name", fileName), slog.Int("size_bytes", len(data)))
	logger.Info("Received roster import")

	outcome, err := h.importService.SubmitRoster(c.Request.Context(), fileName, data, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to import roster")
		return
	}

	c.JSON(http.StatusOK, dto.ToImportRosterResponse(fileName, outcome, h.importSettings.ErrorDisplayLimit))
}
