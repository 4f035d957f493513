package handlers

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/amirphl/signage-admin/app/dto"
	businessflow "github.com/amirphl/signage-admin/business_flow"
	"github.com/amirphl/signage-admin/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog"
)

// DaypartScheduleHandlerInterface defines the daypart and placement schedule endpoints
type DaypartScheduleHandlerInterface interface {
	ListStoreDayparts(c fiber.Ctx) error
	GetPlacementSchedules(c fiber.Ctx) error
	ExportPlacementSchedules(c fiber.Ctx) error
	GetActiveDaypart(c fiber.Ctx) error
	CreatePlacementSchedule(c fiber.Ctx) error
	ReplacePlacementSchedules(c fiber.Ctx) error
	UpdatePlacementSchedule(c fiber.Ctx) error
	DeletePlacementSchedule(c fiber.Ctx) error
	DraftFromInherited(c fiber.Ctx) error
	DraftRemainingDays(c fiber.Ctx) error
	ListScheduleAuditLog(c fiber.Ctx) error
}

// DaypartScheduleHandler handles daypart and placement schedule requests
type DaypartScheduleHandler struct {
	flow      businessflow.DaypartScheduleFlow
	validator *validator.Validate
	logger    *zerolog.Logger
}

func NewDaypartScheduleHandler(flow businessflow.DaypartScheduleFlow, logger *zerolog.Logger) DaypartScheduleHandlerInterface {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &DaypartScheduleHandler{
		flow:      flow,
		validator: newValidator(),
		logger:    logger,
	}
}

func (h *DaypartScheduleHandler) ErrorResponse(c fiber.Ctx, status int, message, code string, details any) error {
	return c.Status(status).JSON(dto.APIResponse{Success: false, Message: message, Error: dto.ErrorDetail{Code: code, Details: details}})
}

func (h *DaypartScheduleHandler) SuccessResponse(c fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(dto.APIResponse{Success: true, Message: message, Data: data})
}

// ListStoreDayparts returns the effective daypart definitions of a store
// @Summary List Store Dayparts
// @Description Resolve the global, concept and store daypart definitions that apply to a store, ordered by sort order
// @Tags Dayparts
// @Produce json
// @Param store_id path int true "Store ID"
// @Success 200 {object} dto.APIResponse{data=dto.StoreDaypartsResponse}
// @Failure 404 {object} dto.APIResponse "Store not found"
// @Failure 500 {object} dto.APIResponse "Resolution failed"
// @Router /api/v1/stores/{store_id}/dayparts [get]
func (h *DaypartScheduleHandler) ListStoreDayparts(c fiber.Ctx) error {
	storeID, err := parseIDParam(c, "store_id")
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid store ID", "INVALID_STORE_ID", nil)
	}

	ctx, cancel := h.createRequestContext(c, "/api/v1/stores/:store_id/dayparts")
	defer cancel()

	res, err := h.flow.ResolveDayparts(ctx, storeID)
	if err != nil {
		return h.flowError(c, err, "Failed to resolve dayparts")
	}
	return h.SuccessResponse(c, fiber.StatusOK, "Dayparts retrieved", res)
}

// GetPlacementSchedules returns the effective schedules of a placement group grouped by daypart
// @Summary Get Placement Schedules
// @Description Merge store default schedules with placement overrides and group them by daypart
// @Tags Placement Schedules
// @Produce json
// @Param id path int true "Placement group ID"
// @Success 200 {object} dto.APIResponse{data=dto.PlacementScheduleViewResponse}
// @Failure 404 {object} dto.APIResponse "Placement group or store not found"
// @Failure 500 {object} dto.APIResponse "Resolution failed"
// @Router /api/v1/placement-groups/{id}/schedules [get]
func (h *DaypartScheduleHandler) GetPlacementSchedules(c fiber.Ctx) error {
	placementGroupID, err := parseIDParam(c, "id")
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid placement group ID", "INVALID_PLACEMENT_GROUP_ID", nil)
	}

	ctx, cancel := h.createRequestContext(c, "/api/v1/placement-groups/:id/schedules")
	defer cancel()

	res, err := h.flow.GetScheduleView(ctx, placementGroupID)
	if err != nil {
		return h.flowError(c, err, "Failed to get schedules")
	}
	return h.SuccessResponse(c, fiber.StatusOK, "Schedules retrieved", res)
}

// ExportPlacementSchedules downloads the effective schedules of a placement group as an Excel workbook
// @Summary Export Placement Schedules (Excel)
// @Tags Placement Schedules
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path int true "Placement group ID"
// @Success 200 {string} string "Excel file"
// @Failure 404 {object} dto.APIResponse
// @Failure 500 {object} dto.APIResponse
// @Router /api/v1/placement-groups/{id}/schedules/export [get]
func (h *DaypartScheduleHandler) ExportPlacementSchedules(c fiber.Ctx) error {
	placementGroupID, err := parseIDParam(c, "id")
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid placement group ID", "INVALID_PLACEMENT_GROUP_ID", nil)
	}

	ctx, cancel := h.createRequestContextWithTimeout(c, "/api/v1/placement-groups/:id/schedules/export", utils.ExportRequestTimeout)
	defer cancel()

	filename, data, err := h.flow.ExportSchedules(ctx, placementGroupID)
	if err != nil {
		return h.flowError(c, err, "Failed to generate Excel")
	}
	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", "attachment; filename="+filename)
	return c.Send(data)
}

// GetActiveDaypart reports the daypart in force for a placement group
// @Summary Get Active Daypart
// @Description Resolve the daypart in force at the given instant (default now) in the store's timezone
// @Tags Placement Schedules
// @Produce json
// @Param id path int true "Placement group ID"
// @Param at query string false "RFC3339 timestamp"
// @Success 200 {object} dto.APIResponse{data=dto.ActiveDaypartResponse}
// @Failure 400 {object} dto.APIResponse "Invalid timestamp"
// @Failure 404 {object} dto.APIResponse "Placement group or store not found"
// @Router /api/v1/placement-groups/{id}/active-daypart [get]
func (h *DaypartScheduleHandler) GetActiveDaypart(c fiber.Ctx) error {
	placementGroupID, err := parseIDParam(c, "id")
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid placement group ID", "INVALID_PLACEMENT_GROUP_ID", nil)
	}
	at, err := utils.ParseRFC3339OrNow(c.Query("at"))
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Query parameter at must be RFC3339", "INVALID_ACTIVE_AT", err.Error())
	}

	ctx, cancel := h.createRequestContext(c, "/api/v1/placement-groups/:id/active-daypart")
	defer cancel()

	res, err := h.flow.ActiveDaypart(ctx, placementGroupID, at)
	if err != nil {
		return h.flowError(c, err, "Failed to resolve active daypart")
	}
	return h.SuccessResponse(c, fiber.StatusOK, res.Message, res)
}

// CreatePlacementSchedule adds a placement-level schedule
// @Summary Create Placement Schedule
// @Description Create a placement override; any override for a daypart supersedes all store defaults of that daypart
// @Tags Placement Schedules
// @Accept json
// @Produce json
// @Param id path int true "Placement group ID"
// @Param request body dto.ScheduleOverrideRequest true "Schedule"
// @Success 201 {object} dto.APIResponse{data=dto.ScheduleOverrideResponse}
// @Failure 400 {object} dto.APIResponse "Validation error or day conflict"
// @Failure 404 {object} dto.APIResponse "Placement group not found"
// @Failure 500 {object} dto.APIResponse "Creation failed"
// @Router /api/v1/placement-groups/{id}/schedules [post]
func (h *DaypartScheduleHandler) CreatePlacementSchedule(c fiber.Ctx) error {
	placementGroupID, err := parseIDParam(c, "id")
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid placement group ID", "INVALID_PLACEMENT_GROUP_ID", nil)
	}
	var req dto.ScheduleOverrideRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}
	if err := h.validator.Struct(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationMessages(err))
	}

	ctx, cancel := h.createRequestContext(c, "/api/v1/placement-groups/:id/schedules")
	defer cancel()

	res, err := h.flow.CreateOverride(ctx, placementGroupID, &req, clientMetadata(c))
	if err != nil {
		return h.flowError(c, err, "Failed to create schedule")
	}
	return h.SuccessResponse(c, fiber.StatusCreated, "Schedule created", res)
}

// ReplacePlacementSchedules atomically replaces every placement-level schedule
// @Summary Replace Placement Schedules
// @Description Replace all placement overrides in one transaction; on failure nothing changes
// @Tags Placement Schedules
// @Accept json
// @Produce json
// @Param id path int true "Placement group ID"
// @Param request body dto.ReplaceScheduleOverridesRequest true "Schedules"
// @Success 200 {object} dto.APIResponse{data=dto.ReplaceScheduleOverridesResponse}
// @Failure 400 {object} dto.APIResponse "Validation error or day conflict"
// @Failure 404 {object} dto.APIResponse "Placement group not found"
// @Failure 409 {object} dto.APIResponse "Replace rolled back"
// @Router /api/v1/placement-groups/{id}/schedules [put]
func (h *DaypartScheduleHandler) ReplacePlacementSchedules(c fiber.Ctx) error {
	placementGroupID, err := parseIDParam(c, "id")
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid placement group ID", "INVALID_PLACEMENT_GROUP_ID", nil)
	}
	var req dto.ReplaceScheduleOverridesRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}
	if err := h.validator.Struct(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationMessages(err))
	}

	ctx, cancel := h.createRequestContext(c, "/api/v1/placement-groups/:id/schedules")
	defer cancel()

	res, err := h.flow.ReplaceOverrides(ctx, placementGroupID, &req, clientMetadata(c))
	if err != nil {
		return h.flowError(c, err, "Failed to replace schedules")
	}
	return h.SuccessResponse(c, fiber.StatusOK, "Schedules replaced", res)
}

// UpdatePlacementSchedule rewrites a placement-level schedule
// @Summary Update Placement Schedule
// @Tags Placement Schedules
// @Accept json
// @Produce json
// @Param id path int true "Placement group ID"
// @Param schedule_id path int true "Schedule ID"
// @Param request body dto.ScheduleOverrideRequest true "Schedule"
// @Success 200 {object} dto.APIResponse{data=dto.ScheduleOverrideResponse}
// @Failure 400 {object} dto.APIResponse "Validation error or day conflict"
// @Failure 404 {object} dto.APIResponse "Schedule not found"
// @Router /api/v1/placement-groups/{id}/schedules/{schedule_id} [put]
func (h *DaypartScheduleHandler) UpdatePlacementSchedule(c fiber.Ctx) error {
	placementGroupID, err := parseIDParam(c, "id")
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid placement group ID", "INVALID_PLACEMENT_GROUP_ID", nil)
	}
	scheduleID, err := parseIDParam(c, "schedule_id")
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid schedule ID", "INVALID_SCHEDULE_ID", nil)
	}
	var req dto.ScheduleOverrideRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}
	if err := h.validator.Struct(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationMessages(err))
	}

	ctx, cancel := h.createRequestContext(c, "/api/v1/placement-groups/:id/schedules/:schedule_id")
	defer cancel()

	res, err := h.flow.UpdateOverride(ctx, placementGroupID, scheduleID, &req, clientMetadata(c))
	if err != nil {
		return h.flowError(c, err, "Failed to update schedule")
	}
	return h.SuccessResponse(c, fiber.StatusOK, "Schedule updated", res)
}

// DeletePlacementSchedule removes a placement-level schedule
// @Summary Delete Placement Schedule
// @Tags Placement Schedules
// @Produce json
// @Param id path int true "Placement group ID"
// @Param schedule_id path int true "Schedule ID"
// @Success 200 {object} dto.APIResponse{data=dto.DeleteScheduleOverrideResponse}
// @Failure 404 {object} dto.APIResponse "Schedule not found"
// @Router /api/v1/placement-groups/{id}/schedules/{schedule_id} [delete]
func (h *DaypartScheduleHandler) DeletePlacementSchedule(c fiber.Ctx) error {
	placementGroupID, err := parseIDParam(c, "id")
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid placement group ID", "INVALID_PLACEMENT_GROUP_ID", nil)
	}
	scheduleID, err := parseIDParam(c, "schedule_id")
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid schedule ID", "INVALID_SCHEDULE_ID", nil)
	}

	ctx, cancel := h.createRequestContext(c, "/api/v1/placement-groups/:id/schedules/:schedule_id")
	defer cancel()

	res, err := h.flow.DeleteOverride(ctx, placementGroupID, scheduleID, clientMetadata(c))
	if err != nil {
		return h.flowError(c, err, "Failed to delete schedule")
	}
	return h.SuccessResponse(c, fiber.StatusOK, "Schedule deleted", res)
}

// DraftFromInherited returns an unsaved placement schedule cloned from an inherited one
// @Summary Draft From Inherited Schedule
// @Description Saving the draft supersedes every store default of the same daypart
// @Tags Placement Schedules
// @Produce json
// @Param id path int true "Placement group ID"
// @Param store_schedule_id path int true "Inherited store schedule ID"
// @Success 200 {object} dto.APIResponse{data=dto.ScheduleDraftResponse}
// @Failure 404 {object} dto.APIResponse "Inherited schedule not found"
// @Router /api/v1/placement-groups/{id}/schedules/drafts/inherited/{store_schedule_id} [get]
func (h *DaypartScheduleHandler) DraftFromInherited(c fiber.Ctx) error {
	placementGroupID, err := parseIDParam(c, "id")
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid placement group ID", "INVALID_PLACEMENT_GROUP_ID", nil)
	}
	storeScheduleID, err := parseIDParam(c, "store_schedule_id")
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid schedule ID", "INVALID_SCHEDULE_ID", nil)
	}

	ctx, cancel := h.createRequestContext(c, "/api/v1/placement-groups/:id/schedules/drafts/inherited/:store_schedule_id")
	defer cancel()

	res, err := h.flow.DraftFromInherited(ctx, placementGroupID, storeScheduleID)
	if err != nil {
		return h.flowError(c, err, "Failed to create draft")
	}
	return h.SuccessResponse(c, fiber.StatusOK, "Draft created", res)
}

// DraftRemainingDays returns an unsaved placement schedule covering the daypart's unscheduled days
// @Summary Draft Remaining Days
// @Tags Placement Schedules
// @Produce json
// @Param id path int true "Placement group ID"
// @Param daypart query string true "Daypart name"
// @Success 200 {object} dto.APIResponse{data=dto.ScheduleDraftResponse}
// @Failure 400 {object} dto.APIResponse "No remaining days"
// @Failure 404 {object} dto.APIResponse "No template schedule"
// @Router /api/v1/placement-groups/{id}/schedules/drafts/remaining-days [get]
func (h *DaypartScheduleHandler) DraftRemainingDays(c fiber.Ctx) error {
	placementGroupID, err := parseIDParam(c, "id")
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid placement group ID", "INVALID_PLACEMENT_GROUP_ID", nil)
	}
	daypart := c.Query("daypart")
	if daypart == "" {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Query parameter daypart is required", "DAYPART_REQUIRED", nil)
	}

	ctx, cancel := h.createRequestContext(c, "/api/v1/placement-groups/:id/schedules/drafts/remaining-days")
	defer cancel()

	res, err := h.flow.DraftRemainingDays(ctx, placementGroupID, daypart)
	if err != nil {
		return h.flowError(c, err, "Failed to create draft")
	}
	return h.SuccessResponse(c, fiber.StatusOK, "Draft created", res)
}

// ListScheduleAuditLog returns the recorded schedule writes of a placement group
// @Summary List Schedule Audit Log
// @Description Page through the create, update, delete and replace writes of a placement group, newest first
// @Tags Placement Schedules
// @Produce json
// @Param id path int true "Placement group ID"
// @Param limit query int false "Page size (default 50, max 200)"
// @Param offset query int false "Rows to skip"
// @Success 200 {object} dto.APIResponse{data=dto.ScheduleAuditLogResponse}
// @Failure 400 {object} dto.APIResponse "Invalid paging"
// @Failure 404 {object} dto.APIResponse "Placement group not found"
// @Router /api/v1/placement-groups/{id}/schedules/audit [get]
func (h *DaypartScheduleHandler) ListScheduleAuditLog(c fiber.Ctx) error {
	placementGroupID, err := parseIDParam(c, "id")
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid placement group ID", "INVALID_PLACEMENT_GROUP_ID", nil)
	}
	limit, err := parseIntQuery(c, "limit")
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Query parameter limit must be a non-negative integer", "INVALID_PAGINATION", nil)
	}
	offset, err := parseIntQuery(c, "offset")
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Query parameter offset must be a non-negative integer", "INVALID_PAGINATION", nil)
	}

	ctx, cancel := h.createRequestContext(c, "/api/v1/placement-groups/:id/schedules/audit")
	defer cancel()

	res, err := h.flow.ListAuditLog(ctx, placementGroupID, limit, offset)
	if err != nil {
		return h.flowError(c, err, "Failed to get audit log")
	}
	return h.SuccessResponse(c, fiber.StatusOK, res.Message, res)
}

// flowError maps a business flow error onto the response envelope
func (h *DaypartScheduleHandler) flowError(c fiber.Ctx, err error, fallback string) error {
	code := "INTERNAL_ERROR"
	message := fallback
	var be *businessflow.BusinessError
	if errors.As(err, &be) {
		code = be.Code
		message = be.Message
	}

	var details any
	var conflict *businessflow.DayConflictError
	if errors.As(err, &conflict) {
		details = fiber.Map{
			"daypart_name": conflict.DaypartName,
			"days":         conflict.Days,
			"day_labels":   businessflow.DayLabels(conflict.Days),
		}
	}

	switch {
	case businessflow.IsNotFound(err):
		return h.ErrorResponse(c, fiber.StatusNotFound, message, code, details)
	case businessflow.IsValidation(err):
		return h.ErrorResponse(c, fiber.StatusBadRequest, message, code, details)
	case businessflow.IsPartialFailure(err):
		return h.ErrorResponse(c, fiber.StatusConflict, message, "PARTIAL_UPDATE", nil)
	default:
		h.logger.Error().Err(err).Str("path", c.Path()).Str("method", c.Method()).Msg(fallback)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, fallback, code, nil)
	}
}

func (h *DaypartScheduleHandler) createRequestContext(c fiber.Ctx, endpoint string) (context.Context, context.CancelFunc) {
	return h.createRequestContextWithTimeout(c, endpoint, utils.DefaultRequestTimeout)
}

func (h *DaypartScheduleHandler) createRequestContextWithTimeout(c fiber.Ctx, endpoint string, timeout time.Duration) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	ctx = context.WithValue(ctx, utils.RequestIDKey, c.Get("X-Request-ID"))
	ctx = context.WithValue(ctx, utils.UserAgentKey, c.Get("User-Agent"))
	ctx = context.WithValue(ctx, utils.IPAddressKey, c.IP())
	ctx = context.WithValue(ctx, utils.EndpointKey, endpoint)
	ctx = context.WithValue(ctx, utils.TimeoutKey, timeout)
	return ctx, cancel
}

func clientMetadata(c fiber.Ctx) *businessflow.ClientMetadata {
	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	metadata.SetRequestID(c.Get(businessflow.RequestIDKey))
	return metadata
}

func parseIDParam(c fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}

// parseIntQuery reads an optional non-negative integer query parameter; absent means 0
func parseIntQuery(c fiber.Ctx, name string) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, errors.New("invalid " + name)
	}
	return v, nil
}
