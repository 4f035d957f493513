package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/amirphl/signage-admin/app/dto"
	businessflow "github.com/amirphl/signage-admin/business_flow"
	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockFlow struct {
	mock.Mock
}

func (m *mockFlow) ResolveDayparts(ctx context.Context, storeID uint) (*dto.StoreDaypartsResponse, error) {
	args := m.Called(ctx, storeID)
	res, _ := args.Get(0).(*dto.StoreDaypartsResponse)
	return res, args.Error(1)
}

func (m *mockFlow) AggregateSchedules(ctx context.Context, placementGroupID uint) (*businessflow.ScheduleAggregate, error) {
	args := m.Called(ctx, placementGroupID)
	res, _ := args.Get(0).(*businessflow.ScheduleAggregate)
	return res, args.Error(1)
}

func (m *mockFlow) GetScheduleView(ctx context.Context, placementGroupID uint) (*dto.PlacementScheduleViewResponse, error) {
	args := m.Called(ctx, placementGroupID)
	res, _ := args.Get(0).(*dto.PlacementScheduleViewResponse)
	return res, args.Error(1)
}

func (m *mockFlow) CreateOverride(ctx context.Context, placementGroupID uint, req *dto.ScheduleOverrideRequest, metadata *businessflow.ClientMetadata) (*dto.ScheduleOverrideResponse, error) {
	args := m.Called(ctx, placementGroupID, req, metadata)
	res, _ := args.Get(0).(*dto.ScheduleOverrideResponse)
	return res, args.Error(1)
}

func (m *mockFlow) UpdateOverride(ctx context.Context, placementGroupID, scheduleID uint, req *dto.ScheduleOverrideRequest, metadata *businessflow.ClientMetadata) (*dto.ScheduleOverrideResponse, error) {
	args := m.Called(ctx, placementGroupID, scheduleID, req, metadata)
	res, _ := args.Get(0).(*dto.ScheduleOverrideResponse)
	return res, args.Error(1)
}

func (m *mockFlow) DeleteOverride(ctx context.Context, placementGroupID, scheduleID uint, metadata *businessflow.ClientMetadata) (*dto.DeleteScheduleOverrideResponse, error) {
	args := m.Called(ctx, placementGroupID, scheduleID, metadata)
	res, _ := args.Get(0).(*dto.DeleteScheduleOverrideResponse)
	return res, args.Error(1)
}

func (m *mockFlow) ReplaceOverrides(ctx context.Context, placementGroupID uint, req *dto.ReplaceScheduleOverridesRequest, metadata *businessflow.ClientMetadata) (*dto.ReplaceScheduleOverridesResponse, error) {
	args := m.Called(ctx, placementGroupID, req, metadata)
	res, _ := args.Get(0).(*dto.ReplaceScheduleOverridesResponse)
	return res, args.Error(1)
}

func (m *mockFlow) DraftFromInherited(ctx context.Context, placementGroupID, storeScheduleID uint) (*dto.ScheduleDraftResponse, error) {
	args := m.Called(ctx, placementGroupID, storeScheduleID)
	res, _ := args.Get(0).(*dto.ScheduleDraftResponse)
	return res, args.Error(1)
}

func (m *mockFlow) DraftRemainingDays(ctx context.Context, placementGroupID uint, daypartName string) (*dto.ScheduleDraftResponse, error) {
	args := m.Called(ctx, placementGroupID, daypartName)
	res, _ := args.Get(0).(*dto.ScheduleDraftResponse)
	return res, args.Error(1)
}

func (m *mockFlow) ActiveDaypart(ctx context.Context, placementGroupID uint, at time.Time) (*dto.ActiveDaypartResponse, error) {
	args := m.Called(ctx, placementGroupID, at)
	res, _ := args.Get(0).(*dto.ActiveDaypartResponse)
	return res, args.Error(1)
}

func (m *mockFlow) ExportSchedules(ctx context.Context, placementGroupID uint) (string, []byte, error) {
	args := m.Called(ctx, placementGroupID)
	data, _ := args.Get(1).([]byte)
	return args.String(0), data, args.Error(2)
}

func (m *mockFlow) WarmDaypartCache(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *mockFlow) ListAuditLog(ctx context.Context, placementGroupID uint, limit, offset int) (*dto.ScheduleAuditLogResponse, error) {
	args := m.Called(ctx, placementGroupID, limit, offset)
	res, _ := args.Get(0).(*dto.ScheduleAuditLogResponse)
	return res, args.Error(1)
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   struct {
		Code    string          `json:"code"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
}

func newTestApp(flow businessflow.DaypartScheduleFlow) *fiber.App {
	h := NewDaypartScheduleHandler(flow, nil)
	app := fiber.New()
	app.Get("/stores/:store_id/dayparts", h.ListStoreDayparts)
	pg := app.Group("/placement-groups/:id")
	pg.Get("/active-daypart", h.GetActiveDaypart)
	pg.Get("/schedules", h.GetPlacementSchedules)
	pg.Post("/schedules", h.CreatePlacementSchedule)
	pg.Put("/schedules", h.ReplacePlacementSchedules)
	pg.Get("/schedules/export", h.ExportPlacementSchedules)
	pg.Get("/schedules/audit", h.ListScheduleAuditLog)
	pg.Get("/schedules/drafts/remaining-days", h.DraftRemainingDays)
	pg.Get("/schedules/drafts/inherited/:store_schedule_id", h.DraftFromInherited)
	pg.Put("/schedules/:schedule_id", h.UpdatePlacementSchedule)
	pg.Delete("/schedules/:schedule_id", h.DeletePlacementSchedule)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, envelope) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", "req-42")

	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()

	var env envelope
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	}
	return resp, env
}

const validSchedule = `{"daypart_definition_id":3,"days_of_week":[1,2],"start_time":"06:00","end_time":"11:00","priority_level":1}`

func TestListStoreDayparts(t *testing.T) {
	flow := new(mockFlow)
	app := newTestApp(flow)

	flow.On("ResolveDayparts", mock.Anything, uint(7)).Return(&dto.StoreDaypartsResponse{
		StoreID:  7,
		Dayparts: []dto.DaypartDefinitionDTO{{ID: 1, DaypartName: "breakfast"}},
	}, nil).Once()
	flow.On("ResolveDayparts", mock.Anything, uint(8)).Return(nil,
		businessflow.NewBusinessError("STORE_NOT_FOUND", "Store not found", businessflow.ErrStoreNotFound)).Once()

	resp, env := doRequest(t, app, http.MethodGet, "/stores/7/dayparts", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, env.Success)
	var data dto.StoreDaypartsResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data.Dayparts, 1)
	assert.Equal(t, "breakfast", data.Dayparts[0].DaypartName)

	resp, env = doRequest(t, app, http.MethodGet, "/stores/8/dayparts", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "STORE_NOT_FOUND", env.Error.Code)
	assert.Equal(t, "Store not found", env.Message)

	for _, id := range []string{"abc", "0", "-1"} {
		resp, env = doRequest(t, app, http.MethodGet, "/stores/"+id+"/dayparts", "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, id)
		assert.Equal(t, "INVALID_STORE_ID", env.Error.Code, id)
	}

	flow.AssertExpectations(t)
}

func TestGetPlacementSchedules(t *testing.T) {
	flow := new(mockFlow)
	app := newTestApp(flow)

	flow.On("GetScheduleView", mock.Anything, uint(5)).Return(&dto.PlacementScheduleViewResponse{
		PlacementGroupID: 5,
		StoreID:          7,
	}, nil).Once()
	flow.On("GetScheduleView", mock.Anything, uint(6)).Return(nil,
		businessflow.NewBusinessError("SCHEDULE_FETCH_FAILED", "Failed to load schedules", fmt.Errorf("%w: boom", businessflow.ErrPersistence))).Once()

	resp, env := doRequest(t, app, http.MethodGet, "/placement-groups/5/schedules", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Schedules retrieved", env.Message)

	resp, env = doRequest(t, app, http.MethodGet, "/placement-groups/6/schedules", "")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "SCHEDULE_FETCH_FAILED", env.Error.Code)
	assert.Equal(t, "Failed to get schedules", env.Message)

	resp, env = doRequest(t, app, http.MethodGet, "/placement-groups/x/schedules", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_PLACEMENT_GROUP_ID", env.Error.Code)

	flow.AssertExpectations(t)
}

func TestCreatePlacementSchedule(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		flow := new(mockFlow)
		app := newTestApp(flow)
		flow.On("CreateOverride", mock.Anything, uint(5),
			mock.MatchedBy(func(req *dto.ScheduleOverrideRequest) bool {
				return req.DaypartDefinitionID == 3 && req.StartTime == "06:00" && len(req.DaysOfWeek) == 2
			}),
			mock.MatchedBy(func(m *businessflow.ClientMetadata) bool { return m.RequestID == "req-42" }),
		).Return(&dto.ScheduleOverrideResponse{Message: "Schedule created"}, nil).Once()

		resp, env := doRequest(t, app, http.MethodPost, "/placement-groups/5/schedules", validSchedule)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.True(t, env.Success)
		flow.AssertExpectations(t)
	})

	t.Run("MalformedBody", func(t *testing.T) {
		flow := new(mockFlow)
		resp, env := doRequest(t, newTestApp(flow), http.MethodPost, "/placement-groups/5/schedules", `{"start_time":`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_REQUEST", env.Error.Code)
		flow.AssertNotCalled(t, "CreateOverride", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("ValidationErrors", func(t *testing.T) {
		flow := new(mockFlow)
		body := `{"daypart_definition_id":3,"days_of_week":[1],"start_time":"25:00","priority_level":5000}`
		resp, env := doRequest(t, newTestApp(flow), http.MethodPost, "/placement-groups/5/schedules", body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)

		var details []string
		require.NoError(t, json.Unmarshal(env.Error.Details, &details))
		assert.Contains(t, details, "StartTime must be a time of day in HH:MM or HH:MM:SS format")
		assert.Contains(t, details, "PriorityLevel must be at most 1000")
		flow.AssertNotCalled(t, "CreateOverride", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("DayConflict", func(t *testing.T) {
		flow := new(mockFlow)
		conflict := businessflow.NewBusinessError("DAY_CONFLICT", "Breakfast already has a schedule on Mon, Tue",
			&businessflow.DayConflictError{DaypartName: "breakfast", Days: []int{1, 2}})
		flow.On("CreateOverride", mock.Anything, uint(5), mock.Anything, mock.Anything).Return(nil, conflict).Once()

		resp, env := doRequest(t, newTestApp(flow), http.MethodPost, "/placement-groups/5/schedules", validSchedule)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "DAY_CONFLICT", env.Error.Code)
		assert.Equal(t, "Breakfast already has a schedule on Mon, Tue", env.Message)

		var details struct {
			DaypartName string   `json:"daypart_name"`
			Days        []int    `json:"days"`
			DayLabels   []string `json:"day_labels"`
		}
		require.NoError(t, json.Unmarshal(env.Error.Details, &details))
		assert.Equal(t, "breakfast", details.DaypartName)
		assert.Equal(t, []int{1, 2}, details.Days)
		assert.Equal(t, []string{"Mon", "Tue"}, details.DayLabels)
	})

	t.Run("PlacementGroupNotFound", func(t *testing.T) {
		flow := new(mockFlow)
		flow.On("CreateOverride", mock.Anything, uint(9), mock.Anything, mock.Anything).Return(nil,
			businessflow.NewBusinessError("PLACEMENT_GROUP_NOT_FOUND", "Placement group not found", businessflow.ErrPlacementGroupNotFound)).Once()

		resp, env := doRequest(t, newTestApp(flow), http.MethodPost, "/placement-groups/9/schedules", validSchedule)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "PLACEMENT_GROUP_NOT_FOUND", env.Error.Code)
	})

	t.Run("UnwrappedErrorIsInternal", func(t *testing.T) {
		flow := new(mockFlow)
		flow.On("CreateOverride", mock.Anything, uint(5), mock.Anything, mock.Anything).Return(nil, errors.New("boom")).Once()

		resp, env := doRequest(t, newTestApp(flow), http.MethodPost, "/placement-groups/5/schedules", validSchedule)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
		assert.Equal(t, "Failed to create schedule", env.Message)
	})
}

func TestReplacePlacementSchedules(t *testing.T) {
	flow := new(mockFlow)
	app := newTestApp(flow)

	flow.On("ReplaceOverrides", mock.Anything, uint(5),
		mock.MatchedBy(func(req *dto.ReplaceScheduleOverridesRequest) bool { return len(req.Schedules) == 1 }),
		mock.Anything,
	).Return(&dto.ReplaceScheduleOverridesResponse{Message: "Schedules replaced", Count: 1}, nil).Once()
	flow.On("ReplaceOverrides", mock.Anything, uint(6), mock.Anything, mock.Anything).Return(nil,
		businessflow.NewBusinessError("PARTIAL_UPDATE", "Replacing schedules failed", businessflow.ErrReplaceRolledBack)).Once()

	resp, env := doRequest(t, app, http.MethodPut, "/placement-groups/5/schedules", `{"schedules":[`+validSchedule+`]}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var data dto.ReplaceScheduleOverridesResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, 1, data.Count)

	resp, env = doRequest(t, app, http.MethodPut, "/placement-groups/6/schedules", `{"schedules":[`+validSchedule+`]}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "PARTIAL_UPDATE", env.Error.Code)

	resp, env = doRequest(t, app, http.MethodPut, "/placement-groups/5/schedules", `{"schedules":[{"daypart_definition_id":3,"start_time":"6pm"}]}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)

	flow.AssertExpectations(t)
}

func TestUpdateAndDeletePlacementSchedule(t *testing.T) {
	flow := new(mockFlow)
	app := newTestApp(flow)

	flow.On("UpdateOverride", mock.Anything, uint(5), uint(11), mock.Anything, mock.Anything).
		Return(&dto.ScheduleOverrideResponse{Message: "Schedule updated"}, nil).Once()
	flow.On("UpdateOverride", mock.Anything, uint(5), uint(12), mock.Anything, mock.Anything).
		Return(nil, businessflow.NewBusinessError("SCHEDULE_NOT_FOUND", "Schedule not found", businessflow.ErrScheduleNotFound)).Once()
	flow.On("DeleteOverride", mock.Anything, uint(5), uint(11), mock.Anything).
		Return(&dto.DeleteScheduleOverrideResponse{Message: "Schedule deleted"}, nil).Once()

	resp, env := doRequest(t, app, http.MethodPut, "/placement-groups/5/schedules/11", validSchedule)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Schedule updated", env.Message)

	resp, env = doRequest(t, app, http.MethodPut, "/placement-groups/5/schedules/12", validSchedule)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "SCHEDULE_NOT_FOUND", env.Error.Code)

	resp, env = doRequest(t, app, http.MethodPut, "/placement-groups/5/schedules/zero", validSchedule)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_SCHEDULE_ID", env.Error.Code)

	resp, env = doRequest(t, app, http.MethodDelete, "/placement-groups/5/schedules/11", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Schedule deleted", env.Message)

	resp, env = doRequest(t, app, http.MethodDelete, "/placement-groups/5/schedules/0", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_SCHEDULE_ID", env.Error.Code)

	flow.AssertExpectations(t)
}

func TestScheduleDrafts(t *testing.T) {
	flow := new(mockFlow)
	app := newTestApp(flow)

	flow.On("DraftFromInherited", mock.Anything, uint(5), uint(21)).
		Return(&dto.ScheduleDraftResponse{Message: "Draft created"}, nil).Once()
	flow.On("DraftRemainingDays", mock.Anything, uint(5), "breakfast").
		Return(&dto.ScheduleDraftResponse{Message: "Draft created"}, nil).Once()
	flow.On("DraftRemainingDays", mock.Anything, uint(5), "lunch").
		Return(nil, businessflow.NewBusinessError("NO_REMAINING_DAYS", "Every day already has a lunch schedule", businessflow.ErrNoRemainingDays)).Once()

	resp, _ := doRequest(t, app, http.MethodGet, "/placement-groups/5/schedules/drafts/inherited/21", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doRequest(t, app, http.MethodGet, "/placement-groups/5/schedules/drafts/remaining-days?daypart=breakfast", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, env := doRequest(t, app, http.MethodGet, "/placement-groups/5/schedules/drafts/remaining-days?daypart=lunch", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "NO_REMAINING_DAYS", env.Error.Code)

	resp, env = doRequest(t, app, http.MethodGet, "/placement-groups/5/schedules/drafts/remaining-days", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "DAYPART_REQUIRED", env.Error.Code)

	flow.AssertExpectations(t)
}

func TestGetActiveDaypart(t *testing.T) {
	flow := new(mockFlow)
	app := newTestApp(flow)

	want := time.Date(2026, time.October, 19, 14, 30, 0, 0, time.UTC)
	flow.On("ActiveDaypart", mock.Anything, uint(5), mock.MatchedBy(func(at time.Time) bool { return at.Equal(want) })).
		Return(&dto.ActiveDaypartResponse{Message: "Active daypart resolved", Active: true, At: "2026-10-19T10:30:00-04:00"}, nil).Once()
	flow.On("ActiveDaypart", mock.Anything, uint(6), mock.Anything).
		Return(&dto.ActiveDaypartResponse{Message: "No daypart is active"}, nil).Once()

	resp, env := doRequest(t, app, http.MethodGet, "/placement-groups/5/active-daypart?at=2026-10-19T14:30:00Z", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Active daypart resolved", env.Message)
	var data dto.ActiveDaypartResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.True(t, data.Active)

	resp, env = doRequest(t, app, http.MethodGet, "/placement-groups/6/active-daypart", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "No daypart is active", env.Message)

	resp, env = doRequest(t, app, http.MethodGet, "/placement-groups/5/active-daypart?at=yesterday", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_ACTIVE_AT", env.Error.Code)

	flow.AssertExpectations(t)
}

func TestExportPlacementSchedules(t *testing.T) {
	flow := new(mockFlow)
	app := newTestApp(flow)

	flow.On("ExportSchedules", mock.Anything, uint(5)).
		Return("placement_group_5_schedules.xlsx", []byte("xlsx-bytes"), nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/placement-groups/5/schedules/export", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", resp.Header.Get("Content-Type"))
	assert.Equal(t, "attachment; filename=placement_group_5_schedules.xlsx", resp.Header.Get("Content-Disposition"))
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "xlsx-bytes", string(body))

	flow.AssertExpectations(t)
}

func TestListScheduleAuditLog(t *testing.T) {
	flow := new(mockFlow)
	app := newTestApp(flow)

	flow.On("ListAuditLog", mock.Anything, uint(5), 10, 20).Return(&dto.ScheduleAuditLogResponse{
		Message:          "Audit log retrieved successfully",
		PlacementGroupID: 5,
		Limit:            10,
		Offset:           20,
		Entries:          []dto.ScheduleAuditLogDTO{{ID: 1, Action: "schedule_created", Success: true}},
	}, nil).Once()
	flow.On("ListAuditLog", mock.Anything, uint(5), 0, 0).Return(&dto.ScheduleAuditLogResponse{PlacementGroupID: 5, Limit: 50}, nil).Once()
	flow.On("ListAuditLog", mock.Anything, uint(9), 0, 0).Return(nil,
		businessflow.NewBusinessError("PLACEMENT_GROUP_NOT_FOUND", "Placement group not found", businessflow.ErrPlacementGroupNotFound)).Once()

	resp, env := doRequest(t, app, http.MethodGet, "/placement-groups/5/schedules/audit?limit=10&offset=20", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var page dto.ScheduleAuditLogResponse
	require.NoError(t, json.Unmarshal(env.Data, &page))
	require.Len(t, page.Entries, 1)
	assert.Equal(t, "schedule_created", page.Entries[0].Action)

	resp, _ = doRequest(t, app, http.MethodGet, "/placement-groups/5/schedules/audit", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, env = doRequest(t, app, http.MethodGet, "/placement-groups/9/schedules/audit", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "PLACEMENT_GROUP_NOT_FOUND", env.Error.Code)

	for _, query := range []string{"limit=-1", "limit=ten", "offset=-5"} {
		resp, env = doRequest(t, app, http.MethodGet, "/placement-groups/5/schedules/audit?"+query, "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, query)
		assert.Equal(t, "INVALID_PAGINATION", env.Error.Code, query)
	}

	flow.AssertExpectations(t)
}
