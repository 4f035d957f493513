package businessflow

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/amirphl/signage-admin/app/dto"
	"github.com/amirphl/signage-admin/models"
	"github.com/amirphl/signage-admin/repository"
	"github.com/amirphl/signage-admin/utils"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// DaypartScheduleFlow resolves and edits the daypart schedules of placement groups
type DaypartScheduleFlow interface {
	ResolveDayparts(ctx context.Context, storeID uint) (*dto.StoreDaypartsResponse, error)
	AggregateSchedules(ctx context.Context, placementGroupID uint) (*ScheduleAggregate, error)
	GetScheduleView(ctx context.Context, placementGroupID uint) (*dto.PlacementScheduleViewResponse, error)
	CreateOverride(ctx context.Context, placementGroupID uint, req *dto.ScheduleOverrideRequest, metadata *ClientMetadata) (*dto.ScheduleOverrideResponse, error)
	UpdateOverride(ctx context.Context, placementGroupID, scheduleID uint, req *dto.ScheduleOverrideRequest, metadata *ClientMetadata) (*dto.ScheduleOverrideResponse, error)
	DeleteOverride(ctx context.Context, placementGroupID, scheduleID uint, metadata *ClientMetadata) (*dto.DeleteScheduleOverrideResponse, error)
	ReplaceOverrides(ctx context.Context, placementGroupID uint, req *dto.ReplaceScheduleOverridesRequest, metadata *ClientMetadata) (*dto.ReplaceScheduleOverridesResponse, error)
	DraftFromInherited(ctx context.Context, placementGroupID, storeScheduleID uint) (*dto.ScheduleDraftResponse, error)
	DraftRemainingDays(ctx context.Context, placementGroupID uint, daypartName string) (*dto.ScheduleDraftResponse, error)
	ActiveDaypart(ctx context.Context, placementGroupID uint, at time.Time) (*dto.ActiveDaypartResponse, error)
	ExportSchedules(ctx context.Context, placementGroupID uint) (string, []byte, error)
	WarmDaypartCache(ctx context.Context) (int, error)
	ListAuditLog(ctx context.Context, placementGroupID uint, limit, offset int) (*dto.ScheduleAuditLogResponse, error)
}

// DaypartScheduleFlowImpl implements DaypartScheduleFlow
type DaypartScheduleFlowImpl struct {
	db                *gorm.DB
	storeRepo         repository.StoreRepository
	placementRepo     repository.PlacementGroupRepository
	definitionRepo    repository.DaypartDefinitionRepository
	storeScheduleRepo repository.DaypartScheduleRepository
	overrideRepo      repository.PlacementOverrideRepository
	auditRepo         repository.ScheduleAuditLogRepository
	cache             *DaypartCache
	logger            *zerolog.Logger
}

func NewDaypartScheduleFlow(
	db *gorm.DB,
	storeRepo repository.StoreRepository,
	placementRepo repository.PlacementGroupRepository,
	definitionRepo repository.DaypartDefinitionRepository,
	storeScheduleRepo repository.DaypartScheduleRepository,
	overrideRepo repository.PlacementOverrideRepository,
	auditRepo repository.ScheduleAuditLogRepository,
	cache *DaypartCache,
	logger *zerolog.Logger,
) DaypartScheduleFlow {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &DaypartScheduleFlowImpl{
		db:                db,
		storeRepo:         storeRepo,
		placementRepo:     placementRepo,
		definitionRepo:    definitionRepo,
		storeScheduleRepo: storeScheduleRepo,
		overrideRepo:      overrideRepo,
		auditRepo:         auditRepo,
		cache:             cache,
		logger:            logger,
	}
}

// ResolveDayparts returns the effective daypart definitions of a store in display order
func (f *DaypartScheduleFlowImpl) ResolveDayparts(ctx context.Context, storeID uint) (*dto.StoreDaypartsResponse, error) {
	store, err := f.loadStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	defs, err := f.resolveDefinitions(ctx, store)
	if err != nil {
		return nil, err
	}
	return &dto.StoreDaypartsResponse{
		Message:  "Dayparts retrieved successfully",
		StoreID:  store.ID,
		Dayparts: toDaypartDefinitionDTOs(defs),
	}, nil
}

// AggregateSchedules loads the store defaults and placement overrides relevant to a placement group.
// A missing placement group or store is an error, never an empty aggregate.
func (f *DaypartScheduleFlowImpl) AggregateSchedules(ctx context.Context, placementGroupID uint) (*ScheduleAggregate, error) {
	pg, err := f.loadPlacementGroup(ctx, placementGroupID)
	if err != nil {
		return nil, err
	}
	store, err := f.loadStore(ctx, pg.StoreID)
	if err != nil {
		return nil, err
	}
	defs, err := f.resolveDefinitions(ctx, store)
	if err != nil {
		return nil, err
	}

	overrides, err := f.overrideRepo.ByFilter(ctx, models.PlacementOverrideFilter{PlacementGroupID: &pg.ID}, "id ASC", 0, 0)
	if err != nil {
		return nil, NewBusinessError("SCHEDULE_FETCH_FAILED", "Failed to fetch placement schedules", persistenceError("list placement overrides", err))
	}

	defIDs := make([]uint, 0, len(defs))
	known := make(map[uint]bool, len(defs))
	for _, d := range defs {
		defIDs = append(defIDs, d.ID)
		known[d.ID] = true
	}
	defaults, err := f.storeScheduleRepo.ByFilter(ctx, models.DaypartScheduleFilter{DaypartDefinitionIDs: defIDs}, "id ASC", 0, 0)
	if err != nil {
		return nil, NewBusinessError("SCHEDULE_FETCH_FAILED", "Failed to fetch store schedules", persistenceError("list store schedules", err))
	}

	placementRecords := make([]models.ScheduleRecord, 0, len(overrides))
	var extraIDs []uint
	for _, o := range overrides {
		placementRecords = append(placementRecords, o.Record())
		if !known[o.DaypartDefinitionID] {
			known[o.DaypartDefinitionID] = true
			extraIDs = append(extraIDs, o.DaypartDefinitionID)
		}
	}
	extras, err := f.definitionRepo.ByIDs(ctx, extraIDs)
	if err != nil {
		return nil, NewBusinessError("DAYPART_FETCH_FAILED", "Failed to fetch daypart definitions", persistenceError("list daypart definitions", err))
	}

	storeRecords := make([]models.ScheduleRecord, 0, len(defaults))
	for _, d := range defaults {
		storeRecords = append(storeRecords, d.Record())
	}

	agg := &ScheduleAggregate{
		PlacementGroup:   pg,
		Store:            store,
		Dayparts:         defs,
		ExtraDefinitions: extras,
	}
	agg.PlacementRegular, agg.PlacementEvents = partitionRecords(placementRecords)
	agg.StoreRegular, agg.StoreEvents = partitionRecords(storeRecords)
	return agg, nil
}

// GetScheduleView returns the effective schedule of a placement group grouped by daypart
func (f *DaypartScheduleFlowImpl) GetScheduleView(ctx context.Context, placementGroupID uint) (*dto.PlacementScheduleViewResponse, error) {
	agg, err := f.AggregateSchedules(ctx, placementGroupID)
	if err != nil {
		return nil, err
	}
	view := BuildScheduleView(agg.Effective(), agg.Dayparts)

	return &dto.PlacementScheduleViewResponse{
		Message:          "Schedules retrieved successfully",
		PlacementGroupID: agg.PlacementGroup.ID,
		StoreID:          agg.Store.ID,
		Dayparts:         toDaypartScheduleGroupDTOs(view.Groups),
		Unassigned:       toEffectiveScheduleDTOs(view.Unassigned),
	}, nil
}

// CreateOverride adds a placement-level schedule
func (f *DaypartScheduleFlowImpl) CreateOverride(ctx context.Context, placementGroupID uint, req *dto.ScheduleOverrideRequest, metadata *ClientMetadata) (resp *dto.ScheduleOverrideResponse, err error) {
	var scheduleID uint
	defer func() {
		f.recordWrite(ctx, "create", models.AuditActionScheduleCreated, placementGroupID, scheduleID, metadata, err)
	}()

	window, err := buildWindow(req)
	if err != nil {
		return nil, err
	}

	var saved EffectiveSchedule
	err = repository.WithTransaction(ctx, f.db, func(txCtx context.Context) error {
		agg, err := f.AggregateSchedules(txCtx, placementGroupID)
		if err != nil {
			return err
		}
		def, err := checkDaypart(agg, window)
		if err != nil {
			return err
		}
		candidate := models.ScheduleRecord{PlacementGroupID: &placementGroupID, ScheduleWindow: window}
		if err := checkDayConflicts(def, candidate, agg.siblingsOf(def)); err != nil {
			return err
		}

		row := &models.PlacementDaypartOverride{
			UUID:             uuid.New(),
			PlacementGroupID: placementGroupID,
			ScheduleWindow:   window,
			CreatedAt:        utils.UTCNow(),
			UpdatedAt:        utils.UTCNow(),
		}
		if err := f.overrideRepo.Save(txCtx, row); err != nil {
			return NewBusinessError("SCHEDULE_SAVE_FAILED", "Failed to save schedule", persistenceError("create placement override", err))
		}
		saved = EffectiveSchedule{ScheduleRecord: row.Record(), DaypartName: def.DaypartName, Daypart: def}
		return nil
	})
	if err != nil {
		return nil, err
	}

	scheduleID = saved.ID
	return &dto.ScheduleOverrideResponse{
		Message:  "Schedule created successfully",
		Schedule: ToEffectiveScheduleDTO(saved),
	}, nil
}

// UpdateOverride rewrites a placement-level schedule owned by the placement group
func (f *DaypartScheduleFlowImpl) UpdateOverride(ctx context.Context, placementGroupID, scheduleID uint, req *dto.ScheduleOverrideRequest, metadata *ClientMetadata) (resp *dto.ScheduleOverrideResponse, err error) {
	defer func() {
		f.recordWrite(ctx, "update", models.AuditActionScheduleUpdated, placementGroupID, scheduleID, metadata, err)
	}()

	window, err := buildWindow(req)
	if err != nil {
		return nil, err
	}

	var saved EffectiveSchedule
	err = repository.WithTransaction(ctx, f.db, func(txCtx context.Context) error {
		agg, err := f.AggregateSchedules(txCtx, placementGroupID)
		if err != nil {
			return err
		}
		existing, err := f.overrideRepo.ByID(txCtx, scheduleID)
		if err != nil {
			return NewBusinessError("SCHEDULE_FETCH_FAILED", "Failed to fetch schedule", persistenceError("get placement override", err))
		}
		if existing == nil || existing.PlacementGroupID != placementGroupID {
			return NewBusinessError("SCHEDULE_NOT_FOUND", "Schedule not found", ErrScheduleNotFound)
		}
		def, err := checkDaypart(agg, window)
		if err != nil {
			return err
		}
		candidate := models.ScheduleRecord{ID: scheduleID, PlacementGroupID: &placementGroupID, ScheduleWindow: window}
		if err := checkDayConflicts(def, candidate, agg.siblingsOf(def)); err != nil {
			return err
		}

		row := *existing
		row.ScheduleWindow = window
		row.UpdatedAt = utils.UTCNow()
		if err := f.overrideRepo.Update(txCtx, &row); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NewBusinessError("SCHEDULE_NOT_FOUND", "Schedule not found", ErrScheduleNotFound)
			}
			return NewBusinessError("SCHEDULE_SAVE_FAILED", "Failed to update schedule", persistenceError("update placement override", err))
		}
		saved = EffectiveSchedule{ScheduleRecord: row.Record(), DaypartName: def.DaypartName, Daypart: def}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.ScheduleOverrideResponse{
		Message:  "Schedule updated successfully",
		Schedule: ToEffectiveScheduleDTO(saved),
	}, nil
}

// DeleteOverride removes a placement-level schedule owned by the placement group
func (f *DaypartScheduleFlowImpl) DeleteOverride(ctx context.Context, placementGroupID, scheduleID uint, metadata *ClientMetadata) (resp *dto.DeleteScheduleOverrideResponse, err error) {
	defer func() {
		f.recordWrite(ctx, "delete", models.AuditActionScheduleDeleted, placementGroupID, scheduleID, metadata, err)
	}()

	if _, err := f.loadPlacementGroup(ctx, placementGroupID); err != nil {
		return nil, err
	}
	affected, err := f.overrideRepo.Delete(ctx, placementGroupID, scheduleID)
	if err != nil {
		return nil, NewBusinessError("SCHEDULE_DELETE_FAILED", "Failed to delete schedule", persistenceError("delete placement override", err))
	}
	if affected == 0 {
		return nil, NewBusinessError("SCHEDULE_NOT_FOUND", "Schedule not found", ErrScheduleNotFound)
	}

	return &dto.DeleteScheduleOverrideResponse{Message: "Schedule deleted successfully"}, nil
}

// ReplaceOverrides swaps every placement-level schedule of the placement group for the requested set.
// The swap is atomic: on failure the previous schedules are left untouched.
func (f *DaypartScheduleFlowImpl) ReplaceOverrides(ctx context.Context, placementGroupID uint, req *dto.ReplaceScheduleOverridesRequest, metadata *ClientMetadata) (resp *dto.ReplaceScheduleOverridesResponse, err error) {
	defer func() {
		f.recordWrite(ctx, "replace", models.AuditActionSchedulesReplaced, placementGroupID, 0, metadata, err)
	}()

	windows := make([]models.ScheduleWindow, 0, len(req.Schedules))
	for i := range req.Schedules {
		w, err := buildWindow(&req.Schedules[i])
		if err != nil {
			return nil, indexed(i, err)
		}
		windows = append(windows, w)
	}

	agg, err := f.AggregateSchedules(ctx, placementGroupID)
	if err != nil {
		return nil, err
	}

	rows := make([]*models.PlacementDaypartOverride, 0, len(windows))
	accepted := make(map[string][]models.ScheduleRecord)
	now := utils.UTCNow()
	for i, w := range windows {
		def, err := checkDaypart(agg, w)
		if err != nil {
			return nil, indexed(i, err)
		}
		candidate := models.ScheduleRecord{PlacementGroupID: &placementGroupID, ScheduleWindow: w}
		if err := checkDayConflicts(def, candidate, accepted[def.DaypartName]); err != nil {
			return nil, indexed(i, err)
		}
		if !w.IsEvent() {
			accepted[def.DaypartName] = append(accepted[def.DaypartName], candidate)
		}
		rows = append(rows, &models.PlacementDaypartOverride{
			UUID:             uuid.New(),
			PlacementGroupID: placementGroupID,
			ScheduleWindow:   w,
			CreatedAt:        now,
			UpdatedAt:        now,
		})
	}

	if err := f.overrideRepo.ReplaceForPlacement(ctx, placementGroupID, rows); err != nil {
		f.logger.Error().Err(err).Uint("placement_group_id", placementGroupID).Msg("schedule replace rolled back")
		return nil, NewBusinessError("PARTIAL_UPDATE", "Replacing schedules failed; no changes were applied", fmt.Errorf("%w: %w", ErrReplaceRolledBack, err))
	}

	return &dto.ReplaceScheduleOverridesResponse{
		Message: "Schedules replaced successfully",
		Count:   len(rows),
	}, nil
}

// DraftFromInherited clones an inherited store schedule into an unsaved placement-level schedule
func (f *DaypartScheduleFlowImpl) DraftFromInherited(ctx context.Context, placementGroupID, storeScheduleID uint) (*dto.ScheduleDraftResponse, error) {
	agg, err := f.AggregateSchedules(ctx, placementGroupID)
	if err != nil {
		return nil, err
	}
	for _, e := range agg.Effective() {
		if !e.IsInherited || e.ID != storeScheduleID {
			continue
		}
		draft := EffectiveSchedule{
			ScheduleRecord: CloneInherited(e, placementGroupID),
			DaypartName:    e.DaypartName,
			Daypart:        e.Daypart,
		}
		return &dto.ScheduleDraftResponse{
			Message: "Draft created from inherited schedule",
			Draft:   ToEffectiveScheduleDTO(draft),
		}, nil
	}
	return nil, NewBusinessError("SCHEDULE_NOT_FOUND", "Inherited schedule not found", ErrScheduleNotFound)
}

// DraftRemainingDays prefills a schedule for the days no placement schedule of the daypart covers yet,
// using the first placement schedule of that daypart as template
func (f *DaypartScheduleFlowImpl) DraftRemainingDays(ctx context.Context, placementGroupID uint, daypartName string) (*dto.ScheduleDraftResponse, error) {
	agg, err := f.AggregateSchedules(ctx, placementGroupID)
	if err != nil {
		return nil, err
	}
	def, ok := agg.daypartNamed(daypartName)
	if !ok {
		return nil, NewBusinessErrorf("DAYPART_NOT_FOUND", "Daypart %q not found", ErrDaypartNotFound, daypartName)
	}
	siblings := agg.siblingsOf(def)
	if len(siblings) == 0 {
		return nil, NewBusinessError("SCHEDULE_NOT_FOUND", "No placement schedule to use as template", ErrScheduleNotFound)
	}
	remaining := RemainingDays(siblings)
	if len(remaining) == 0 {
		return nil, NewBusinessError("NO_REMAINING_DAYS", "Every day already has a schedule", ErrNoRemainingDays)
	}

	template := remainingTemplate(siblings)
	draft := EffectiveSchedule{
		ScheduleRecord: DraftRemaining(template, placementGroupID, remaining),
		DaypartName:    def.DaypartName,
		Daypart:        def,
	}
	return &dto.ScheduleDraftResponse{
		Message: "Draft created for remaining days",
		Draft:   ToEffectiveScheduleDTO(draft),
	}, nil
}

// ActiveDaypart reports the daypart in force for the placement group at the given instant,
// evaluated in the store's timezone
func (f *DaypartScheduleFlowImpl) ActiveDaypart(ctx context.Context, placementGroupID uint, at time.Time) (*dto.ActiveDaypartResponse, error) {
	agg, err := f.AggregateSchedules(ctx, placementGroupID)
	if err != nil {
		return nil, err
	}

	loc, err := time.LoadLocation(agg.Store.Timezone)
	if err != nil {
		f.logger.Warn().Err(err).Uint("store_id", agg.Store.ID).Str("timezone", agg.Store.Timezone).Msg("unknown store timezone, using UTC")
		loc = time.UTC
	}
	local := at.In(loc)

	resp := &dto.ActiveDaypartResponse{
		Message: "No daypart is active",
		At:      local.Format(time.RFC3339),
	}
	active := ActiveDaypartAt(agg.Effective(), local)
	if active == nil {
		return resp, nil
	}

	schedule := ToEffectiveScheduleDTO(active.Schedule)
	resp.Message = "Active daypart resolved"
	resp.Active = true
	resp.Schedule = &schedule
	resp.StartsAt = active.StartsAt.Format(time.RFC3339)
	if active.Daypart != nil {
		def := ToDaypartDefinitionDTO(*active.Daypart)
		resp.Daypart = &def
	}
	if active.EndsAt != nil {
		ends := active.EndsAt.Format(time.RFC3339)
		resp.EndsAt = &ends
	}
	return resp, nil
}

// Audit trail paging bounds
const (
	DefaultAuditPageSize = 50
	MaxAuditPageSize     = 200
)

// ListAuditLog returns a page of the schedule write trail of a placement group, newest first.
// A non-positive limit selects the default page size; limits above the maximum are clamped.
func (f *DaypartScheduleFlowImpl) ListAuditLog(ctx context.Context, placementGroupID uint, limit, offset int) (*dto.ScheduleAuditLogResponse, error) {
	pg, err := f.loadPlacementGroup(ctx, placementGroupID)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultAuditPageSize
	}
	if limit > MaxAuditPageSize {
		limit = MaxAuditPageSize
	}
	if offset < 0 {
		offset = 0
	}

	logs, err := f.auditRepo.ListByPlacementGroup(ctx, pg.ID, limit, offset)
	if err != nil {
		return nil, NewBusinessError("AUDIT_FETCH_FAILED", "Failed to fetch schedule audit log", persistenceError("list schedule audit log", err))
	}

	return &dto.ScheduleAuditLogResponse{
		Message:          "Audit log retrieved successfully",
		PlacementGroupID: pg.ID,
		Limit:            limit,
		Offset:           offset,
		Entries:          toScheduleAuditLogDTOs(logs),
	}, nil
}

// WarmDaypartCache refreshes the cached daypart definitions of every store
func (f *DaypartScheduleFlowImpl) WarmDaypartCache(ctx context.Context) (int, error) {
	if !f.cache.Enabled() {
		return 0, nil
	}
	ids, err := f.storeRepo.ListIDs(ctx)
	if err != nil {
		return 0, persistenceError("list stores", err)
	}

	warmed := 0
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return warmed, err
		}
		store, err := f.storeRepo.ByID(ctx, id)
		if err != nil || store == nil {
			f.logger.Warn().Err(err).Uint("store_id", id).Msg("skipping store during daypart cache warm-up")
			continue
		}
		defs, err := f.definitionRepo.EffectiveForStore(ctx, store)
		if err != nil {
			f.logger.Warn().Err(err).Uint("store_id", id).Msg("failed to resolve dayparts during cache warm-up")
			continue
		}
		f.cache.Set(ctx, id, defs)
		warmed++
	}
	return warmed, nil
}

func (f *DaypartScheduleFlowImpl) loadPlacementGroup(ctx context.Context, id uint) (*models.PlacementGroup, error) {
	pg, err := f.placementRepo.ByID(ctx, id)
	if err != nil {
		return nil, NewBusinessError("PLACEMENT_GROUP_FETCH_FAILED", "Failed to fetch placement group", persistenceError("get placement group", err))
	}
	if pg == nil {
		return nil, NewBusinessError("PLACEMENT_GROUP_NOT_FOUND", "Placement group not found", ErrPlacementGroupNotFound)
	}
	return pg, nil
}

func (f *DaypartScheduleFlowImpl) loadStore(ctx context.Context, id uint) (*models.Store, error) {
	store, err := f.storeRepo.ByID(ctx, id)
	if err != nil {
		return nil, NewBusinessError("STORE_FETCH_FAILED", "Failed to fetch store", persistenceError("get store", err))
	}
	if store == nil {
		return nil, NewBusinessError("STORE_NOT_FOUND", "Store not found", ErrStoreNotFound)
	}
	return store, nil
}

func (f *DaypartScheduleFlowImpl) resolveDefinitions(ctx context.Context, store *models.Store) ([]*models.DaypartDefinition, error) {
	if defs, ok := f.cache.Get(ctx, store.ID); ok {
		daypartResolutionsTotal.WithLabelValues("hit").Inc()
		return defs, nil
	}

	defs, err := f.definitionRepo.EffectiveForStore(ctx, store)
	if err != nil {
		return nil, NewBusinessError("DAYPART_FETCH_FAILED", "Failed to resolve dayparts", persistenceError("resolve dayparts", err))
	}

	if f.cache.Enabled() {
		daypartResolutionsTotal.WithLabelValues("miss").Inc()
		f.cache.Set(ctx, store.ID, defs)
	} else {
		daypartResolutionsTotal.WithLabelValues("bypass").Inc()
	}
	return defs, nil
}

// recordWrite counts a schedule write and appends it to the placement group's audit trail.
// Writes rejected before reaching the store (validation, unknown ids) are not audited.
func (f *DaypartScheduleFlowImpl) recordWrite(ctx context.Context, operation, action string, placementGroupID, scheduleID uint, metadata *ClientMetadata, err error) {
	observeWrite(operation, err)
	if err != nil && (IsValidation(err) || IsNotFound(err)) {
		return
	}

	audit := &models.ScheduleAuditLog{
		PlacementGroupID: placementGroupID,
		Action:           action,
		Success:          utils.ToPtr(err == nil),
		CreatedAt:        utils.UTCNow(),
	}
	if scheduleID != 0 {
		audit.ScheduleID = &scheduleID
	}
	if err != nil {
		msg := err.Error()
		audit.ErrorMessage = &msg
		audit.Description = utils.ToPtr(fmt.Sprintf("placement group %d: %s failed", placementGroupID, operation))
	} else {
		audit.Description = utils.ToPtr(fmt.Sprintf("placement group %d: %s succeeded", placementGroupID, operation))
	}
	if metadata != nil {
		audit.IPAddress = utils.ToPtr(metadata.IPAddress)
		audit.UserAgent = utils.ToPtr(metadata.UserAgent)
		if metadata.RequestID != "" {
			audit.RequestID = utils.ToPtr(metadata.RequestID)
		}
		if raw, merr := json.Marshal(metadata); merr == nil {
			audit.Metadata = raw
		}
	}

	ev := f.logger.Info()
	if err != nil {
		ev = f.logger.Error().Err(err)
	}
	ev = ev.Str("action", action).Uint("placement_group_id", placementGroupID)
	if scheduleID != 0 {
		ev = ev.Uint("schedule_id", scheduleID)
	}
	if audit.RequestID != nil {
		ev = ev.Str("request_id", *audit.RequestID)
	}
	ev.Msg("placement schedules changed")

	if f.auditRepo == nil {
		return
	}
	if serr := f.auditRepo.Save(context.WithoutCancel(ctx), audit); serr != nil {
		f.logger.Warn().Err(serr).Str("action", action).Uint("placement_group_id", placementGroupID).Msg("failed to write schedule audit log")
	}
}

// indexed prefixes a business error message with the position of the offending schedule
func indexed(i int, err error) error {
	var be *BusinessError
	if errors.As(err, &be) {
		return NewBusinessErrorf(be.Code, "schedule %d: %s", be.Err, i+1, be.Message)
	}
	return err
}
