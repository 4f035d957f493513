// Package businessflow contains the business logic for the application.
package businessflow

import (
	"encoding/json"
	"time"

	"github.com/amirphl/signage-admin/app/dto"
	"github.com/amirphl/signage-admin/models"
	"github.com/google/uuid"
)

const RequestIDKey = "X-Request-ID"

// ClientMetadata holds client information recorded with every schedule write
type ClientMetadata struct {
	IPAddress string `json:"ip_address"`
	UserAgent string `json:"user_agent"`
	RequestID string `json:"request_id,omitempty"`
}

// NewClientMetadata creates a new ClientMetadata instance with basic information
func NewClientMetadata(ipAddress, userAgent string) *ClientMetadata {
	return &ClientMetadata{
		IPAddress: ipAddress,
		UserAgent: userAgent,
	}
}

// SetRequestID sets the request ID
func (cm *ClientMetadata) SetRequestID(requestID string) {
	cm.RequestID = requestID
}

// ToDaypartDefinitionDTO converts a daypart definition model to its DTO
func ToDaypartDefinitionDTO(def models.DaypartDefinition) dto.DaypartDefinitionDTO {
	return dto.DaypartDefinitionDTO{
		ID:           def.ID,
		DaypartName:  def.DaypartName,
		DisplayLabel: def.DisplayLabel,
		Color:        def.Color,
		Icon:         def.Icon,
		SortOrder:    def.SortOrder,
		Scope:        def.Scope,
	}
}

func toDaypartDefinitionDTOs(defs []*models.DaypartDefinition) []dto.DaypartDefinitionDTO {
	out := make([]dto.DaypartDefinitionDTO, 0, len(defs))
	for _, d := range defs {
		out = append(out, ToDaypartDefinitionDTO(*d))
	}
	return out
}

// ToEffectiveScheduleDTO converts an effective schedule to its DTO, adding display fields
func ToEffectiveScheduleDTO(e EffectiveSchedule) dto.EffectiveScheduleDTO {
	days := e.Days()
	out := dto.EffectiveScheduleDTO{
		ID:                  e.ID,
		PlacementGroupID:    e.PlacementGroupID,
		DaypartDefinitionID: e.DaypartDefinitionID,
		DaypartName:         e.DaypartName,
		DaysOfWeek:          days,
		DayLabels:           DayLabels(days),
		DaySummary:          DaySummary(days),
		StartTime:           e.StartTime,
		EndTime:             e.EndTime,
		DisplayTime:         FormatTimeRange(e.StartTime, e.EndTime, e.RunsOnDays),
		RunsOnDays:          e.RunsOnDays,
		ScheduleType:        e.ScheduleType,
		ScheduleName:        e.ScheduleName,
		EventName:           e.EventName,
		RecurrenceType:      e.RecurrenceType,
		PriorityLevel:       e.PriorityLevel,
		IsInherited:         e.IsInherited,
	}
	if e.UUID != uuid.Nil {
		out.UUID = e.UUID.String()
	}
	if date := e.EventDateString(); date != "" {
		out.EventDate = &date
	}
	if len(e.RecurrenceConfig) > 0 {
		out.RecurrenceConfig = json.RawMessage(e.RecurrenceConfig)
	}
	return out
}

func toEffectiveScheduleDTOs(list []EffectiveSchedule) []dto.EffectiveScheduleDTO {
	out := make([]dto.EffectiveScheduleDTO, 0, len(list))
	for _, e := range list {
		out = append(out, ToEffectiveScheduleDTO(e))
	}
	return out
}

// toDaypartScheduleGroupDTOs converts the grouped view to DTOs
func toDaypartScheduleGroupDTOs(groups []DaypartScheduleGroup) []dto.DaypartScheduleGroupDTO {
	out := make([]dto.DaypartScheduleGroupDTO, 0, len(groups))
	for _, g := range groups {
		unscheduled := g.UnscheduledDays
		if unscheduled == nil {
			unscheduled = []int{}
		}
		out = append(out, dto.DaypartScheduleGroupDTO{
			Daypart:              ToDaypartDefinitionDTO(*g.Daypart),
			Regular:              toEffectiveScheduleDTOs(g.Regular),
			Events:               toEffectiveScheduleDTOs(g.Events),
			UnscheduledDays:      unscheduled,
			UnscheduledDayLabels: DayLabels(unscheduled),
		})
	}
	return out
}

// toScheduleAuditLogDTOs converts audit rows to DTOs
func toScheduleAuditLogDTOs(logs []*models.ScheduleAuditLog) []dto.ScheduleAuditLogDTO {
	out := make([]dto.ScheduleAuditLogDTO, 0, len(logs))
	for _, l := range logs {
		out = append(out, dto.ScheduleAuditLogDTO{
			ID:           l.ID,
			ScheduleID:   l.ScheduleID,
			Action:       l.Action,
			Description:  l.Description,
			IPAddress:    l.IPAddress,
			UserAgent:    l.UserAgent,
			RequestID:    l.RequestID,
			Success:      !l.IsFailed(),
			ErrorMessage: l.ErrorMessage,
			CreatedAt:    l.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return out
}
