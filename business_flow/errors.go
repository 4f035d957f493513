// Package businessflow contains the core business logic and use cases for daypart schedule workflows
package businessflow

import (
	"errors"
	"fmt"
)

// Error categories. Every specific error below wraps exactly one of them.
var (
	ErrNotFound       = errors.New("not found")
	ErrValidation     = errors.New("validation failed")
	ErrPersistence    = errors.New("persistence failed")
	ErrPartialFailure = errors.New("partial update")
)

// Business flow error constants
var (
	// Resolution errors
	ErrPlacementGroupNotFound = fmt.Errorf("%w: placement group", ErrNotFound)
	ErrStoreNotFound          = fmt.Errorf("%w: store", ErrNotFound)
	ErrScheduleNotFound       = fmt.Errorf("%w: schedule", ErrNotFound)
	ErrDaypartNotFound        = fmt.Errorf("%w: daypart", ErrNotFound)

	// Schedule validation errors
	ErrDaysOfWeekRequired   = fmt.Errorf("%w: at least one day of week is required", ErrValidation)
	ErrInvalidWeekday       = fmt.Errorf("%w: weekday must be between 0 (Sunday) and 6 (Saturday)", ErrValidation)
	ErrInvalidTimeFormat    = fmt.Errorf("%w: time must be HH:MM or HH:MM:SS", ErrValidation)
	ErrEmptyTimeWindow      = fmt.Errorf("%w: end time must differ from start time", ErrValidation)
	ErrEventNameRequired    = fmt.Errorf("%w: event name is required", ErrValidation)
	ErrEventDateRequired    = fmt.Errorf("%w: event date is required", ErrValidation)
	ErrInvalidEventDate     = fmt.Errorf("%w: event date must be YYYY-MM-DD", ErrValidation)
	ErrInvalidScheduleType  = fmt.Errorf("%w: unknown schedule type", ErrValidation)
	ErrInvalidRecurrence    = fmt.Errorf("%w: unknown recurrence type", ErrValidation)
	ErrDaypartNotApplicable = fmt.Errorf("%w: daypart is not defined for this store", ErrValidation)
	ErrDayConflict          = fmt.Errorf("%w: days already claimed by another schedule of this daypart", ErrValidation)
	ErrNoRemainingDays      = fmt.Errorf("%w: every day already has a schedule for this daypart", ErrValidation)
	ErrInvalidActiveAt      = fmt.Errorf("%w: time must be RFC3339", ErrValidation)

	// Write errors
	ErrReplaceRolledBack = fmt.Errorf("%w: replacing schedules failed and no changes were applied", ErrPartialFailure)
)

type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func NewBusinessErrorf(code, message string, err error, args ...any) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: fmt.Sprintf(message, args...),
		Err:     err,
	}
}

// DayConflictError lists the weekdays that collide with an existing schedule
type DayConflictError struct {
	DaypartName string
	Days        []int
}

func (e *DayConflictError) Error() string {
	return fmt.Sprintf("%v (daypart %q, days %v)", ErrDayConflict, e.DaypartName, e.Days)
}

func (e *DayConflictError) Unwrap() error {
	return ErrDayConflict
}

// persistenceError wraps a data layer failure into the persistence category
func persistenceError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrPersistence, op, err)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

func IsPersistence(err error) bool {
	return errors.Is(err, ErrPersistence)
}

func IsPartialFailure(err error) bool {
	return errors.Is(err, ErrPartialFailure)
}

func IsPlacementGroupNotFound(err error) bool {
	return errors.Is(err, ErrPlacementGroupNotFound)
}

func IsStoreNotFound(err error) bool {
	return errors.Is(err, ErrStoreNotFound)
}

func IsScheduleNotFound(err error) bool {
	return errors.Is(err, ErrScheduleNotFound)
}

func IsDayConflict(err error) bool {
	return errors.Is(err, ErrDayConflict)
}

func IsNoRemainingDays(err error) bool {
	return errors.Is(err, ErrNoRemainingDays)
}
