package validation

import (
	"time"
)

// TimeEntryValidator provides validation for TimeEntry-related operations
type TimeEntryValidator struct {
	validator *Validator
}

// NewTimeEntryValidator creates a new time entry validator
func NewTimeEntryValidator() *TimeEntryValidator {
	return &TimeEntryValidator{
		validator: NewValidator(),
	}
}

// ValidateTimeEntryForCreation validates a time entry for creation.
// Overlap with existing entries is deliberately not checked; overlapping
// entries are accepted behavior.
func (tev *TimeEntryValidator) ValidateTimeEntryForCreation(taskID int64, startTime time.Time, endTime *time.Time) error {
	validationError := NewValidationError()

	if !tev.validator.IsValidID(taskID) {
		validationError.AddInvalidValueError("task_id", taskID, "must be a positive integer")
	}

	if startTime.IsZero() {
		validationError.AddRequiredError("start_time")
	} else if !tev.validator.IsReasonableDate(startTime) {
		validationError.AddInvalidValueError("start_time", startTime, "must be within reasonable date range")
	}

	if endTime != nil {
		if !tev.validator.IsReasonableDate(*endTime) {
			validationError.AddInvalidValueError("end_time", *endTime, "must be within reasonable date range")
		}

		if !tev.validator.IsValidTimeRange(startTime, endTime) {
			validationError.AddInvalidRangeError("time_range", map[string]time.Time{
				"start": startTime,
				"end":   *endTime,
			}, "end time must not be before start time")
		}
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateTimeEntryForUpdate validates a time entry for update
func (tev *TimeEntryValidator) ValidateTimeEntryForUpdate(id int64, taskID int64, startTime time.Time, endTime *time.Time) error {
	validationError := NewValidationError()

	if !tev.validator.IsValidID(id) {
		validationError.AddInvalidValueError("time_entry_id", id, "must be a positive integer")
	}

	if creationErr := tev.ValidateTimeEntryForCreation(taskID, startTime, endTime); creationErr != nil {
		if creationValidationErr, ok := creationErr.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, creationValidationErr.Errors...)
		}
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateEntryID validates a time entry ID
func (tev *TimeEntryValidator) ValidateEntryID(id int64) error {
	if !tev.validator.IsValidID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("time_entry_id", id, "must be a positive integer")
		return validationError
	}
	return nil
}
