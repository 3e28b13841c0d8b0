package validation

// TaskValidator provides validation for Task-related operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// ValidateTaskName validates a task name for creation or update
func (tv *TaskValidator) ValidateTaskName(name string) error {
	validationError := NewValidationError()

	trimmedName := tv.validator.TrimAndValidateString(name)

	if !tv.validator.IsNonEmptyString(trimmedName) {
		validationError.AddRequiredError("task_name")
		return validationError
	}

	if !tv.validator.IsValidStringLength(trimmedName, 1, 255) {
		validationError.AddInvalidLengthError("task_name", trimmedName, 1, 255)
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateTaskForCreation validates input for a new task
func (tv *TaskValidator) ValidateTaskForCreation(name string, projectID int64, estimateMinutes *int) error {
	validationError := NewValidationError()

	if nameErr := tv.ValidateTaskName(name); nameErr != nil {
		if nameValidationErr, ok := nameErr.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, nameValidationErr.Errors...)
		}
	}

	if !tv.validator.IsValidID(projectID) {
		validationError.AddInvalidValueError("project_id", projectID, "must be a positive integer")
	}

	if !tv.validator.IsNonNegativeMinutes(estimateMinutes) {
		validationError.AddInvalidValueError("estimate_minutes", *estimateMinutes, "must not be negative")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateTaskID validates a task ID
func (tv *TaskValidator) ValidateTaskID(id int64) error {
	if !tv.validator.IsValidID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("task_id", id, "must be a positive integer")
		return validationError
	}
	return nil
}

// GetValidTaskName returns a cleaned task name if valid
func (tv *TaskValidator) GetValidTaskName(name string) (string, error) {
	if err := tv.ValidateTaskName(name); err != nil {
		return "", err
	}
	return tv.validator.TrimAndValidateString(name), nil
}
