package validation

// ProjectValidator provides validation for Project-related operations
type ProjectValidator struct {
	validator *Validator
}

// NewProjectValidator creates a new project validator
func NewProjectValidator() *ProjectValidator {
	return &ProjectValidator{
		validator: NewValidator(),
	}
}

// ValidateProjectName validates a project name for creation or update
func (pv *ProjectValidator) ValidateProjectName(name string) error {
	validationError := NewValidationError()

	trimmedName := pv.validator.TrimAndValidateString(name)

	if !pv.validator.IsNonEmptyString(trimmedName) {
		validationError.AddRequiredError("project_name")
		return validationError
	}

	if !pv.validator.IsValidStringLength(trimmedName, 1, 255) {
		validationError.AddInvalidLengthError("project_name", trimmedName, 1, 255)
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateProjectForCreation validates input for a new project
func (pv *ProjectValidator) ValidateProjectForCreation(name string, hourlyRate, budget *float64) error {
	validationError := NewValidationError()

	if nameErr := pv.ValidateProjectName(name); nameErr != nil {
		if nameValidationErr, ok := nameErr.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, nameValidationErr.Errors...)
		}
	}

	if !pv.validator.IsNonNegativeRate(hourlyRate) {
		validationError.AddInvalidValueError("hourly_rate", *hourlyRate, "must not be negative")
	}

	if !pv.validator.IsNonNegativeRate(budget) {
		validationError.AddInvalidValueError("budget", *budget, "must not be negative")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateProjectID validates a project ID
func (pv *ProjectValidator) ValidateProjectID(id int64) error {
	if !pv.validator.IsValidID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("project_id", id, "must be a positive integer")
		return validationError
	}
	return nil
}

// GetValidProjectName returns a cleaned project name if valid
func (pv *ProjectValidator) GetValidProjectName(name string) (string, error) {
	if err := pv.ValidateProjectName(name); err != nil {
		return "", err
	}
	return pv.validator.TrimAndValidateString(name), nil
}
