package validator

// FieldError is a single field-level validation message surfaced to the
// submitter.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult collects field errors from a module validator.
type ValidationResult struct {
	Errors []FieldError `json:"errors"`
}

func (r *ValidationResult) AddError(field, message string) {
	r.Errors = append(r.Errors, FieldError{Field: field, Message: message})
}

func (r *ValidationResult) HasError() bool {
	return len(r.Errors) > 0
}
