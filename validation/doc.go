// Package validation validates configuration structs using struct tags.
//
//	type Config struct {
//	    BaseURL string `json:"base_url" validate:"required,url"`
//	}
//	if err := validation.Validate(cfg); err != nil {
//	    // *errors.AppError with code INVALID_INPUT
//	}
//
// Field names in messages come from the json tag, falling back to snake_case.
package validation
