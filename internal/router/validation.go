package router

import "fmt"

// ValidationResult contains the results of route table validation.
type ValidationResult struct {
	// Valid is true if no errors were found.
	// Warnings do not affect validity.
	Valid bool `json:"valid"`

	// Errors are blocking issues that prevent routing.
	Errors []ValidationError `json:"errors"`

	// Warnings are non-blocking issues that should be reviewed.
	Warnings []ValidationWarning `json:"warnings"`
}

// ValidationError represents a blocking validation error.
type ValidationError struct {
	// Route is the route position, e.g. "routes[2]".
	Route string `json:"route"`

	// Field is the route field with the error.
	Field string `json:"field"`

	// Message describes the error.
	Message string `json:"message"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return e.Route + "." + e.Field + ": " + e.Message
}

// ValidationWarning represents a non-blocking warning.
type ValidationWarning struct {
	Route   string `json:"route"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateRoutes checks a route table. Empty views, malformed patterns and
// a second catch-all are errors. A pattern shadowed by an earlier one and a
// protected catch-all are warnings.
func ValidateRoutes(routes []Route) ValidationResult {
	result := ValidationResult{
		Valid:    true,
		Errors:   make([]ValidationError, 0),
		Warnings: make([]ValidationWarning, 0),
	}

	addError := func(i int, field, msg string) {
		result.Valid = false
		result.Errors = append(result.Errors, ValidationError{
			Route:   fmt.Sprintf("routes[%d]", i),
			Field:   field,
			Message: msg,
		})
	}

	seen := make(map[string]int, len(routes))
	catchAll := -1

	for i, route := range routes {
		if route.View == "" {
			addError(i, "view", "view is required")
		}

		if route.Pattern == CatchAll {
			if catchAll >= 0 {
				addError(i, "pattern", fmt.Sprintf("duplicate catch-all (also at index %d)", catchAll))
				continue
			}
			catchAll = i
			if route.Protected {
				result.Warnings = append(result.Warnings, ValidationWarning{
					Route:   fmt.Sprintf("routes[%d]", i),
					Field:   "protected",
					Message: "catch-all route is protected; unknown paths will require sign-in",
				})
			}
			continue
		}

		compiled, err := CompilePattern(route.Pattern)
		if err != nil {
			addError(i, "pattern", err.Error())
			continue
		}

		key := compiled.Key()
		if prev, ok := seen[key]; ok {
			result.Warnings = append(result.Warnings, ValidationWarning{
				Route:   fmt.Sprintf("routes[%d]", i),
				Field:   "pattern",
				Message: fmt.Sprintf("pattern %q is shadowed by routes[%d]", route.Pattern, prev),
			})
			continue
		}
		seen[key] = i
	}

	return result
}

// HasErrors returns true if the validation result contains any errors.
func (r ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// HasWarnings returns true if the validation result contains any warnings.
func (r ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}
