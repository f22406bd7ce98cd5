// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.NewWithContext(
//	    errors.ErrCodeInvalidRequest,
//	    "left version cannot be blank",
//	    map[string]interface{}{
//	        "side": "left",
//	    },
//	)
package errors
