// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeInvalidData,
//	    "failed to parse dataset record",
//	    parseErr,
//	    map[string]interface{}{
//	        "path": path,
//	        "record": name,
//	    },
//	)
package errors
