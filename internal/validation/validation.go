// Package validation contains the logic for validating request data.
//
// It uses the `validator` library to enforce rules (like required fields
// or email formats) defined in struct tags and extracts validation errors
// into a format the client can understand. It also hosts the pure email
// predicate the data-access layer runs before user writes.
package validation
