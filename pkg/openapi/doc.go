// Package openapi discovers date/time fields in OpenAPI documents so each one
// can be bound to a datetime picker with matching parts. Loader and Scanner
// implementations live under internal/openapi to keep kin-openapi types out of
// the public API.
package openapi
