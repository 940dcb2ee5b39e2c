// Package api provides the HTTP handlers for the API. Handlers translate
// between the JSON envelope convention and the service/store layers; they
// never parse raw HTTP beyond what chi hands them.
package api
