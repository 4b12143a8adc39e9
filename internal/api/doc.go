// Package api contains the HTTP handlers, request/response models and
// error mapping for the flashcard generation API.
package api
