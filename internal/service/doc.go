// Package service contains the application services that tie the domain
// model to the generation provider and export writers.
package service
