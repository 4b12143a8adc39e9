// Package gemini implements the generation.Generator interface using
// Google's Gemini API. It owns the outbound network call: prompt in, raw
// response text out, with bounded retry for transient provider faults.
// Decoding the response into flashcards is delegated to the generation
// package so it stays testable without a network.
package gemini
