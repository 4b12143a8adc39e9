// Package generation provides the interfaces and pure building blocks for
// turning study text into flashcards with an external AI/LLM service. It
// abstracts the details of LLM API integration (Gemini), allowing the
// application to generate flashcards without coupling to a specific
// external provider. The prompt builder and response decoder live here as
// provider-independent pieces; provider clients implement Generator.
package generation
