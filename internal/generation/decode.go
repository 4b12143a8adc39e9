package generation

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/cardforge/cardforge/internal/domain"
)

// fenceMarker is the delimiter models use to wrap output in a markdown code
// block despite being told not to.
const fenceMarker = "```"

// languageTag is the tag some models place after the opening fence.
const languageTag = "json"

// cardPayload mirrors one element of the JSON array the model is asked to
// produce.
type cardPayload struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// DecodeCards turns a raw model response into an ordered flashcard batch.
//
// The response is trimmed and any outer markdown fence is stripped before
// being parsed as a JSON array of {question, answer} objects. Every element
// must carry a non-empty question and answer; a single malformed element
// invalidates the whole batch. On failure a *DecodeError is returned, which
// matches ErrInvalidResponse via errors.Is.
func DecodeCards(raw string) ([]domain.Flashcard, error) {
	text := StripFences(raw)
	if text == "" {
		return nil, &DecodeError{Raw: text, Err: errors.New("response is empty")}
	}

	var payload []cardPayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return nil, &DecodeError{Raw: text, Err: err}
	}

	if len(payload) == 0 {
		return nil, &DecodeError{Raw: text, Err: errors.New("response contains no cards")}
	}

	cards := make([]domain.Flashcard, 0, len(payload))
	for i, item := range payload {
		card, err := domain.NewFlashcard(item.Question, item.Answer)
		if err != nil {
			return nil, &DecodeError{Raw: text, Err: fmt.Errorf("card %d: %w", i, err)}
		}
		cards = append(cards, card)
	}

	return cards, nil
}

// StripFences normalizes a model response by trimming whitespace and
// removing an outer markdown code fence if one is present.
//
// Rules:
//   - A response that does not begin with a fence marker is returned
//     trimmed, unchanged otherwise.
//   - A leading fence is removed along with its matching trailing fence;
//     a missing trailing fence is tolerated.
//   - A language tag token immediately after the opening fence (the literal
//     "json", any case) is dropped.
func StripFences(raw string) string {
	text := strings.TrimSpace(raw)
	if !strings.HasPrefix(text, fenceMarker) {
		return text
	}

	// Segments: "" before the opening fence, the body, and whatever follows
	// the closing fence. With no closing fence the body is the remainder.
	segments := strings.SplitN(text, fenceMarker, 3)
	body := segments[1]

	// Drop the language tag only when it is a whole token, so content that
	// happens to start with those letters survives.
	if len(body) >= len(languageTag) && strings.EqualFold(body[:len(languageTag)], languageTag) {
		rest := body[len(languageTag):]
		if rest == "" || rest[0] == '\n' || rest[0] == '\r' || rest[0] == ' ' || rest[0] == '[' {
			body = rest
		}
	}

	return strings.TrimSpace(body)
}
