package api

// GenerateRequest defines the payload for the flashcard generation endpoint.
// The bounds mirror the domain rules so obviously bad requests are rejected
// before any provider call.
type GenerateRequest struct {
	Text      string `json:"text"       validate:"required,min=50"`
	CardCount int    `json:"card_count" validate:"required,min=1,max=200"`
}

// FlashcardResponse is one generated question/answer pair.
type FlashcardResponse struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ExportResponse names the files a batch was exported to. Clients download
// them through the exports endpoint.
type ExportResponse struct {
	CSV  string `json:"csv"`
	JSON string `json:"json"`
}

// GenerateResponse defines the successful response for the generation
// endpoint. Cards appear in generation order.
type GenerateResponse struct {
	Cards   []FlashcardResponse `json:"cards"`
	Count   int                 `json:"count"`
	Exports ExportResponse      `json:"exports"`
}
