package dto

type SpeechRequest struct {
	Text string `json:"text" example:"Workflows run actions when events happen."`
}
