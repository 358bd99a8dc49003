package dto

import "time"

type AskRequest struct {
	Text string `json:"text" example:"How do I add a workflow to a button?"`
}

type ProcessingMetricsResponse struct {
	TotalTimeMs              int64  `json:"totalTimeMs"`
	CacheCheckTimeMs         int64  `json:"cacheCheckTimeMs,omitempty"`
	ResponseGenerationTimeMs int64  `json:"responseGenerationTimeMs,omitempty"`
	AudioSynthesisTimeMs     int64  `json:"audioSynthesisTimeMs,omitempty"`
	CacheHit                 bool   `json:"cacheHit"`
	Error                    string `json:"error,omitempty"`
}

type AskResponse struct {
	Response string                    `json:"response"`
	AudioURL string                    `json:"audioUrl"`
	Metrics  ProcessingMetricsResponse `json:"metrics"`
}

func MetricsResponse(total, cacheCheck, generation, synthesis time.Duration, cacheHit bool) ProcessingMetricsResponse {
	return ProcessingMetricsResponse{
		TotalTimeMs:              total.Milliseconds(),
		CacheCheckTimeMs:         cacheCheck.Milliseconds(),
		ResponseGenerationTimeMs: generation.Milliseconds(),
		AudioSynthesisTimeMs:     synthesis.Milliseconds(),
		CacheHit:                 cacheHit,
	}
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
