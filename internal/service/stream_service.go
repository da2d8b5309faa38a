package service

import (
	"errors"
	"fmt"
)

var ErrDeepgramNotConfigured = errors.New("Deepgram API key not configured")

const defaultDeepgramModel = "nova-3-medical"

// StreamService mints realtime transcription WebSocket URLs. The frontend
// opens the socket itself; the backend only hands out the address with the
// API token attached.
type StreamService struct {
	apiKey string
	model  string
}

func NewStreamService(apiKey, model string) *StreamService {
	if model == "" {
		model = defaultDeepgramModel
	}
	return &StreamService{apiKey: apiKey, model: model}
}

func (s *StreamService) WebsocketURL() (string, error) {
	if s.apiKey == "" {
		return "", ErrDeepgramNotConfigured
	}
	url := fmt.Sprintf(
		"wss://api.deepgram.com/v1/listen?model=%s&diarize=true&smart_format=true&punctuate=true&token=%s",
		s.model, s.apiKey,
	)
	return url, nil
}
