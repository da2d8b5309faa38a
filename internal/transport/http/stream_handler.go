package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/megamind1212/notesmate-api/internal/service"
	"github.com/megamind1212/notesmate-api/internal/util"
)

type StreamHandler struct {
	stream *service.StreamService
}

func RegisterStream(e *echo.Echo, stream *service.StreamService) {
	handler := &StreamHandler{stream: stream}
	e.GET("/api/get-deepgram-ws", handler.websocketURL)
}

// websocketURL handles GET /api/get-deepgram-ws
func (h *StreamHandler) websocketURL(c echo.Context) error {
	wsURL, err := h.stream.WebsocketURL()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error(err.Error()))
	}
	return c.JSON(http.StatusOK, DeepgramWSResponse{WSURL: wsURL})
}
