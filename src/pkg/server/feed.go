package server

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/sample-gallery/urigen/src/pkg/provider"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

type feedRequest struct {
	Size         string `json:"size"`
	Orientation  string `json:"orientation"`
	CacheBreaker bool   `json:"cache_breaker"`
	Count        int    `json:"count"`
}

type feedMessage struct {
	URI   string `json:"uri,omitempty"`
	Error string `json:"error,omitempty"`
}

// Feed upgrades the connection to a websocket and answers every client
// request with a batch of freshly generated sample URIs. Gallery clients keep
// the connection open and request pages as the user scrolls.
func (h *Handler) Feed(w http.ResponseWriter, r *http.Request) {
	conn, upgradeErr := upgrader.Upgrade(w, r, nil)
	if upgradeErr != nil {
		slog.Warn("Failed to upgrade feed connection", "error", upgradeErr)
		return
	}
	defer func() {
		if err := conn.Close(); err != nil {
			slog.Warn("Failed to close feed connection", "error", err)
		}
	}()

	for {
		request := feedRequest{}
		if readErr := conn.ReadJSON(&request); readErr != nil {
			if websocket.IsUnexpectedCloseError(readErr, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				slog.Warn("Feed connection failed", "error", readErr)
			}
			return
		}

		if sendErr := h.serveFeedRequest(conn, request); sendErr != nil {
			slog.Warn("Failed to write to feed connection", "error", sendErr)
			return
		}
	}
}

func (h *Handler) serveFeedRequest(conn *websocket.Conn, request feedRequest) error {
	size, sizeErr := provider.ParseImageSize(request.Size)
	if sizeErr != nil {
		return conn.WriteJSON(feedMessage{Error: sizeErr.Error()})
	}
	orientation, orientationErr := provider.ParseOrientation(request.Orientation)
	if orientationErr != nil {
		return conn.WriteJSON(feedMessage{Error: orientationErr.Error()})
	}

	modification := provider.ModNone
	if request.CacheBreaker {
		modification = provider.ModCacheBreaker
	}

	count := request.Count
	if count < 1 {
		count = 1
	}
	if count > maxGalleryPage {
		count = maxGalleryPage
	}

	for i := 0; i < count; i++ {
		uri, uriErr := h.provider.SampleURI(size, orientation, modification)
		if uriErr != nil {
			return conn.WriteJSON(feedMessage{Error: uriErr.Error()})
		}
		if writeErr := conn.WriteJSON(feedMessage{URI: uri}); writeErr != nil {
			return writeErr
		}
	}
	return nil
}
