package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"dispatch/internal/core/domain/model/event"

	"github.com/labstack/echo/v4"
)

const (
	sseHeartbeat = "heartbeat"
	sseReconnect = "reconnect"
	// sseRetry is the reconnection delay suggested to EventSource clients.
	sseRetry = 1000 * time.Millisecond
)

// sseSink writes stream units in text/event-stream format:
//
//	id: 42
//	event: courier_location
//	data: {"id":42,"channel":"tracking_7",...}
type sseSink struct {
	res *echo.Response
}

// openSSE commits the response headers and returns a sink on it.
func openSSE(c echo.Context) (*sseSink, error) {
	res := c.Response()
	h := res.Header()
	h.Set(echo.HeaderContentType, "text/event-stream")
	h.Set(echo.HeaderCacheControl, "no-cache")
	h.Set(echo.HeaderConnection, "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	res.WriteHeader(http.StatusOK)

	s := &sseSink{res: res}
	if _, err := fmt.Fprintf(res, "retry: %d\n\n", sseRetry.Milliseconds()); err != nil {
		return nil, err
	}
	res.Flush()
	return s, nil
}

func (s *sseSink) Event(e event.Event) error {
	data, err := json.Marshal(toEvent(e))
	if err != nil {
		return err
	}
	return s.write(fmt.Sprintf("id: %d\nevent: %s\ndata: %s\n\n", e.ID, e.Type, data))
}

func (s *sseSink) Heartbeat() error {
	return s.write(fmt.Sprintf("event: %s\ndata: {\"time\":%q}\n\n", sseHeartbeat, time.Now().UTC().Format(time.RFC3339)))
}

func (s *sseSink) Reconnect(cursor int64) error {
	return s.write(fmt.Sprintf("event: %s\ndata: {\"last_id\":%d}\n\n", sseReconnect, cursor))
}

func (s *sseSink) write(unit string) error {
	if _, err := s.res.Write([]byte(unit)); err != nil {
		return err
	}
	s.res.Flush()
	return nil
}
