package controllers

import (
	"net/http"
	"time"

	"caltrack/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type RealtimeController struct {
	Hub     *services.RealtimeHub
	Summary *services.SummaryService
}

func NewRealtimeController(hub *services.RealtimeHub, summary *services.SummaryService) *RealtimeController {
	return &RealtimeController{Hub: hub, Summary: summary}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // tighten behind a proxy if needed
}

// GET /ws/dashboard — streams the daily summary: once on connect, then after
// every entry the user adds.
func (rc *RealtimeController) DashboardWS(c *gin.Context) {
	userID := c.GetUint("userID")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	cl := &services.WSClient{UserID: userID, Conn: conn}
	rc.Hub.Register(cl)

	if sum, err := rc.Summary.Daily(userID, time.Now()); err == nil {
		rc.Hub.Broadcast(userID, summaryPayload(sum))
	}

	// keep intermediaries from idling the connection out
	go func() {
		t := time.NewTicker(25 * time.Second)
		defer t.Stop()
		for range t.C {
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				rc.Hub.Unregister(cl)
				return
			}
		}
	}()

	// read loop ends on client close/error → unregister
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			rc.Hub.Unregister(cl)
			return
		}
	}
}
