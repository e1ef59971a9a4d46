package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"quickbite-pos/helpers"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var clockClients = make(map[*websocket.Conn]bool)
var clockMu sync.Mutex

type clockMessage struct {
	Event   string `json:"event"`
	Payload string `json:"payload"`
}

// HandleClockSocket registers a display client for the 1-second wall-clock
// feed. The feed is display-only; it never touches cart or history state.
func HandleClockSocket() gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Println("error during connection upgrade:", err)
			return
		}
		defer conn.Close()

		clockMu.Lock()
		clockClients[conn] = true
		clockMu.Unlock()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				clockMu.Lock()
				delete(clockClients, conn)
				clockMu.Unlock()
				break
			}
		}
	}
}

// StartClockBroadcast ticks once per second and pushes the formatted wall
// time to every connected display.
func StartClockBroadcast() {
	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for t := range ticker.C {
			broadcastClock(t)
		}
	}()
}

func broadcastClock(t time.Time) {
	message, err := json.Marshal(clockMessage{
		Event:   "clock",
		Payload: t.In(helpers.Location()).Format("15:04:05"),
	})
	if err != nil {
		log.Println("error marshaling clock message:", err)
		return
	}

	clockMu.Lock()
	defer clockMu.Unlock()
	for client := range clockClients {
		if err := client.WriteMessage(websocket.TextMessage, message); err != nil {
			client.Close()
			delete(clockClients, client)
		}
	}
}
