package handlers

import (
	"net/http"
	"strconv"

	"trivia-api/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type WSHandler struct {
	hub *ws.Hub
}

func NewWSHandler(hub *ws.Hub) *WSHandler {
	return &WSHandler{hub: hub}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleQuestionEvents godoc
// @Summary      WebSocket stream of question events
// @Description  Receives question.created and question.deleted events. Without category
// @Description  (or with 0) events of every category are delivered.
// @Tags         websocket
// @Param        category query int false "Category ID"
// @Router       /ws/questions [get]
func (h *WSHandler) HandleQuestionEvents(c *gin.Context) {
	categoryID := ws.AllCategories
	if raw := c.Query("category"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			abortWithStatus(c, http.StatusBadRequest)
			return
		}
		categoryID = uint(id)
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.hub.Subscribe(categoryID, conn)
	defer h.hub.Unsubscribe(categoryID, conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
