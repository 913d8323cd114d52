package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/pindranil/waste-wise-report/config"
	"github.com/pindranil/waste-wise-report/internal/auth"
	"github.com/pindranil/waste-wise-report/internal/domain"
	"github.com/pindranil/waste-wise-report/internal/service"
	"github.com/pindranil/waste-wise-report/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	chatWriteWait  = 10 * time.Second
	chatPongWait   = 60 * time.Second
	chatPingPeriod = (chatPongWait * 9) / 10
)

var chatUpgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// UpgradeChatWS upgrades to WebSocket for the per-alert chat thread.
// Query: token, alert_id. The alert owner and any admin may join. Inbound
// messages persist through the messaging service so the notification
// fan-out and the HTTP thread stay consistent, then broadcast to the room.
func UpgradeChatWS(cfg *config.JWTConfig, hub *ws.ChatHub, alertSvc *service.AlertService, msgSvc *service.MessageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")
		alertID := c.Query("alert_id")
		if token == "" || alertID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "token and alert_id required"})
			return
		}
		claims, err := auth.ParseToken(cfg, token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		a, err := alertSvc.Get(alertID)
		if err != nil {
			writeError(c, err)
			return
		}
		if claims.Role != domain.RoleAdmin && claims.UserID != a.UserID {
			c.JSON(http.StatusForbidden, gin.H{"error": "not part of this alert"})
			return
		}
		conn, err := chatUpgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		client := &ws.Client{
			UserID: claims.UserID,
			Role:   claims.Role,
			Send:   make(chan []byte, 256),
		}
		room := hub.GetOrCreateRoom(alertID)
		room.Join(client)
		defer client.Close()

		conn.SetReadDeadline(time.Now().Add(chatPongWait))
		conn.SetPongHandler(func(string) error {
			conn.SetReadDeadline(time.Now().Add(chatPongWait))
			return nil
		})
		go func() {
			ticker := time.NewTicker(chatPingPeriod)
			defer ticker.Stop()
			for {
				select {
				case msg, ok := <-client.Send:
					if !ok {
						return
					}
					conn.SetWriteDeadline(time.Now().Add(chatWriteWait))
					if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
						return
					}
				case <-ticker.C:
					conn.SetWriteDeadline(time.Now().Add(chatWriteWait))
					if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
						return
					}
				}
			}
		}()
		for {
			_, raw, err := conn.ReadMessage()
			if err != nil {
				break
			}
			var msg struct {
				Type    string `json:"type"`
				Content string `json:"content"`
			}
			if json.Unmarshal(raw, &msg) != nil || msg.Type != "message" {
				continue
			}
			m, err := msgSvc.Send(c.Request.Context(), alertID, claims.UserID, claims.Role, msg.Content)
			if err != nil {
				continue
			}
			room.Broadcast(client, map[string]interface{}{
				"type":        "message",
				"id":          m.ID,
				"sender_id":   m.SenderID,
				"sender_role": m.SenderRole,
				"content":     m.Content,
				"created_at":  m.CreatedAt,
			})
		}
	}
}
