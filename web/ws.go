package web

import (
	"RooftopSolar/logger"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type wsReply struct {
	Data  *AnalyzeResult `json:"data,omitempty"`
	Error string         `json:"error,omitempty"`
}

// serveWS streams analyses on one engine: each text frame is a base64 image
// (or an AnalyzeParam object) and each reply is one JSON result.
func (s *Server) serveWS(c *gin.Context) {
	id := c.Param("id")
	e, err := s.Registry.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Engine not found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()
	conn.SetReadLimit(s.imageLimit() * 4 / 3)

	ctx := c.Request.Context()
	for {
		if s.IdleTimeout > 0 {
			_ = conn.SetReadDeadline(time.Now().Add(s.IdleTimeout))
		}
		mt, msg, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Log().Info("websocket closed", zap.String("engine", id), zap.Error(err))
			}
			return
		}
		if mt != websocket.TextMessage {
			_ = conn.WriteJSON(wsReply{Error: "unsupported message type"})
			continue
		}

		var param AnalyzeParam
		if len(msg) > 0 && msg[0] == '{' {
			if err := json.Unmarshal(msg, &param); err != nil {
				_ = conn.WriteJSON(wsReply{Error: "invalid request: " + err.Error()})
				continue
			}
		} else {
			param.Image = string(msg)
		}
		data, err := DecodeBase64Image(param.Image)
		if err == nil {
			err = s.checkSize(int64(len(data)))
		}
		if err != nil {
			_ = conn.WriteJSON(wsReply{Error: err.Error()})
			continue
		}
		result, err := s.submit(ctx, e, data, param)
		if err != nil {
			_ = conn.WriteJSON(wsReply{Error: err.Error()})
			continue
		}
		if err := conn.WriteJSON(wsReply{Data: result}); err != nil {
			return
		}
	}
}
