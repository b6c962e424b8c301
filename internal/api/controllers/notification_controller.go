package controllers

import (
	"io"

	"github.com/gin-gonic/gin"

	"worknest/internal/services"
)

type NotificationController struct {
	hub *services.NotificationHub
}

func NewNotificationController(hub *services.NotificationHub) *NotificationController {
	return &NotificationController{
		hub: hub,
	}
}

// Stream godoc
// @Summary Server-sent event stream of notifications
// @Description Holds the connection open and pushes events addressed to the caller
// @Tags Notifications
// @Produce text/event-stream
// @Router /user/notifications/stream [get]
func (n *NotificationController) Stream(c *gin.Context) {
	events, cancel := n.hub.Subscribe(c.GetString("user_id"))
	defer cancel()

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case event, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent(event.Type, event.Payload)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
