package httpresp

import "github.com/gin-gonic/gin"

// Envelope matches the {success, data} shape the web client parses.
type Envelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

func OK(c *gin.Context, data any) {
	c.JSON(200, Envelope{Success: true, Data: data})
}

func Created(c *gin.Context, data any) {
	c.JSON(201, Envelope{Success: true, Data: data})
}

func Message(c *gin.Context, message string) {
	c.JSON(200, gin.H{
		"success": true,
		"message": message,
	})
}
