package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/tutor-classes-api/pkg/errors"
)

// Envelope is the error contract of the operational endpoints.
type Envelope struct {
	Error *appErrors.Error `json:"error,omitempty"`
}

// MessageBody is the error body of the public classes routes.
type MessageBody struct {
	Error string `json:"error"`
}

// Raw sends data as the whole body, without the envelope.
func Raw(c *gin.Context, status int, data interface{}) {
	noStore(c)
	c.JSON(status, data)
}

// Created responds with HTTP 201 Created and no body.
func Created(c *gin.Context) {
	c.Status(http.StatusCreated)
	c.Writer.WriteHeaderNow()
}

// Error sends an error response converting the error to the common structure.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	noStore(c)
	c.JSON(appErr.Status, Envelope{Error: appErr})
}

// Message sends {"error": "<message>"} using the status of err. Code and cause stay server side.
func Message(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	noStore(c)
	c.JSON(appErr.Status, MessageBody{Error: appErr.Message})
}

func noStore(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
}
