package httperr

import (
	"github.com/gin-gonic/gin"
)

// requestIDKey is the context key the request logging middleware fills.
const requestIDKey = "request_id"

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message   string `json:"message"`
		RequestID string `json:"requestId,omitempty"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// NewResponse builds the error envelope, tagged with the request id when one is set.
func NewResponse(c *gin.Context, status int, msg string, detail any) Response {
	resp := Response{Status: status, Detail: detail}
	resp.Error.Message = msg
	resp.Error.RequestID = c.GetString(requestIDKey)
	return resp
}

// AbortWithError writes the envelope and records err for the error middleware.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(c, status, msg, detail)
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Record attaches err to the request without writing a body. Handlers whose
// failure shape is fixed by a client contract use it before writing their own.
func Record(c *gin.Context, status int, err error) {
	if err == nil {
		return
	}
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePrivate,
		Meta: Response{Status: status},
	})
}
