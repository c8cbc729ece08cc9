package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/aescanero/legalgw/pkg/domain"
	"github.com/gin-gonic/gin"
)

// ChatRequest represents a chat query request
type ChatRequest struct {
	Query string `json:"query"`
}

// handleIndex serves the embedded chat widget page
func (s *Server) handleIndex(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexPage)
}

// handleHealth handles health check requests
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
	})
}

// handleChat handles query dispatch requests
func (s *Server) handleChat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// An unparsable body carries no query; same envelope as a
		// blank one.
		c.JSON(http.StatusBadRequest, domain.AnswerEnvelope{Answer: "Empty query."})
		return
	}

	// Backend calls are not tied to the client connection: once
	// dispatched, a call runs to completion, timeout, or error even if
	// the caller goes away.
	answer, err := s.dispatcher.Dispatch(context.Background(), req.Query)
	if err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, domain.AnswerEnvelope{Answer: validationErr.Message})
			return
		}

		// AuthError, BackendError and anything unexpected all surface
		// as the same 500 envelope; the caller never sees a stack
		// trace.
		c.JSON(http.StatusInternalServerError, domain.AnswerEnvelope{Answer: "Error: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, answer.Envelope())
}
