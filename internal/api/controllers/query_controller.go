package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"wayfarer/internal/models/request_models"
	"wayfarer/internal/models/response_models"
	"wayfarer/pkg/llm"
	"wayfarer/pkg/utils"
)

// ClientBuilder constructs a fresh LLM handle per request; handles are never
// cached across calls.
type ClientBuilder func() (*llm.Client, error)

// QueryController hosts the question-answering endpoint. Its wire contract
// is fixed: 200 with {"answer": ...} on success, plain error text otherwise,
// so it deliberately bypasses the standard API envelope.
type QueryController struct {
	buildClient ClientBuilder
}

func NewQueryController(buildClient ClientBuilder) *QueryController {
	return &QueryController{buildClient: buildClient}
}

func (q *QueryController) QueryHandler(c *gin.Context) {
	var req request_models.QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Question) == "" {
		c.String(http.StatusBadRequest, "question is required")
		return
	}

	client, err := q.buildClient()
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrUnsupportedProvider):
			c.String(http.StatusBadRequest, err.Error())
		default:
			// Missing key or missing model name: configuration errors are
			// fatal for the request, never silently defaulted.
			c.String(http.StatusInternalServerError, err.Error())
		}
		return
	}

	answer, err := client.Complete(c.Request.Context(), req.Question)
	if err != nil {
		c.String(http.StatusBadGateway, err.Error())
		return
	}

	c.JSON(http.StatusOK, response_models.QueryResponse{Answer: answer})
}
