package board

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	GetAllBoards(c *gin.Context)
	GetBoard(c *gin.Context)
}

type handler struct {
	service Service
}

func NewHandler(service Service) Handler {
	return &handler{service: service}
}

// @Summary List boards
// @Description List every board that currently has threads
// @Tags Board
// @Produce json
// @Success 200 {object} ListResponse
// @Router /api/boards [get]
func (h *handler) GetAllBoards(c *gin.Context) {
	boards, err := h.service.GetAllBoards(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to fetch boards"})
		return
	}
	c.JSON(http.StatusOK, ListResponse{Boards: boards})
}

// @Summary Get board activity
// @Description Get thread count and latest activity for one board
// @Tags Board
// @Produce json
// @Param board path string true "Board name"
// @Success 200 {object} Summary
// @Failure 404 {object} ErrorResponse
// @Router /api/boards/{board} [get]
func (h *handler) GetBoard(c *gin.Context) {
	summary, err := h.service.GetBoard(c.Request.Context(), c.Param("board"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to fetch board"})
		return
	}
	if summary == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "board not found"})
		return
	}
	c.JSON(http.StatusOK, summary)
}
