package thread

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler interface {
	CreateThread(c *gin.Context)
	GetThreads(c *gin.Context)
	ReportThread(c *gin.Context)
	DeleteThread(c *gin.Context)
}

type handler struct {
	service Service
}

func NewHandler(service Service) Handler {
	return &handler{service: service}
}

// @Summary Create a thread
// @Description Create a new thread on a board and redirect to it
// @Tags Thread
// @Accept x-www-form-urlencoded
// @Param board path string true "Board name"
// @Success 302
// @Router /api/threads/{board} [post]
func (h *handler) CreateThread(c *gin.Context) {
	board := c.Param("board")

	var req CreateThreadRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusOK, string(MarkerError))
		return
	}

	t, err := h.service.CreateThread(c.Request.Context(), board, req.Text, req.DeletePassword)
	if err != nil {
		RespondMarker(c, err, MarkerSuccess)
		return
	}

	c.Redirect(http.StatusFound, "/b/"+t.Board+"/"+t.ID.String())
}

// @Summary List threads
// @Description List the board's most recently bumped threads with reply previews
// @Tags Thread
// @Produce json
// @Param board path string true "Board name"
// @Success 200 {array} ListItem
// @Router /api/threads/{board} [get]
func (h *handler) GetThreads(c *gin.Context) {
	board := c.Param("board")

	items, err := h.service.ListThreads(c.Request.Context(), board)
	if err != nil {
		c.String(http.StatusInternalServerError, string(MarkerError))
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Report a thread
// @Tags Thread
// @Accept x-www-form-urlencoded
// @Param board path string true "Board name"
// @Success 200 {string} string
// @Router /api/threads/{board} [put]
func (h *handler) ReportThread(c *gin.Context) {
	board := c.Param("board")

	var req ReportThreadRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusOK, string(MarkerError))
		return
	}
	id, err := uuid.Parse(req.ReportID)
	if err != nil {
		c.String(http.StatusOK, string(MarkerError))
		return
	}

	RespondMarker(c, h.service.ReportThread(c.Request.Context(), board, id), MarkerReported)
}

// @Summary Delete a thread
// @Description Delete a thread when the submitted delete password matches
// @Tags Thread
// @Accept x-www-form-urlencoded
// @Param board path string true "Board name"
// @Success 200 {string} string
// @Router /api/threads/{board} [delete]
func (h *handler) DeleteThread(c *gin.Context) {
	board := c.Param("board")

	var req DeleteThreadRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusOK, string(MarkerError))
		return
	}
	id, err := uuid.Parse(req.ThreadID)
	if err != nil {
		c.String(http.StatusOK, string(MarkerError))
		return
	}

	RespondMarker(c, h.service.DeleteThread(c.Request.Context(), board, id, req.DeletePassword), MarkerSuccess)
}

// RespondMarker translates the operation outcome into the protocol's fixed
// marker vocabulary. Not-found and validation failures collapse into the
// generic marker; only store failures surface as a 5xx.
func RespondMarker(c *gin.Context, err error, onSuccess Marker) {
	switch {
	case err == nil:
		c.String(http.StatusOK, string(onSuccess))
	case errors.Is(err, ErrWrongPassword):
		c.String(http.StatusOK, string(MarkerIncorrect))
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrValidation):
		c.String(http.StatusOK, string(MarkerError))
	default:
		c.String(http.StatusInternalServerError, string(MarkerError))
	}
}
