package reply

import (
	"errors"
	"net/http"

	"anonboard/internal/app/thread"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler interface {
	CreateReply(c *gin.Context)
	GetThread(c *gin.Context)
	ReportReply(c *gin.Context)
	DeleteReply(c *gin.Context)
}

type handler struct {
	service Service
}

func NewHandler(service Service) Handler {
	return &handler{service: service}
}

// @Summary Create a reply
// @Description Append a reply to a thread and redirect to the thread
// @Tags Reply
// @Accept x-www-form-urlencoded
// @Param board path string true "Board name"
// @Success 302
// @Router /api/replies/{board} [post]
func (h *handler) CreateReply(c *gin.Context) {
	board := c.Param("board")

	var req CreateReplyRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusOK, string(thread.MarkerError))
		return
	}
	threadID, err := uuid.Parse(req.ThreadID)
	if err != nil {
		c.String(http.StatusOK, string(thread.MarkerError))
		return
	}

	if _, err := h.service.CreateReply(c.Request.Context(), board, threadID, req.Text, req.DeletePassword); err != nil {
		thread.RespondMarker(c, err, thread.MarkerSuccess)
		return
	}

	c.Redirect(http.StatusFound, "/b/"+board+"/"+req.ThreadID)
}

// @Summary Fetch a thread
// @Description Fetch one thread with all of its replies
// @Tags Reply
// @Produce json
// @Param board path string true "Board name"
// @Param thread_id query string true "Thread id"
// @Success 200 {object} thread.Detail
// @Router /api/replies/{board} [get]
func (h *handler) GetThread(c *gin.Context) {
	board := c.Param("board")

	threadID, err := uuid.Parse(c.Query("thread_id"))
	if err != nil {
		c.String(http.StatusOK, string(thread.MarkerFetchError))
		return
	}

	detail, err := h.service.FetchThread(c.Request.Context(), board, threadID)
	if errors.Is(err, thread.ErrNotFound) {
		c.String(http.StatusOK, string(thread.MarkerFetchError))
		return
	}
	if err != nil {
		c.String(http.StatusInternalServerError, string(thread.MarkerFetchError))
		return
	}
	c.JSON(http.StatusOK, detail)
}

// @Summary Report a reply
// @Tags Reply
// @Accept x-www-form-urlencoded
// @Param board path string true "Board name"
// @Success 200 {string} string
// @Router /api/replies/{board} [put]
func (h *handler) ReportReply(c *gin.Context) {
	board := c.Param("board")

	var req ReportReplyRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusOK, string(thread.MarkerError))
		return
	}
	threadID, err := uuid.Parse(req.ThreadID)
	if err != nil {
		c.String(http.StatusOK, string(thread.MarkerError))
		return
	}
	replyID, err := uuid.Parse(req.ReplyID)
	if err != nil {
		c.String(http.StatusOK, string(thread.MarkerError))
		return
	}

	thread.RespondMarker(c, h.service.ReportReply(c.Request.Context(), board, threadID, replyID), thread.MarkerReported)
}

// @Summary Delete a reply
// @Description Remove a reply from its thread when the delete password matches
// @Tags Reply
// @Accept x-www-form-urlencoded
// @Param board path string true "Board name"
// @Success 200 {string} string
// @Router /api/replies/{board} [delete]
func (h *handler) DeleteReply(c *gin.Context) {
	board := c.Param("board")

	var req DeleteReplyRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusOK, string(thread.MarkerError))
		return
	}
	threadID, err := uuid.Parse(req.ThreadID)
	if err != nil {
		c.String(http.StatusOK, string(thread.MarkerError))
		return
	}
	replyID, err := uuid.Parse(req.ReplyID)
	if err != nil {
		c.String(http.StatusOK, string(thread.MarkerError))
		return
	}

	thread.RespondMarker(c, h.service.DeleteReply(c.Request.Context(), board, threadID, replyID, req.DeletePassword), thread.MarkerSuccess)
}
