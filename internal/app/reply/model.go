package reply

type CreateReplyRequest struct {
	ThreadID       string `form:"thread_id" json:"thread_id" binding:"required"`
	Text           string `form:"text" json:"text" binding:"required"`
	DeletePassword string `form:"delete_password" json:"delete_password" binding:"required"`
}

type ReportReplyRequest struct {
	ThreadID string `form:"thread_id" json:"thread_id" binding:"required"`
	ReplyID  string `form:"reply_id" json:"reply_id" binding:"required"`
}

type DeleteReplyRequest struct {
	ThreadID       string `form:"thread_id" json:"thread_id" binding:"required"`
	ReplyID        string `form:"reply_id" json:"reply_id" binding:"required"`
	DeletePassword string `form:"delete_password" json:"delete_password" binding:"required"`
}
