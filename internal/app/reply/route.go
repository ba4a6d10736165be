package reply

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, handler Handler) {
	replies := rg.Group("/replies")
	{
		replies.POST("/:board", handler.CreateReply)
		replies.GET("/:board", handler.GetThread)
		replies.PUT("/:board", handler.ReportReply)
		replies.DELETE("/:board", handler.DeleteReply)
	}
}
