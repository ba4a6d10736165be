package thread

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Reply lives inside its parent thread's replies column. It has no table and
// no lifecycle of its own.
type Reply struct {
	ID                 uuid.UUID `json:"_id"`
	Text               string    `json:"text"`
	DeletePasswordHash string    `json:"delete_password"`
	Reported           bool      `json:"reported"`
	CreatedOn          time.Time `json:"created_on"`
	BumpedOn           time.Time `json:"bumped_on"`
}

type Thread struct {
	ID                 uuid.UUID                  `gorm:"type:uuid;primaryKey"`
	Board              string                     `gorm:"size:64;not null;index:idx_threads_board_bumped,priority:1"`
	Text               string                     `gorm:"type:text;not null"`
	DeletePasswordHash string                     `gorm:"column:delete_password;not null"`
	Replies            datatypes.JSONSlice[Reply] `gorm:"type:jsonb;not null;default:'[]'"`
	Reported           bool                       `gorm:"not null;default:false"`
	CreatedOn          time.Time                  `gorm:"not null"`
	BumpedOn           time.Time                  `gorm:"not null;index:idx_threads_board_bumped,priority:2,sort:desc"`
}

// ReplyPreview is the only reply shape ever serialized to clients: no
// password hash, no reported flag.
type ReplyPreview struct {
	ID        uuid.UUID `json:"_id"`
	Text      string    `json:"text"`
	CreatedOn time.Time `json:"created_on"`
}

// ListItem is one entry of a board listing, reply previews truncated to the
// newest few.
type ListItem struct {
	ID        uuid.UUID      `json:"_id"`
	Text      string         `json:"text"`
	CreatedOn time.Time      `json:"created_on"`
	BumpedOn  time.Time      `json:"bumped_on"`
	Replies   []ReplyPreview `json:"replies"`
}

// Detail is the single-thread view carrying every reply.
type Detail struct {
	ID        uuid.UUID      `json:"_id"`
	Text      string         `json:"text"`
	CreatedOn time.Time      `json:"created_on"`
	BumpedOn  time.Time      `json:"bumped_on"`
	Replies   []ReplyPreview `json:"replies"`
}

type CreateThreadRequest struct {
	Text           string `form:"text" json:"text" binding:"required"`
	DeletePassword string `form:"delete_password" json:"delete_password" binding:"required"`
}

type ReportThreadRequest struct {
	ReportID string `form:"report_id" json:"report_id" binding:"required"`
}

type DeleteThreadRequest struct {
	ThreadID       string `form:"thread_id" json:"thread_id" binding:"required"`
	DeletePassword string `form:"delete_password" json:"delete_password" binding:"required"`
}
