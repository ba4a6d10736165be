package board

import "time"

// Board is a string tag on threads, not an entity of its own; a summary is
// derived from the threads that carry the tag.
type Summary struct {
	Board    string    `json:"board"`
	Threads  int64     `json:"threads"`
	BumpedOn time.Time `json:"bumped_on"`
}

type ListResponse struct {
	Boards []*Summary `json:"boards"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
