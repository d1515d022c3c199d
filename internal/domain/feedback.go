package domain

import "time"

type FeedbackType string

const (
	FeedbackFeature  FeedbackType = "feature"
	FeedbackBug      FeedbackType = "bug"
	FeedbackFeedback FeedbackType = "feedback"
)

func (t FeedbackType) Valid() bool {
	switch t {
	case FeedbackFeature, FeedbackBug, FeedbackFeedback:
		return true
	}
	return false
}

type FeedbackStatus string

const (
	FeedbackPending    FeedbackStatus = "pending"
	FeedbackApproved   FeedbackStatus = "approved"
	FeedbackRejected   FeedbackStatus = "rejected"
	FeedbackInProgress FeedbackStatus = "in_progress"
	FeedbackCompleted  FeedbackStatus = "completed"
)

func (s FeedbackStatus) Valid() bool {
	switch s {
	case FeedbackPending, FeedbackApproved, FeedbackRejected, FeedbackInProgress, FeedbackCompleted:
		return true
	}
	return false
}

type VoteType string

const (
	VoteUp   VoteType = "upvote"
	VoteDown VoteType = "downvote"
)

func (v VoteType) Valid() bool {
	return v == VoteUp || v == VoteDown
}

type Feedback struct {
	ID          int64
	AuthorID    int64
	Type        FeedbackType
	Title       string
	Description string
	Status      FeedbackStatus
	IsApproved  bool
	Upvotes     int
	Downvotes   int
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

func (f *Feedback) Score() int {
	return f.Upvotes - f.Downvotes
}
