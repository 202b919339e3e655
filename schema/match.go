package schema

import (
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	MatchCollection = "matches"
)

// Match statuses. A match starts active; active and paused matches may
// be cancelled; only an active match may be completed. Completed and
// cancelled are terminal.
const (
	MatchStatusActive    = "active"
	MatchStatusCompleted = "completed"
	MatchStatusCancelled = "cancelled"
	MatchStatusPaused    = "paused"
)

const (
	SessionTopicMaxLength = 200
	SessionNotesMaxLength = 1000
	SessionDefaultMinutes = 60

	ParticipantFeedbackMaxLength = 1000
)

// Session - a single scheduled meeting within a match
type Session struct {
	ID        string    `bson:"id" json:"id"`
	Date      time.Time `bson:"date" json:"date"`
	Topic     string    `bson:"topic" json:"topic"`
	Completed bool      `bson:"completed" json:"completed"`
	Notes     string    `bson:"notes" json:"notes"`
	Duration  int       `bson:"duration" json:"duration"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// Participant - one side of a match, carrying its own skill pair and
// one-time rating/feedback
type Participant struct {
	User           string   `bson:"user" json:"user"`
	SkillOffered   SkillRef `bson:"skill_offered" json:"skill_offered"`
	SkillRequested SkillRef `bson:"skill_requested" json:"skill_requested"`
	Rating         *int     `bson:"rating,omitempty" json:"rating,omitempty"`
	Feedback       *string  `bson:"feedback,omitempty" json:"feedback,omitempty"`
}

// Match - the realized, ongoing exchange created once a request is accepted
type Match struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OriginalRequest primitive.ObjectID `bson:"original_request" json:"original_request"`
	Participants    []Participant      `bson:"participants" json:"participants"`
	Status          string             `bson:"status" json:"status"`
	Duration        string             `bson:"duration" json:"duration"`
	Schedule        string             `bson:"schedule" json:"schedule"`
	Progress        int                `bson:"progress" json:"progress"`
	StartDate       time.Time          `bson:"start_date" json:"start_date"`
	EndDate         time.Time          `bson:"end_date" json:"end_date"`
	Sessions        []Session          `bson:"sessions" json:"sessions"`
	LastActivity    time.Time          `bson:"last_activity" json:"last_activity"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at" json:"updated_at"`
	CompletedAt     *time.Time         `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
}

// IsParticipant reports whether the given account takes part in the match.
func (m Match) IsParticipant(accountNumber string) bool {
	for _, p := range m.Participants {
		if p.User == accountNumber {
			return true
		}
	}
	return false
}

// ParticipantFor returns the participant entry of the given account,
// or nil if the account is not a participant.
func (m Match) ParticipantFor(accountNumber string) *Participant {
	for i := range m.Participants {
		if m.Participants[i].User == accountNumber {
			return &m.Participants[i]
		}
	}
	return nil
}

// OtherParticipant returns the counterparty entry of the given account,
// or nil if the account is not a participant.
func (m Match) OtherParticipant(accountNumber string) *Participant {
	if !m.IsParticipant(accountNumber) {
		return nil
	}
	for i := range m.Participants {
		if m.Participants[i].User != accountNumber {
			return &m.Participants[i]
		}
	}
	return nil
}

// Session returns the embedded session with the given id, or nil.
func (m Match) Session(sessionID string) *Session {
	for i := range m.Sessions {
		if m.Sessions[i].ID == sessionID {
			return &m.Sessions[i]
		}
	}
	return nil
}

// CanBeCancelled reports whether the match status allows cancellation.
func (m Match) CanBeCancelled() bool {
	return m.Status == MatchStatusActive || m.Status == MatchStatusPaused
}

// CalculateProgress derives the match progress from its sessions using
// round-half-up, so 1 of 3 completed sessions yields 33 and 2 of 3
// yields 67. A match without sessions has progress 0.
func (m Match) CalculateProgress() int {
	if len(m.Sessions) == 0 {
		return 0
	}

	completed := 0
	for _, s := range m.Sessions {
		if s.Completed {
			completed++
		}
	}

	return int(math.Round(100 * float64(completed) / float64(len(m.Sessions))))
}
