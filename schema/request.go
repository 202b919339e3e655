package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RequestCollection = "requests"
)

// Request statuses. A request moves from pending to exactly one of
// accepted, rejected or cancelled; an accepted request may later be
// completed. All other statuses are terminal.
const (
	RequestStatusPending   = "pending"
	RequestStatusAccepted  = "accepted"
	RequestStatusRejected  = "rejected"
	RequestStatusCancelled = "cancelled"
	RequestStatusCompleted = "completed"
)

const (
	RequestMessageMinLength  = 10
	RequestMessageMaxLength  = 500
	RequestDurationMaxLength = 100
	RequestScheduleMaxLength = 200
)

// SkillRef names one side of a proposed exchange
type SkillRef struct {
	Name string `bson:"name" json:"name"`
}

// Request - a proposal from one user to another to exchange skills
type Request struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Requester        string             `bson:"requester" json:"requester"`
	Recipient        string             `bson:"recipient" json:"recipient"`
	SkillOffered     SkillRef           `bson:"skill_offered" json:"skill_offered"`
	SkillRequested   SkillRef           `bson:"skill_requested" json:"skill_requested"`
	Message          string             `bson:"message" json:"message"`
	ProposedDuration string             `bson:"proposed_duration" json:"proposed_duration"`
	ProposedSchedule string             `bson:"proposed_schedule" json:"proposed_schedule"`
	Status           string             `bson:"status" json:"status"`
	CreatedAt        time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time          `bson:"updated_at" json:"updated_at"`
	CompletedAt      *time.Time         `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
}

// IsParty reports whether the given account is one of the two parties
// of the request.
func (r Request) IsParty(accountNumber string) bool {
	return r.Requester == accountNumber || r.Recipient == accountNumber
}

// OtherParty returns the counterparty of the given account. It returns
// an empty string if the account is not a party of the request.
func (r Request) OtherParty(accountNumber string) string {
	switch accountNumber {
	case r.Requester:
		return r.Recipient
	case r.Recipient:
		return r.Requester
	}
	return ""
}
