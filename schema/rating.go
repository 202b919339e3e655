package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RatingCollection = "ratings"
)

const (
	RatingMin = 1
	RatingMax = 5

	RatingFeedbackMinLength = 10
	RatingFeedbackMaxLength = 500
)

// Rating - a standalone reputation record tied to one completed request.
// At most one rating exists per (rater, request) pair; the rated user is
// always the counterparty of the rater on the referenced request.
type Rating struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Rater     string             `bson:"rater" json:"rater"`
	RatedUser string             `bson:"rated_user" json:"rated_user"`
	Request   primitive.ObjectID `bson:"request" json:"request"`
	Rating    int                `bson:"rating" json:"rating"`
	Feedback  string             `bson:"feedback" json:"feedback"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
