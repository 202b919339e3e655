package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/skillswap/skillswap-api/schema"
)

// defaultEngagementDays is used to derive a match end date from its
// start date when a request proposes no explicit end.
const defaultEngagementDays = 30

// SessionParams carries the caller-supplied fields of a new session.
type SessionParams struct {
	Date     time.Time
	Topic    string
	Notes    string
	Duration int
}

// MatchEngine owns the durable record of an ongoing exchange: session
// tracking, progress, completion and cancellation.
type MatchEngine interface {
	CreateMatchFromRequest(request *schema.Request) (*schema.Match, error)
	GetMatch(actor string, id primitive.ObjectID) (*schema.Match, error)
	ListMatches(actor, status string) ([]schema.Match, error)
	CountActiveMatches(actor string) (int64, error)

	AddSession(actor string, matchID primitive.ObjectID, params SessionParams) (*schema.Match, error)
	CompleteSession(actor string, matchID primitive.ObjectID, sessionID string) (*schema.Match, error)

	MarkMatchComplete(actor string, id primitive.ObjectID) (*schema.Match, error)
	CancelMatch(actor string, id primitive.ObjectID) (*schema.Match, error)
	PauseMatch(actor string, id primitive.ObjectID) (*schema.Match, error)
	ResumeMatch(actor string, id primitive.ObjectID) (*schema.Match, error)

	SetParticipantFeedback(actor string, matchID primitive.ObjectID, rating int, feedback string) (*schema.Match, error)
}

// CreateMatchFromRequest constructs the single match realizing an
// accepted request. Both skill pairs are mirrored across the two
// participants; the unique index on original_request guarantees at most
// one match per request.
func (m *mongoDB) CreateMatchFromRequest(request *schema.Request) (*schema.Match, error) {
	if request.Status != schema.RequestStatusAccepted {
		return nil, &InvalidTransitionError{Entity: "request", Current: request.Status, Attempted: "matched"}
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	match := schema.Match{
		OriginalRequest: request.ID,
		Participants: []schema.Participant{
			{
				User:           request.Requester,
				SkillOffered:   request.SkillOffered,
				SkillRequested: request.SkillRequested,
			},
			{
				User:           request.Recipient,
				SkillOffered:   request.SkillRequested,
				SkillRequested: request.SkillOffered,
			},
		},
		Status:       schema.MatchStatusActive,
		Duration:     request.ProposedDuration,
		Schedule:     request.ProposedSchedule,
		Progress:     0,
		StartDate:    now,
		EndDate:      now.AddDate(0, 0, defaultEngagementDays),
		Sessions:     []schema.Session{},
		LastActivity: now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	c := m.client.Database(m.database).Collection(schema.MatchCollection)
	result, err := c.InsertOne(ctx, match)
	if err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrMatchExists
		}
		return nil, err
	}
	match.ID = result.InsertedID.(primitive.ObjectID)

	m.publish(schema.Event{
		Name:      schema.EventMatchCreated,
		Actor:     request.Recipient,
		Subject:   request.Requester,
		RequestID: request.ID.Hex(),
		MatchID:   match.ID.Hex(),
		Timestamp: now,
	})

	return &match, nil
}

func (m *mongoDB) findMatch(ctx context.Context, id primitive.ObjectID) (*schema.Match, error) {
	c := m.client.Database(m.database).Collection(schema.MatchCollection)

	var match schema.Match
	if err := c.FindOne(ctx, bson.M{"_id": id}).Decode(&match); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	return &match, nil
}

// GetMatch returns a match visible only to its participants.
func (m *mongoDB) GetMatch(actor string, id primitive.ObjectID) (*schema.Match, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	match, err := m.findMatch(ctx, id)
	if err != nil {
		return nil, err
	}
	if !match.IsParticipant(actor) {
		return nil, ErrForbidden
	}
	return match, nil
}

// ListMatches returns the actor's matches sorted by last activity,
// optionally filtered by status.
func (m *mongoDB) ListMatches(actor, status string) ([]schema.Match, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	query := bson.M{"participants.user": actor}
	if status != "" && status != "all" {
		query["status"] = status
	}

	c := m.client.Database(m.database).Collection(schema.MatchCollection)
	cursor, err := c.Find(ctx, query, options.Find().SetSort(bson.M{"last_activity": -1}))
	if err != nil {
		return nil, err
	}

	matches := make([]schema.Match, 0)
	if err := cursor.All(ctx, &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

// CountActiveMatches counts the actor's currently active matches.
func (m *mongoDB) CountActiveMatches(actor string) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.MatchCollection)
	return c.CountDocuments(ctx, bson.M{
		"participants.user": actor,
		"status":            schema.MatchStatusActive,
	})
}

// progressDerivation recomputes progress from the sessions array inside
// the update itself, so a writer racing another session update can never
// persist a progress value computed over a stale session list. The
// floor(x+0.5) form keeps the rounding half-up.
var progressDerivation = bson.M{"$cond": bson.A{
	bson.M{"$eq": bson.A{bson.M{"$size": "$sessions"}, 0}},
	0,
	bson.M{"$floor": bson.M{"$add": bson.A{
		bson.M{"$multiply": bson.A{100, bson.M{"$divide": bson.A{
			bson.M{"$size": bson.M{"$filter": bson.M{
				"input": "$sessions",
				"as":    "s",
				"cond":  "$$s.completed",
			}}},
			bson.M{"$size": "$sessions"},
		}}}},
		0.5,
	}}},
}}

func (m *mongoDB) activeMatchForParticipant(ctx context.Context, actor string, id primitive.ObjectID, attempted string) (*schema.Match, error) {
	match, err := m.findMatch(ctx, id)
	if err != nil {
		return nil, err
	}
	if !match.IsParticipant(actor) {
		return nil, ErrForbidden
	}
	if match.Status != schema.MatchStatusActive {
		return nil, &InvalidTransitionError{Entity: "match", Current: match.Status, Attempted: attempted}
	}
	return match, nil
}

// AddSession appends a not-yet-completed session to an active match.
// The completed-session count is unchanged, so progress can only shrink
// or stay at zero here.
func (m *mongoDB) AddSession(actor string, matchID primitive.ObjectID, params SessionParams) (*schema.Match, error) {
	if params.Topic == "" || len(params.Topic) > schema.SessionTopicMaxLength {
		return nil, &ValidationError{Field: "topic", Reason: "required, at most 200 characters"}
	}
	if len(params.Notes) > schema.SessionNotesMaxLength {
		return nil, &ValidationError{Field: "notes", Reason: "at most 1000 characters"}
	}
	if params.Date.IsZero() {
		return nil, &ValidationError{Field: "date", Reason: "required"}
	}
	if params.Duration < 0 {
		return nil, &ValidationError{Field: "duration", Reason: "must not be negative"}
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if _, err := m.activeMatchForParticipant(ctx, actor, matchID, "session added"); err != nil {
		return nil, err
	}

	duration := params.Duration
	if duration == 0 {
		duration = schema.SessionDefaultMinutes
	}

	now := time.Now().UTC()
	session := schema.Session{
		ID:        uuid.New().String(),
		Date:      params.Date,
		Topic:     params.Topic,
		Completed: false,
		Notes:     params.Notes,
		Duration:  duration,
		CreatedAt: now,
	}

	c := m.client.Database(m.database).Collection(schema.MatchCollection)
	result, err := c.UpdateOne(ctx,
		bson.M{"_id": matchID, "status": schema.MatchStatusActive},
		bson.A{
			bson.M{"$set": bson.M{
				"sessions": bson.M{"$concatArrays": bson.A{
					"$sessions",
					bson.M{"$literal": bson.A{session}},
				}},
				"last_activity": now,
				"updated_at":    now,
			}},
			bson.M{"$set": bson.M{"progress": progressDerivation}},
		},
	)
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, ErrConflictRace
	}

	return m.findMatch(ctx, matchID)
}

// CompleteSession flips one session's completed flag and rederives
// progress. A session is completed at most once.
func (m *mongoDB) CompleteSession(actor string, matchID primitive.ObjectID, sessionID string) (*schema.Match, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	match, err := m.activeMatchForParticipant(ctx, actor, matchID, "session completed")
	if err != nil {
		return nil, err
	}

	session := match.Session(sessionID)
	if session == nil {
		return nil, ErrSessionNotFound
	}
	if session.Completed {
		return nil, &InvalidTransitionError{Entity: "session", Current: "completed", Attempted: "completed"}
	}

	now := time.Now().UTC()
	c := m.client.Database(m.database).Collection(schema.MatchCollection)
	result, err := c.UpdateOne(ctx,
		bson.M{
			"_id":    matchID,
			"status": schema.MatchStatusActive,
			"sessions": bson.M{"$elemMatch": bson.M{
				"id":        sessionID,
				"completed": false,
			}},
		},
		bson.A{
			bson.M{"$set": bson.M{
				"sessions": bson.M{"$map": bson.M{
					"input": "$sessions",
					"as":    "s",
					"in": bson.M{"$cond": bson.A{
						bson.M{"$eq": bson.A{"$$s.id", sessionID}},
						bson.M{"$mergeObjects": bson.A{"$$s", bson.M{"completed": true}}},
						"$$s",
					}},
				}},
				"last_activity": now,
				"updated_at":    now,
			}},
			bson.M{"$set": bson.M{"progress": progressDerivation}},
		},
	)
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, ErrConflictRace
	}

	m.publish(schema.Event{
		Name:      schema.EventSessionCompleted,
		Actor:     actor,
		Subject:   match.OtherParticipant(actor).User,
		MatchID:   matchID.Hex(),
		SessionID: sessionID,
		Timestamp: now,
	})

	return m.findMatch(ctx, matchID)
}

// transitionMatch applies a conditional status change for a match the
// actor already passed authorization and precondition checks on.
func (m *mongoDB) transitionMatch(ctx context.Context, id primitive.ObjectID, from interface{}, to string, set bson.M) (*schema.Match, error) {
	c := m.client.Database(m.database).Collection(schema.MatchCollection)

	now := time.Now().UTC()
	set["status"] = to
	set["last_activity"] = now
	set["updated_at"] = now

	result, err := c.UpdateOne(ctx,
		bson.M{"_id": id, "status": from},
		bson.M{"$set": set},
	)
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, ErrConflictRace
	}

	return m.findMatch(ctx, id)
}

// MarkMatchComplete completes an active match. Completion is a
// participant decision: progress is forced to 100 regardless of how
// many sessions were completed.
func (m *mongoDB) MarkMatchComplete(actor string, id primitive.ObjectID) (*schema.Match, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	match, err := m.activeMatchForParticipant(ctx, actor, id, schema.MatchStatusCompleted)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	match, err = m.transitionMatch(ctx, id, schema.MatchStatusActive, schema.MatchStatusCompleted, bson.M{
		"progress":     100,
		"completed_at": now,
	})
	if err != nil {
		return nil, err
	}

	m.publish(schema.Event{
		Name:      schema.EventMatchCompleted,
		Actor:     actor,
		Subject:   match.OtherParticipant(actor).User,
		MatchID:   id.Hex(),
		Timestamp: now,
	})
	return match, nil
}

// CancelMatch cancels a match that is active or paused.
func (m *mongoDB) CancelMatch(actor string, id primitive.ObjectID) (*schema.Match, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	match, err := m.findMatch(ctx, id)
	if err != nil {
		return nil, err
	}
	if !match.IsParticipant(actor) {
		return nil, ErrForbidden
	}
	if !match.CanBeCancelled() {
		return nil, &InvalidTransitionError{Entity: "match", Current: match.Status, Attempted: schema.MatchStatusCancelled}
	}

	match, err = m.transitionMatch(ctx, id,
		bson.M{"$in": bson.A{schema.MatchStatusActive, schema.MatchStatusPaused}},
		schema.MatchStatusCancelled, bson.M{})
	if err != nil {
		return nil, err
	}

	m.publish(schema.Event{
		Name:      schema.EventMatchCancelled,
		Actor:     actor,
		Subject:   match.OtherParticipant(actor).User,
		MatchID:   id.Hex(),
		Timestamp: time.Now().UTC(),
	})
	return match, nil
}

// PauseMatch puts an active match on hold.
func (m *mongoDB) PauseMatch(actor string, id primitive.ObjectID) (*schema.Match, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if _, err := m.activeMatchForParticipant(ctx, actor, id, schema.MatchStatusPaused); err != nil {
		return nil, err
	}

	return m.transitionMatch(ctx, id, schema.MatchStatusActive, schema.MatchStatusPaused, bson.M{})
}

// ResumeMatch reactivates a paused match.
func (m *mongoDB) ResumeMatch(actor string, id primitive.ObjectID) (*schema.Match, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	match, err := m.findMatch(ctx, id)
	if err != nil {
		return nil, err
	}
	if !match.IsParticipant(actor) {
		return nil, ErrForbidden
	}
	if match.Status != schema.MatchStatusPaused {
		return nil, &InvalidTransitionError{Entity: "match", Current: match.Status, Attempted: schema.MatchStatusActive}
	}

	return m.transitionMatch(ctx, id, schema.MatchStatusPaused, schema.MatchStatusActive, bson.M{})
}

// SetParticipantFeedback records the actor's one-time rating and
// feedback on a completed match. Unlike standalone ratings there is no
// edit window: participant feedback is immutable once written.
func (m *mongoDB) SetParticipantFeedback(actor string, matchID primitive.ObjectID, rating int, feedback string) (*schema.Match, error) {
	if rating < schema.RatingMin || rating > schema.RatingMax {
		return nil, &ValidationError{Field: "rating", Reason: "must be between 1 and 5"}
	}
	if len(feedback) > schema.ParticipantFeedbackMaxLength {
		return nil, &ValidationError{Field: "feedback", Reason: "at most 1000 characters"}
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	match, err := m.findMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	participant := match.ParticipantFor(actor)
	if participant == nil {
		return nil, ErrForbidden
	}
	if match.Status != schema.MatchStatusCompleted {
		return nil, ErrMatchNotCompleted
	}
	if participant.Rating != nil {
		return nil, ErrFeedbackExists
	}

	now := time.Now().UTC()
	c := m.client.Database(m.database).Collection(schema.MatchCollection)
	result, err := c.UpdateOne(ctx,
		bson.M{
			"_id":    matchID,
			"status": schema.MatchStatusCompleted,
			"participants": bson.M{"$elemMatch": bson.M{
				"user":   actor,
				"rating": bson.M{"$exists": false},
			}},
		},
		bson.M{"$set": bson.M{
			"participants.$.rating":   rating,
			"participants.$.feedback": feedback,
			"last_activity":           now,
			"updated_at":              now,
		}},
	)
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, ErrConflictRace
	}

	return m.findMatch(ctx, matchID)
}

// isDuplicateKeyError reports whether the driver error is a unique
// index violation.
func isDuplicateKeyError(err error) bool {
	if we, ok := err.(mongo.WriteException); ok {
		for _, e := range we.WriteErrors {
			if e.Code == 11000 {
				return true
			}
		}
	}
	return false
}
