package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/skillswap/skillswap-api/schema"
)

// RequestParams carries the caller-supplied fields of a new request.
type RequestParams struct {
	Recipient        string
	SkillOffered     string
	SkillRequested   string
	Message          string
	ProposedDuration string
	ProposedSchedule string
}

// RequestLifecycle owns the state transitions of a skill-exchange
// request from creation through completion or cancellation.
type RequestLifecycle interface {
	CreateRequest(requester string, params RequestParams) (*schema.Request, error)
	GetRequest(actor string, id primitive.ObjectID) (*schema.Request, error)
	ListSentRequests(actor, status string, page, limit int64) ([]schema.Request, int64, error)
	ListReceivedRequests(actor, status string, page, limit int64) ([]schema.Request, int64, error)
	CountRequestsByStatus(actor string) (map[string]int64, error)

	AcceptRequest(actor string, id primitive.ObjectID) (*schema.Request, error)
	RejectRequest(actor string, id primitive.ObjectID) (*schema.Request, error)
	CancelRequest(actor string, id primitive.ObjectID) (*schema.Request, error)
	CompleteRequest(actor string, id primitive.ObjectID) (*schema.Request, error)
	DeleteRequest(actor string, id primitive.ObjectID) error
}

func validateRequestParams(requester string, params RequestParams) error {
	if params.Recipient == "" {
		return &ValidationError{Field: "recipient", Reason: "required"}
	}
	if params.Recipient == requester {
		return &ValidationError{Field: "recipient", Reason: "cannot send a request to yourself"}
	}
	if params.SkillOffered == "" {
		return &ValidationError{Field: "skill_offered", Reason: "required"}
	}
	if params.SkillRequested == "" {
		return &ValidationError{Field: "skill_requested", Reason: "required"}
	}
	if l := len(params.Message); l < schema.RequestMessageMinLength || l > schema.RequestMessageMaxLength {
		return &ValidationError{Field: "message", Reason: "must be between 10 and 500 characters"}
	}
	if params.ProposedDuration == "" || len(params.ProposedDuration) > schema.RequestDurationMaxLength {
		return &ValidationError{Field: "proposed_duration", Reason: "required, at most 100 characters"}
	}
	if params.ProposedSchedule == "" || len(params.ProposedSchedule) > schema.RequestScheduleMaxLength {
		return &ValidationError{Field: "proposed_schedule", Reason: "required, at most 200 characters"}
	}
	return nil
}

// CreateRequest inserts a new pending request from requester to the
// recipient named in params.
func (m *mongoDB) CreateRequest(requester string, params RequestParams) (*schema.Request, error) {
	if err := validateRequestParams(requester, params); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	request := schema.Request{
		Requester:        requester,
		Recipient:        params.Recipient,
		SkillOffered:     schema.SkillRef{Name: params.SkillOffered},
		SkillRequested:   schema.SkillRef{Name: params.SkillRequested},
		Message:          params.Message,
		ProposedDuration: params.ProposedDuration,
		ProposedSchedule: params.ProposedSchedule,
		Status:           schema.RequestStatusPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	c := m.client.Database(m.database).Collection(schema.RequestCollection)
	result, err := c.InsertOne(ctx, request)
	if err != nil {
		return nil, err
	}
	request.ID = result.InsertedID.(primitive.ObjectID)

	m.publish(schema.Event{
		Name:      schema.EventRequestCreated,
		Actor:     requester,
		Subject:   params.Recipient,
		RequestID: request.ID.Hex(),
		Timestamp: now,
	})

	return &request, nil
}

func (m *mongoDB) findRequest(ctx context.Context, id primitive.ObjectID) (*schema.Request, error) {
	c := m.client.Database(m.database).Collection(schema.RequestCollection)

	var request schema.Request
	if err := c.FindOne(ctx, bson.M{"_id": id}).Decode(&request); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return &request, nil
}

// GetRequest returns a request visible only to its two parties.
func (m *mongoDB) GetRequest(actor string, id primitive.ObjectID) (*schema.Request, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	request, err := m.findRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if !request.IsParty(actor) {
		return nil, ErrForbidden
	}
	return request, nil
}

func (m *mongoDB) listRequests(query bson.M, page, limit int64) ([]schema.Request, int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	c := m.client.Database(m.database).Collection(schema.RequestCollection)

	total, err := c.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.M{"created_at": -1}).
		SetSkip((page - 1) * limit).
		SetLimit(limit)

	cursor, err := c.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}

	requests := make([]schema.Request, 0)
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, 0, err
	}
	return requests, total, nil
}

// ListSentRequests returns requests created by the actor, newest
// first, optionally filtered by status.
func (m *mongoDB) ListSentRequests(actor, status string, page, limit int64) ([]schema.Request, int64, error) {
	query := bson.M{"requester": actor}
	if status != "" {
		query["status"] = status
	}
	return m.listRequests(query, page, limit)
}

// ListReceivedRequests returns requests addressed to the actor, newest
// first, optionally filtered by status.
func (m *mongoDB) ListReceivedRequests(actor, status string, page, limit int64) ([]schema.Request, int64, error) {
	query := bson.M{"recipient": actor}
	if status != "" {
		query["status"] = status
	}
	return m.listRequests(query, page, limit)
}

// CountRequestsByStatus groups all requests the actor is a party of by
// their current status.
func (m *mongoDB) CountRequestsByStatus(actor string) (map[string]int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.RequestCollection)

	pipeline := []bson.M{
		{"$match": bson.M{"$or": bson.A{
			bson.M{"requester": actor},
			bson.M{"recipient": actor},
		}}},
		{"$group": bson.M{
			"_id":   "$status",
			"count": bson.M{"$sum": 1},
		}},
	}

	cursor, err := c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	var groups []struct {
		Status string `bson:"_id"`
		Count  int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, err
	}

	counts := make(map[string]int64)
	for _, g := range groups {
		counts[g.Status] = g.Count
	}
	return counts, nil
}

// transitionRequest applies a single state transition for an actor that
// has already been resolved as authorized. The update is conditional on
// the expected current status so that only one of two racing
// transitions can win; the loser gets ErrConflictRace.
func (m *mongoDB) transitionRequest(ctx context.Context, id primitive.ObjectID, from, to string, set bson.M) (*schema.Request, error) {
	c := m.client.Database(m.database).Collection(schema.RequestCollection)

	set["status"] = to
	set["updated_at"] = time.Now().UTC()

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

	return m.findRequest(ctx, id)
}

func (m *mongoDB) requestTransitionByRecipient(actor string, id primitive.ObjectID, to string) (*schema.Request, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	request, err := m.findRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor != request.Recipient {
		return nil, ErrForbidden
	}
	if request.Status != schema.RequestStatusPending {
		return nil, &InvalidTransitionError{Entity: "request", Current: request.Status, Attempted: to}
	}

	return m.transitionRequest(ctx, id, schema.RequestStatusPending, to, bson.M{})
}

// AcceptRequest moves a pending request to accepted. Only the
// recipient may accept. The accepted request is returned so the caller
// can construct the corresponding match.
func (m *mongoDB) AcceptRequest(actor string, id primitive.ObjectID) (*schema.Request, error) {
	request, err := m.requestTransitionByRecipient(actor, id, schema.RequestStatusAccepted)
	if err != nil {
		return nil, err
	}

	m.publish(schema.Event{
		Name:      schema.EventRequestAccepted,
		Actor:     actor,
		Subject:   request.Requester,
		RequestID: request.ID.Hex(),
		Timestamp: time.Now().UTC(),
	})
	return request, nil
}

// RejectRequest moves a pending request to rejected. Only the
// recipient may reject.
func (m *mongoDB) RejectRequest(actor string, id primitive.ObjectID) (*schema.Request, error) {
	request, err := m.requestTransitionByRecipient(actor, id, schema.RequestStatusRejected)
	if err != nil {
		return nil, err
	}

	m.publish(schema.Event{
		Name:      schema.EventRequestRejected,
		Actor:     actor,
		Subject:   request.Requester,
		RequestID: request.ID.Hex(),
		Timestamp: time.Now().UTC(),
	})
	return request, nil
}

// CancelRequest moves a pending request to cancelled. Only the
// requester may cancel.
func (m *mongoDB) CancelRequest(actor string, id primitive.ObjectID) (*schema.Request, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	request, err := m.findRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor != request.Requester {
		return nil, ErrForbidden
	}
	if request.Status != schema.RequestStatusPending {
		return nil, &InvalidTransitionError{Entity: "request", Current: request.Status, Attempted: schema.RequestStatusCancelled}
	}

	request, err = m.transitionRequest(ctx, id, schema.RequestStatusPending, schema.RequestStatusCancelled, bson.M{})
	if err != nil {
		return nil, err
	}

	m.publish(schema.Event{
		Name:      schema.EventRequestCancelled,
		Actor:     actor,
		Subject:   request.Recipient,
		RequestID: request.ID.Hex(),
		Timestamp: time.Now().UTC(),
	})
	return request, nil
}

// CompleteRequest moves an accepted request to completed and stamps
// completed_at. Either party may complete.
func (m *mongoDB) CompleteRequest(actor string, id primitive.ObjectID) (*schema.Request, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	request, err := m.findRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if !request.IsParty(actor) {
		return nil, ErrForbidden
	}
	if request.Status != schema.RequestStatusAccepted {
		return nil, &InvalidTransitionError{Entity: "request", Current: request.Status, Attempted: schema.RequestStatusCompleted}
	}

	request, err = m.transitionRequest(ctx, id, schema.RequestStatusAccepted, schema.RequestStatusCompleted, bson.M{
		"completed_at": time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	m.publish(schema.Event{
		Name:      schema.EventRequestCompleted,
		Actor:     actor,
		Subject:   request.OtherParty(actor),
		RequestID: request.ID.Hex(),
		Timestamp: time.Now().UTC(),
	})
	return request, nil
}

// DeleteRequest hard-removes a request. Only the requester may delete,
// and only while the request is still pending; once accepted a request
// is never deleted.
func (m *mongoDB) DeleteRequest(actor string, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	request, err := m.findRequest(ctx, id)
	if err != nil {
		return err
	}
	if actor != request.Requester {
		return ErrForbidden
	}
	if request.Status != schema.RequestStatusPending {
		return &InvalidTransitionError{Entity: "request", Current: request.Status, Attempted: "deleted"}
	}

	c := m.client.Database(m.database).Collection(schema.RequestCollection)
	result, err := c.DeleteOne(ctx, bson.M{
		"_id":       id,
		"requester": actor,
		"status":    schema.RequestStatusPending,
	})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrConflictRace
	}
	return nil
}
