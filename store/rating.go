package store

import (
	"context"
	"math"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/skillswap/skillswap-api/schema"
)

// ratingEditWindow bounds how long after submission a standalone
// rating may still be updated or deleted by its rater.
const ratingEditWindow = 24 * time.Hour

// RatingOperator attaches reputation records to completed requests and
// keeps the rated users' aggregates consistent.
type RatingOperator interface {
	SubmitRating(actor string, requestID primitive.ObjectID, rating int, feedback string) (*schema.Rating, error)
	UpdateRating(actor string, ratingID primitive.ObjectID, rating int, feedback string) (*schema.Rating, error)
	DeleteRating(actor string, ratingID primitive.ObjectID) error

	ListRatingsForUser(userID string, page, limit int64) ([]schema.Rating, int64, error)
	ListRatingsGiven(actor string, page, limit int64) ([]schema.Rating, int64, error)
	GetRequestRatings(actor string, requestID primitive.ObjectID) ([]schema.Rating, error)
}

func validateRatingInput(rating int, feedback string) error {
	if rating < schema.RatingMin || rating > schema.RatingMax {
		return &ValidationError{Field: "rating", Reason: "must be between 1 and 5"}
	}
	if l := len(feedback); l < schema.RatingFeedbackMinLength || l > schema.RatingFeedbackMaxLength {
		return &ValidationError{Field: "feedback", Reason: "must be between 10 and 500 characters"}
	}
	return nil
}

// SubmitRating persists a one-time rating of the actor's counterparty
// on a completed request and recomputes the counterparty's aggregate
// average from scratch. Validation happens before any persistence.
func (m *mongoDB) SubmitRating(actor string, requestID primitive.ObjectID, rating int, feedback string) (*schema.Rating, error) {
	if err := validateRatingInput(rating, feedback); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	request, err := m.findRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if !request.IsParty(actor) {
		return nil, ErrForbidden
	}
	if request.Status != schema.RequestStatusCompleted {
		return nil, &InvalidTransitionError{Entity: "request", Current: request.Status, Attempted: "rated"}
	}

	// the rated user must be registered before the insert; failing
	// afterwards would leave a rating behind with no aggregate recorded
	profiles := m.client.Database(m.database).Collection(schema.ProfileCollection)
	count, err := profiles.CountDocuments(ctx, bson.M{"account_number": request.OtherParty(actor)})
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrProfileNotFound
	}

	record := schema.Rating{
		Rater:     actor,
		RatedUser: request.OtherParty(actor),
		Request:   requestID,
		Rating:    rating,
		Feedback:  feedback,
		CreatedAt: time.Now().UTC(),
	}

	c := m.client.Database(m.database).Collection(schema.RatingCollection)
	result, err := c.InsertOne(ctx, record)
	if err != nil {
		// the unique (rater, request) index is the duplicate gate
		if isDuplicateKeyError(err) {
			return nil, ErrRatingExists
		}
		return nil, err
	}
	record.ID = result.InsertedID.(primitive.ObjectID)

	if err := m.refreshRatingStats(ctx, record.RatedUser); err != nil {
		return nil, err
	}

	m.publish(schema.Event{
		Name:      schema.EventRatingSubmitted,
		Actor:     actor,
		Subject:   record.RatedUser,
		RequestID: requestID.Hex(),
		Timestamp: record.CreatedAt,
	})

	return &record, nil
}

func (m *mongoDB) findRating(ctx context.Context, id primitive.ObjectID) (*schema.Rating, error) {
	c := m.client.Database(m.database).Collection(schema.RatingCollection)

	var rating schema.Rating
	if err := c.FindOne(ctx, bson.M{"_id": id}).Decode(&rating); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrRatingNotFound
		}
		return nil, err
	}
	return &rating, nil
}

// UpdateRating rewrites a rating's value and feedback. Only the
// original rater may update, and only within 24 hours of submission.
func (m *mongoDB) UpdateRating(actor string, ratingID primitive.ObjectID, rating int, feedback string) (*schema.Rating, error) {
	if err := validateRatingInput(rating, feedback); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	record, err := m.findRating(ctx, ratingID)
	if err != nil {
		return nil, err
	}
	if record.Rater != actor {
		return nil, ErrForbidden
	}
	if time.Since(record.CreatedAt) > ratingEditWindow {
		return nil, ErrEditWindowExpired
	}

	c := m.client.Database(m.database).Collection(schema.RatingCollection)
	if _, err := c.UpdateOne(ctx,
		bson.M{"_id": ratingID},
		bson.M{"$set": bson.M{
			"rating":   rating,
			"feedback": feedback,
		}},
	); err != nil {
		return nil, err
	}

	if err := m.refreshRatingStats(ctx, record.RatedUser); err != nil {
		return nil, err
	}

	record.Rating = rating
	record.Feedback = feedback
	return record, nil
}

// DeleteRating removes a rating within the same 24-hour window and
// recomputes the rated user's aggregate from the remaining ratings,
// resetting it to zero when none remain.
func (m *mongoDB) DeleteRating(actor string, ratingID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	record, err := m.findRating(ctx, ratingID)
	if err != nil {
		return err
	}
	if record.Rater != actor {
		return ErrForbidden
	}
	if time.Since(record.CreatedAt) > ratingEditWindow {
		return ErrEditWindowExpired
	}

	c := m.client.Database(m.database).Collection(schema.RatingCollection)
	if _, err := c.DeleteOne(ctx, bson.M{"_id": ratingID}); err != nil {
		return err
	}

	return m.refreshRatingStats(ctx, record.RatedUser)
}

// refreshRatingStats recomputes a user's average rating and rating
// count from scratch and persists them on the profile. Recomputing
// instead of keeping a running average avoids drift.
func (m *mongoDB) refreshRatingStats(ctx context.Context, accountNumber string) error {
	c := m.client.Database(m.database).Collection(schema.RatingCollection)

	pipeline := []bson.M{
		{"$match": bson.M{"rated_user": accountNumber}},
		{"$group": bson.M{
			"_id":     nil,
			"average": bson.M{"$avg": "$rating"},
			"count":   bson.M{"$sum": 1},
		}},
	}

	cursor, err := c.Aggregate(ctx, pipeline)
	if err != nil {
		return err
	}

	var results []struct {
		Average float64 `bson:"average"`
		Count   int     `bson:"count"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return err
	}

	average := 0.0
	count := 0
	if len(results) > 0 {
		average = math.Round(results[0].Average*10) / 10
		count = results[0].Count
	}

	profiles := m.client.Database(m.database).Collection(schema.ProfileCollection)
	result, err := profiles.UpdateOne(ctx,
		bson.M{"account_number": accountNumber},
		bson.M{"$set": bson.M{
			"average_rating": average,
			"total_ratings":  count,
			"updated_at":     time.Now().UTC(),
		}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		log.WithFields(log.Fields{
			"prefix":         mongoLogPrefix,
			"account_number": accountNumber,
		}).Error("refresh rating stats for unknown profile")
		return ErrProfileNotFound
	}

	return nil
}

func (m *mongoDB) listRatings(query bson.M, page, limit int64) ([]schema.Rating, int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	c := m.client.Database(m.database).Collection(schema.RatingCollection)

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

	ratings := make([]schema.Rating, 0)
	if err := cursor.All(ctx, &ratings); err != nil {
		return nil, 0, err
	}
	return ratings, total, nil
}

// ListRatingsForUser returns ratings received by a user, newest first.
func (m *mongoDB) ListRatingsForUser(userID string, page, limit int64) ([]schema.Rating, int64, error) {
	return m.listRatings(bson.M{"rated_user": userID}, page, limit)
}

// ListRatingsGiven returns ratings the actor has submitted, newest first.
func (m *mongoDB) ListRatingsGiven(actor string, page, limit int64) ([]schema.Rating, int64, error) {
	return m.listRatings(bson.M{"rater": actor}, page, limit)
}

// GetRequestRatings returns both parties' ratings of one request,
// visible only to the parties themselves.
func (m *mongoDB) GetRequestRatings(actor string, requestID primitive.ObjectID) ([]schema.Rating, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	request, err := m.findRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if !request.IsParty(actor) {
		return nil, ErrForbidden
	}

	c := m.client.Database(m.database).Collection(schema.RatingCollection)
	cursor, err := c.Find(ctx, bson.M{"request": requestID})
	if err != nil {
		return nil, err
	}

	ratings := make([]schema.Rating, 0)
	if err := cursor.All(ctx, &ratings); err != nil {
		return nil, err
	}
	return ratings, nil
}
