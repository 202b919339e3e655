package store

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/skillswap/skillswap-api/background/mocks"
	"github.com/skillswap/skillswap-api/schema"
)

type RatingTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewRatingTestSuite(connURI, dbName string) *RatingTestSuite {
	return &RatingTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *RatingTestSuite) SetupSuite() {
	if s.connURI == "" || s.testDBName == "" {
		s.T().Fatal("invalid test suite configuration")
	}

	opts := options.Client().ApplyURI(s.connURI)
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		s.T().Fatalf("create mongo client with error: %s", err)
	}

	if err = mongoClient.Connect(context.Background()); nil != err {
		s.T().Fatalf("connect mongo database with error: %s", err.Error())
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)

	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}

	schema.NewMongoDBIndexer(s.connURI, s.testDBName).IndexAll()
}

// CleanMongoDB drop the whole test mongodb
func (s *RatingTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func (s *RatingTestSuite) testStore() MongoStore {
	ctrl := gomock.NewController(s.T())
	notifier := mocks.NewMockNotifier(ctrl)
	notifier.EXPECT().Publish(gomock.Any()).Return(nil).AnyTimes()
	return NewMongoStore(s.mongoClient, s.testDBName, notifier)
}

func (s *RatingTestSuite) insertProfile(accountNumber string) {
	now := time.Now().UTC()
	_, err := s.testDatabase.Collection(schema.ProfileCollection).InsertOne(context.Background(), schema.Profile{
		ID:            uuid.New().String(),
		AccountNumber: accountNumber,
		Name:          accountNumber,
		SkillsOffered: []schema.Skill{},
		SkillsWanted:  []schema.Skill{},
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	s.Require().NoError(err)
}

func (s *RatingTestSuite) insertCompletedRequest(requester, recipient string) primitive.ObjectID {
	now := time.Now().UTC()
	result, err := s.testDatabase.Collection(schema.RequestCollection).InsertOne(context.Background(), schema.Request{
		Requester:        requester,
		Recipient:        recipient,
		SkillOffered:     schema.SkillRef{Name: "Go"},
		SkillRequested:   schema.SkillRef{Name: "Piano"},
		Message:          "I can teach you Go if you teach me piano.",
		ProposedDuration: "4 weeks",
		ProposedSchedule: "Tuesday evenings",
		Status:           schema.RequestStatusCompleted,
		CreatedAt:        now,
		UpdatedAt:        now,
		CompletedAt:      &now,
	})
	s.Require().NoError(err)
	return result.InsertedID.(primitive.ObjectID)
}

func (s *RatingTestSuite) profile(accountNumber string) *schema.Profile {
	profile, err := s.testStore().GetProfile(accountNumber)
	s.Require().NoError(err)
	return profile
}

func (s *RatingTestSuite) TestSubmitRating() {
	store := s.testStore()
	s.insertProfile("ratedA")
	requestID := s.insertCompletedRequest("raterA", "ratedA")

	rating, err := store.SubmitRating("raterA", requestID, 5, "fantastic piano teacher")
	s.NoError(err)
	s.False(rating.ID.IsZero())
	s.Equal("raterA", rating.Rater)
	s.Equal("ratedA", rating.RatedUser)
	s.Equal(requestID, rating.Request)

	profile := s.profile("ratedA")
	s.Equal(5.0, profile.AverageRating)
	s.Equal(1, profile.TotalRatings)

	// one rating per rater per request
	_, err = store.SubmitRating("raterA", requestID, 4, "second thoughts about it")
	s.Equal(ErrRatingExists, err)

	// the counterparty rates independently on the same request
	s.insertProfile("raterA")
	_, err = store.SubmitRating("ratedA", requestID, 4, "a patient student indeed")
	s.NoError(err)
}

func (s *RatingTestSuite) TestSubmitRatingPreconditions() {
	store := s.testStore()
	s.insertProfile("ratedB")
	requestID := s.insertCompletedRequest("raterB", "ratedB")

	// validation runs before anything is persisted
	_, err := store.SubmitRating("raterB", requestID, 6, "rating out of range here")
	s.True(IsValidationError(err))
	_, err = store.SubmitRating("raterB", requestID, 3, "short")
	s.True(IsValidationError(err))

	_, err = store.SubmitRating("outsider", requestID, 3, "I was never part of this")
	s.Equal(ErrForbidden, err)

	pendingID := s.insertRequestWithStatus("raterB", "ratedB", schema.RequestStatusPending)
	_, err = store.SubmitRating("raterB", pendingID, 3, "not completed just yet")
	s.True(IsInvalidTransition(err))

	profile := s.profile("ratedB")
	s.Equal(0.0, profile.AverageRating)
	s.Equal(0, profile.TotalRatings)
}

func (s *RatingTestSuite) insertRequestWithStatus(requester, recipient, status string) primitive.ObjectID {
	now := time.Now().UTC()
	result, err := s.testDatabase.Collection(schema.RequestCollection).InsertOne(context.Background(), schema.Request{
		Requester:        requester,
		Recipient:        recipient,
		SkillOffered:     schema.SkillRef{Name: "Go"},
		SkillRequested:   schema.SkillRef{Name: "Piano"},
		Message:          "I can teach you Go if you teach me piano.",
		ProposedDuration: "4 weeks",
		ProposedSchedule: "Tuesday evenings",
		Status:           status,
		CreatedAt:        now,
		UpdatedAt:        now,
	})
	s.Require().NoError(err)
	return result.InsertedID.(primitive.ObjectID)
}

func (s *RatingTestSuite) TestAggregateRecomputation() {
	store := s.testStore()
	s.insertProfile("ratedC")

	ratings := make([]primitive.ObjectID, 0)
	for _, value := range []int{5, 3, 4} {
		requestID := s.insertCompletedRequest("raterC", "ratedC")
		rating, err := store.SubmitRating("raterC", requestID, value, "the aggregate test rating")
		s.Require().NoError(err)
		ratings = append(ratings, rating.ID)
	}

	profile := s.profile("ratedC")
	s.Equal(4.0, profile.AverageRating)
	s.Equal(3, profile.TotalRatings)

	// deleting the 3 leaves (5+4)/2
	s.NoError(store.DeleteRating("raterC", ratings[1]))
	profile = s.profile("ratedC")
	s.Equal(4.5, profile.AverageRating)
	s.Equal(2, profile.TotalRatings)

	// updating rewrites the aggregate as well
	_, err := store.UpdateRating("raterC", ratings[0], 1, "revised after a bad session")
	s.NoError(err)
	profile = s.profile("ratedC")
	s.Equal(2.5, profile.AverageRating)

	// deleting the last ratings resets the aggregate to zero
	s.NoError(store.DeleteRating("raterC", ratings[0]))
	s.NoError(store.DeleteRating("raterC", ratings[2]))
	profile = s.profile("ratedC")
	s.Equal(0.0, profile.AverageRating)
	s.Equal(0, profile.TotalRatings)
}

func (s *RatingTestSuite) TestUpdateRatingOnlyRater() {
	store := s.testStore()
	s.insertProfile("ratedD")
	requestID := s.insertCompletedRequest("raterD", "ratedD")

	rating, err := store.SubmitRating("raterD", requestID, 4, "pretty good piano lessons")
	s.Require().NoError(err)

	_, err = store.UpdateRating("ratedD", rating.ID, 5, "trying to rate myself up")
	s.Equal(ErrForbidden, err)

	s.Equal(ErrForbidden, store.DeleteRating("ratedD", rating.ID))

	updated, err := store.UpdateRating("raterD", rating.ID, 5, "even better than I thought")
	s.NoError(err)
	s.Equal(5, updated.Rating)

	_, err = store.UpdateRating("raterD", primitive.NewObjectID(), 5, "this rating does not exist")
	s.Equal(ErrRatingNotFound, err)
}

func (s *RatingTestSuite) TestEditWindowExpiry() {
	store := s.testStore()
	s.insertProfile("ratedE")
	requestID := s.insertCompletedRequest("raterE", "ratedE")

	// a rating submitted 25 hours ago is outside the edit window
	result, err := s.testDatabase.Collection(schema.RatingCollection).InsertOne(context.Background(), schema.Rating{
		Rater:     "raterE",
		RatedUser: "ratedE",
		Request:   requestID,
		Rating:    2,
		Feedback:  "submitted a long time ago",
		CreatedAt: time.Now().UTC().Add(-25 * time.Hour),
	})
	s.Require().NoError(err)
	ratingID := result.InsertedID.(primitive.ObjectID)

	_, err = store.UpdateRating("raterE", ratingID, 5, "too late to change this")
	s.Equal(ErrEditWindowExpired, err)

	s.Equal(ErrEditWindowExpired, store.DeleteRating("raterE", ratingID))
}

func (s *RatingTestSuite) TestSubmitRatingUnregisteredRatedUser() {
	store := s.testStore()
	requestID := s.insertCompletedRequest("raterG", "ghostG")

	// the rated user never registered a profile; the submission fails
	// before anything is written
	_, err := store.SubmitRating("raterG", requestID, 4, "rated before registering")
	s.Equal(ErrProfileNotFound, err)

	count, err := s.testDatabase.Collection(schema.RatingCollection).
		CountDocuments(context.Background(), bson.M{"rater": "raterG"})
	s.NoError(err)
	s.Equal(int64(0), count)

	// once the profile exists the same rating goes through
	s.insertProfile("ghostG")
	rating, err := store.SubmitRating("raterG", requestID, 4, "rated before registering")
	s.NoError(err)
	s.Equal("ghostG", rating.RatedUser)

	profile := s.profile("ghostG")
	s.Equal(4.0, profile.AverageRating)
	s.Equal(1, profile.TotalRatings)
}

func (s *RatingTestSuite) TestListRatings() {
	store := s.testStore()
	s.insertProfile("ratedF")
	s.insertProfile("raterF")

	requestID := s.insertCompletedRequest("raterF", "ratedF")
	_, err := store.SubmitRating("raterF", requestID, 5, "the lessons were excellent")
	s.Require().NoError(err)
	_, err = store.SubmitRating("ratedF", requestID, 4, "a fine student to teach")
	s.Require().NoError(err)

	received, total, err := store.ListRatingsForUser("ratedF", 1, 10)
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Len(received, 1)
	s.Equal("raterF", received[0].Rater)

	given, total, err := store.ListRatingsGiven("raterF", 1, 10)
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Len(given, 1)

	both, err := store.GetRequestRatings("ratedF", requestID)
	s.NoError(err)
	s.Len(both, 2)

	_, err = store.GetRequestRatings("outsider", requestID)
	s.Equal(ErrForbidden, err)
}

func TestRatingTestSuite(t *testing.T) {
	suite.Run(t, NewRatingTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-db"))
}
