package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/skillswap/skillswap-api/background/mocks"
	"github.com/skillswap/skillswap-api/schema"
)

var validSessionParams = SessionParams{
	Date:     time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC),
	Topic:    "goroutines and channels",
	Notes:    "bring the worker pool exercise",
	Duration: 45,
}

type MatchTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewMatchTestSuite(connURI, dbName string) *MatchTestSuite {
	return &MatchTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *MatchTestSuite) SetupSuite() {
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
func (s *MatchTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func (s *MatchTestSuite) testStore() MongoStore {
	ctrl := gomock.NewController(s.T())
	notifier := mocks.NewMockNotifier(ctrl)
	notifier.EXPECT().Publish(gomock.Any()).Return(nil).AnyTimes()
	return NewMongoStore(s.mongoClient, s.testDBName, notifier)
}

func (s *MatchTestSuite) insertMatch(status string) primitive.ObjectID {
	now := time.Now().UTC()
	result, err := s.testDatabase.Collection(schema.MatchCollection).InsertOne(context.Background(), schema.Match{
		OriginalRequest: primitive.NewObjectID(),
		Participants: []schema.Participant{
			{User: "userA", SkillOffered: schema.SkillRef{Name: "Go"}, SkillRequested: schema.SkillRef{Name: "Piano"}},
			{User: "userB", SkillOffered: schema.SkillRef{Name: "Piano"}, SkillRequested: schema.SkillRef{Name: "Go"}},
		},
		Status:       status,
		Duration:     "4 weeks",
		Schedule:     "Tuesday evenings",
		StartDate:    now,
		EndDate:      now.AddDate(0, 0, defaultEngagementDays),
		Sessions:     []schema.Session{},
		LastActivity: now,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	s.Require().NoError(err)
	return result.InsertedID.(primitive.ObjectID)
}

func (s *MatchTestSuite) TestCreateMatchFromRequest() {
	store := s.testStore()

	request := &schema.Request{
		ID:               primitive.NewObjectID(),
		Requester:        "userA",
		Recipient:        "userB",
		SkillOffered:     schema.SkillRef{Name: "Go"},
		SkillRequested:   schema.SkillRef{Name: "Piano"},
		ProposedDuration: "4 weeks",
		ProposedSchedule: "Tuesday evenings",
		Status:           schema.RequestStatusAccepted,
	}

	match, err := store.CreateMatchFromRequest(request)
	s.NoError(err)
	s.Equal(schema.MatchStatusActive, match.Status)
	s.Equal(request.ID, match.OriginalRequest)
	s.Equal(0, match.Progress)
	s.Len(match.Participants, 2)

	// each participant carries its own view of the skill pair
	requesterSide := match.ParticipantFor("userA")
	s.Equal("Go", requesterSide.SkillOffered.Name)
	s.Equal("Piano", requesterSide.SkillRequested.Name)
	recipientSide := match.ParticipantFor("userB")
	s.Equal("Piano", recipientSide.SkillOffered.Name)
	s.Equal("Go", recipientSide.SkillRequested.Name)

	// the unique index allows only one match per request
	_, err = store.CreateMatchFromRequest(request)
	s.Equal(ErrMatchExists, err)
}

func (s *MatchTestSuite) TestCreateMatchFromPendingRequest() {
	store := s.testStore()

	_, err := store.CreateMatchFromRequest(&schema.Request{
		ID:        primitive.NewObjectID(),
		Requester: "userA",
		Recipient: "userB",
		Status:    schema.RequestStatusPending,
	})
	s.True(IsInvalidTransition(err))
}

func (s *MatchTestSuite) TestGetMatchParticipantsOnly() {
	store := s.testStore()
	id := s.insertMatch(schema.MatchStatusActive)

	match, err := store.GetMatch("userA", id)
	s.NoError(err)
	s.Equal("userB", match.OtherParticipant("userA").User)

	_, err = store.GetMatch("userC", id)
	s.Equal(ErrForbidden, err)

	_, err = store.GetMatch("userA", primitive.NewObjectID())
	s.Equal(ErrMatchNotFound, err)
}

func (s *MatchTestSuite) TestAddAndCompleteSessionsProgress() {
	store := s.testStore()
	id := s.insertMatch(schema.MatchStatusActive)

	for i := 0; i < 3; i++ {
		match, err := store.AddSession("userA", id, validSessionParams)
		s.NoError(err)
		s.Equal(0, match.Progress)
	}

	match, err := store.GetMatch("userA", id)
	s.NoError(err)
	s.Len(match.Sessions, 3)

	match, err = store.CompleteSession("userB", id, match.Sessions[0].ID)
	s.NoError(err)
	s.Equal(33, match.Progress)

	match, err = store.CompleteSession("userA", id, match.Sessions[1].ID)
	s.NoError(err)
	s.Equal(67, match.Progress)

	// completing a session is a one-way flip
	_, err = store.CompleteSession("userA", id, match.Sessions[0].ID)
	s.True(IsInvalidTransition(err))

	_, err = store.CompleteSession("userA", id, uuid.New().String())
	s.Equal(ErrSessionNotFound, err)
}

func (s *MatchTestSuite) TestConcurrentSessionWritesKeepProgressDerived() {
	store := s.testStore()
	id := s.insertMatch(schema.MatchStatusActive)

	match, err := store.AddSession("userA", id, validSessionParams)
	s.Require().NoError(err)
	sessionID := match.Sessions[0].ID

	var wg sync.WaitGroup
	var addErr, completeErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		_, addErr = store.AddSession("userB", id, validSessionParams)
	}()
	go func() {
		defer wg.Done()
		_, completeErr = store.CompleteSession("userA", id, sessionID)
	}()
	wg.Wait()

	s.NoError(addErr)
	s.NoError(completeErr)

	// no interleaving may persist a progress value that disagrees with
	// the stored session list: 1 of 2 completed is always 50
	match, err = store.GetMatch("userA", id)
	s.NoError(err)
	s.Len(match.Sessions, 2)
	s.Equal(match.CalculateProgress(), match.Progress)
	s.Equal(50, match.Progress)
}

func (s *MatchTestSuite) TestAddSessionValidation() {
	store := s.testStore()
	id := s.insertMatch(schema.MatchStatusActive)

	params := validSessionParams
	params.Topic = ""
	_, err := store.AddSession("userA", id, params)
	s.True(IsValidationError(err))

	params = validSessionParams
	params.Date = time.Time{}
	_, err = store.AddSession("userA", id, params)
	s.True(IsValidationError(err))

	// an omitted duration falls back to the default
	params = validSessionParams
	params.Duration = 0
	match, err := store.AddSession("userA", id, params)
	s.NoError(err)
	s.Equal(schema.SessionDefaultMinutes, match.Sessions[len(match.Sessions)-1].Duration)
}

func (s *MatchTestSuite) TestAddSessionRequiresActiveMatch() {
	store := s.testStore()
	id := s.insertMatch(schema.MatchStatusPaused)

	_, err := store.AddSession("userA", id, validSessionParams)
	s.True(IsInvalidTransition(err))

	_, err = store.AddSession("userC", id, validSessionParams)
	s.Equal(ErrForbidden, err)
}

func (s *MatchTestSuite) TestMarkMatchComplete() {
	store := s.testStore()
	id := s.insertMatch(schema.MatchStatusActive)

	_, err := store.AddSession("userA", id, validSessionParams)
	s.NoError(err)

	// completion is a participant decision, progress jumps to 100
	// no matter how many sessions were finished
	match, err := store.MarkMatchComplete("userB", id)
	s.NoError(err)
	s.Equal(schema.MatchStatusCompleted, match.Status)
	s.Equal(100, match.Progress)
	s.NotNil(match.CompletedAt)

	_, err = store.MarkMatchComplete("userA", id)
	s.True(IsInvalidTransition(err))
}

func (s *MatchTestSuite) TestPauseResumeCancel() {
	store := s.testStore()
	id := s.insertMatch(schema.MatchStatusActive)

	match, err := store.PauseMatch("userA", id)
	s.NoError(err)
	s.Equal(schema.MatchStatusPaused, match.Status)

	// a paused match cannot be completed
	_, err = store.MarkMatchComplete("userA", id)
	s.True(IsInvalidTransition(err))

	match, err = store.ResumeMatch("userB", id)
	s.NoError(err)
	s.Equal(schema.MatchStatusActive, match.Status)

	_, err = store.ResumeMatch("userB", id)
	s.True(IsInvalidTransition(err))

	_, err = store.PauseMatch("userA", id)
	s.NoError(err)

	// cancellation is allowed from paused as well as active
	match, err = store.CancelMatch("userA", id)
	s.NoError(err)
	s.Equal(schema.MatchStatusCancelled, match.Status)

	_, err = store.CancelMatch("userA", id)
	s.True(IsInvalidTransition(err))
}

func (s *MatchTestSuite) TestListMatches() {
	store := s.testStore()

	now := time.Now().UTC()
	for i, status := range []string{schema.MatchStatusActive, schema.MatchStatusActive, schema.MatchStatusCompleted} {
		_, err := s.testDatabase.Collection(schema.MatchCollection).InsertOne(context.Background(), schema.Match{
			OriginalRequest: primitive.NewObjectID(),
			Participants: []schema.Participant{
				{User: "matchLister", SkillOffered: schema.SkillRef{Name: "Go"}, SkillRequested: schema.SkillRef{Name: "Piano"}},
				{User: "userB", SkillOffered: schema.SkillRef{Name: "Piano"}, SkillRequested: schema.SkillRef{Name: "Go"}},
			},
			Status:       status,
			Sessions:     []schema.Session{},
			LastActivity: now.Add(time.Duration(i) * time.Minute),
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		s.Require().NoError(err)
	}

	matches, err := store.ListMatches("matchLister", "all")
	s.NoError(err)
	s.Len(matches, 3)
	// most recently active first
	s.Equal(schema.MatchStatusCompleted, matches[0].Status)

	matches, err = store.ListMatches("matchLister", schema.MatchStatusActive)
	s.NoError(err)
	s.Len(matches, 2)

	count, err := store.CountActiveMatches("matchLister")
	s.NoError(err)
	s.Equal(int64(2), count)
}

func (s *MatchTestSuite) TestParticipantFeedback() {
	store := s.testStore()
	id := s.insertMatch(schema.MatchStatusActive)

	// feedback is gated on completion
	_, err := store.SetParticipantFeedback("userA", id, 5, "great teacher")
	s.Equal(ErrMatchNotCompleted, err)

	_, err = store.MarkMatchComplete("userA", id)
	s.NoError(err)

	match, err := store.SetParticipantFeedback("userA", id, 5, "great teacher")
	s.NoError(err)
	participant := match.ParticipantFor("userA")
	s.Require().NotNil(participant.Rating)
	s.Equal(5, *participant.Rating)
	s.Require().NotNil(participant.Feedback)
	s.Equal("great teacher", *participant.Feedback)

	// feedback is immutable once written
	_, err = store.SetParticipantFeedback("userA", id, 1, "changed my mind")
	s.Equal(ErrFeedbackExists, err)

	// the counterparty's slot is independent
	match, err = store.SetParticipantFeedback("userB", id, 4, "patient student")
	s.NoError(err)
	s.NotNil(match.ParticipantFor("userB").Rating)

	_, err = store.SetParticipantFeedback("userC", id, 3, "not my match")
	s.Equal(ErrForbidden, err)
}

func (s *MatchTestSuite) TestParticipantFeedbackValidation() {
	store := s.testStore()
	id := s.insertMatch(schema.MatchStatusCompleted)

	_, err := store.SetParticipantFeedback("userA", id, 0, "out of range")
	s.True(IsValidationError(err))

	_, err = store.SetParticipantFeedback("userA", id, 6, "out of range")
	s.True(IsValidationError(err))
}

func TestMatchTestSuite(t *testing.T) {
	suite.Run(t, NewMatchTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-db"))
}
