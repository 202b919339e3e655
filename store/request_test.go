package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/skillswap/skillswap-api/background/mocks"
	"github.com/skillswap/skillswap-api/schema"
)

var validRequestParams = RequestParams{
	Recipient:        "userB",
	SkillOffered:     "Go",
	SkillRequested:   "Piano",
	Message:          "I can teach you Go if you teach me piano.",
	ProposedDuration: "4 weeks",
	ProposedSchedule: "Tuesday evenings",
}

type RequestTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewRequestTestSuite(connURI, dbName string) *RequestTestSuite {
	return &RequestTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *RequestTestSuite) SetupSuite() {
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

	// make sure the test suite is run with a clean environment
	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}

	schema.NewMongoDBIndexer(s.connURI, s.testDBName).IndexAll()
}

// CleanMongoDB drop the whole test mongodb
func (s *RequestTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func (s *RequestTestSuite) testStore() MongoStore {
	ctrl := gomock.NewController(s.T())
	notifier := mocks.NewMockNotifier(ctrl)
	notifier.EXPECT().Publish(gomock.Any()).Return(nil).AnyTimes()
	return NewMongoStore(s.mongoClient, s.testDBName, notifier)
}

func (s *RequestTestSuite) insertRequest(requester, recipient, status string) primitive.ObjectID {
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

func (s *RequestTestSuite) TestCreateRequest() {
	store := s.testStore()

	request, err := store.CreateRequest("userA", validRequestParams)
	s.NoError(err)
	s.False(request.ID.IsZero())
	s.Equal("userA", request.Requester)
	s.Equal("userB", request.Recipient)
	s.Equal(schema.RequestStatusPending, request.Status)
	s.Equal("Go", request.SkillOffered.Name)
	s.Equal("Piano", request.SkillRequested.Name)
}

func (s *RequestTestSuite) TestCreateRequestRejectsBadInput() {
	store := s.testStore()

	params := validRequestParams
	params.Recipient = "userA"
	_, err := store.CreateRequest("userA", params)
	s.True(IsValidationError(err))

	params = validRequestParams
	params.Message = "too short"
	_, err = store.CreateRequest("userA", params)
	s.True(IsValidationError(err))

	params = validRequestParams
	params.SkillOffered = ""
	_, err = store.CreateRequest("userA", params)
	s.True(IsValidationError(err))

	// nothing is persisted when validation fails
	count, err := s.testDatabase.Collection(schema.RequestCollection).
		CountDocuments(context.Background(), bson.M{"message": "too short"})
	s.NoError(err)
	s.Equal(int64(0), count)
}

func (s *RequestTestSuite) TestGetRequestPartiesOnly() {
	store := s.testStore()
	id := s.insertRequest("userA", "userB", schema.RequestStatusPending)

	request, err := store.GetRequest("userA", id)
	s.NoError(err)
	s.Equal("userB", request.Recipient)

	_, err = store.GetRequest("userB", id)
	s.NoError(err)

	_, err = store.GetRequest("userC", id)
	s.Equal(ErrForbidden, err)

	_, err = store.GetRequest("userA", primitive.NewObjectID())
	s.Equal(ErrRequestNotFound, err)
}

func (s *RequestTestSuite) TestAcceptRequest() {
	store := s.testStore()
	id := s.insertRequest("userA", "userB", schema.RequestStatusPending)

	request, err := store.AcceptRequest("userB", id)
	s.NoError(err)
	s.Equal(schema.RequestStatusAccepted, request.Status)
}

func (s *RequestTestSuite) TestAcceptRequestOnlyRecipient() {
	store := s.testStore()
	id := s.insertRequest("userA", "userB", schema.RequestStatusPending)

	_, err := store.AcceptRequest("userA", id)
	s.Equal(ErrForbidden, err)

	_, err = store.AcceptRequest("userC", id)
	s.Equal(ErrForbidden, err)

	// the failed attempts left the request untouched
	request, err := store.GetRequest("userB", id)
	s.NoError(err)
	s.Equal(schema.RequestStatusPending, request.Status)
}

func (s *RequestTestSuite) TestAcceptRequestTwice() {
	store := s.testStore()
	id := s.insertRequest("userA", "userB", schema.RequestStatusAccepted)

	_, err := store.AcceptRequest("userB", id)
	s.True(IsInvalidTransition(err))
}

func (s *RequestTestSuite) TestRejectRequest() {
	store := s.testStore()
	id := s.insertRequest("userA", "userB", schema.RequestStatusPending)

	request, err := store.RejectRequest("userB", id)
	s.NoError(err)
	s.Equal(schema.RequestStatusRejected, request.Status)

	// rejected is terminal
	_, err = store.AcceptRequest("userB", id)
	s.True(IsInvalidTransition(err))
}

func (s *RequestTestSuite) TestCancelRequestOnlyRequester() {
	store := s.testStore()
	id := s.insertRequest("userA", "userB", schema.RequestStatusPending)

	_, err := store.CancelRequest("userB", id)
	s.Equal(ErrForbidden, err)

	request, err := store.CancelRequest("userA", id)
	s.NoError(err)
	s.Equal(schema.RequestStatusCancelled, request.Status)
}

func (s *RequestTestSuite) TestCancelAcceptedRequest() {
	store := s.testStore()
	id := s.insertRequest("userA", "userB", schema.RequestStatusAccepted)

	_, err := store.CancelRequest("userA", id)
	s.True(IsInvalidTransition(err))
}

func (s *RequestTestSuite) TestCompleteRequest() {
	store := s.testStore()
	id := s.insertRequest("userA", "userB", schema.RequestStatusAccepted)

	// either party may complete
	request, err := store.CompleteRequest("userA", id)
	s.NoError(err)
	s.Equal(schema.RequestStatusCompleted, request.Status)
	s.NotNil(request.CompletedAt)

	_, err = store.CompleteRequest("userB", id)
	s.True(IsInvalidTransition(err))
}

func (s *RequestTestSuite) TestCompletePendingRequest() {
	store := s.testStore()
	id := s.insertRequest("userA", "userB", schema.RequestStatusPending)

	_, err := store.CompleteRequest("userB", id)
	s.True(IsInvalidTransition(err))
}

func (s *RequestTestSuite) TestDeleteRequest() {
	store := s.testStore()
	id := s.insertRequest("userA", "userB", schema.RequestStatusPending)

	s.Equal(ErrForbidden, store.DeleteRequest("userB", id))

	s.NoError(store.DeleteRequest("userA", id))

	_, err := store.GetRequest("userA", id)
	s.Equal(ErrRequestNotFound, err)
}

func (s *RequestTestSuite) TestDeleteAcceptedRequest() {
	store := s.testStore()
	id := s.insertRequest("userA", "userB", schema.RequestStatusAccepted)

	err := store.DeleteRequest("userA", id)
	s.True(IsInvalidTransition(err))
}

func (s *RequestTestSuite) TestListRequests() {
	store := s.testStore()

	s.insertRequest("lister", "userB", schema.RequestStatusPending)
	s.insertRequest("lister", "userC", schema.RequestStatusAccepted)
	s.insertRequest("userB", "lister", schema.RequestStatusPending)

	sent, total, err := store.ListSentRequests("lister", "", 1, 10)
	s.NoError(err)
	s.Equal(int64(2), total)
	s.Len(sent, 2)

	sent, total, err = store.ListSentRequests("lister", schema.RequestStatusAccepted, 1, 10)
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Len(sent, 1)
	s.Equal("userC", sent[0].Recipient)

	received, total, err := store.ListReceivedRequests("lister", "", 1, 10)
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Len(received, 1)
	s.Equal("userB", received[0].Requester)

	// second page of a one-item list is empty but keeps the total
	sent, total, err = store.ListSentRequests("lister", "", 2, 1)
	s.NoError(err)
	s.Equal(int64(2), total)
	s.Len(sent, 1)
}

func (s *RequestTestSuite) TestCountRequestsByStatus() {
	store := s.testStore()

	s.insertRequest("counter", "userB", schema.RequestStatusPending)
	s.insertRequest("counter", "userC", schema.RequestStatusPending)
	s.insertRequest("userB", "counter", schema.RequestStatusCompleted)

	counts, err := store.CountRequestsByStatus("counter")
	s.NoError(err)
	s.Equal(int64(2), counts[schema.RequestStatusPending])
	s.Equal(int64(1), counts[schema.RequestStatusCompleted])

	counts, err = store.CountRequestsByStatus("nobody")
	s.NoError(err)
	s.Len(counts, 0)
}

func (s *RequestTestSuite) TestConcurrentAcceptAndCancel() {
	store := s.testStore()
	id := s.insertRequest("userA", "userB", schema.RequestStatusPending)

	var wg sync.WaitGroup
	var acceptErr, cancelErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		_, acceptErr = store.AcceptRequest("userB", id)
	}()
	go func() {
		defer wg.Done()
		_, cancelErr = store.CancelRequest("userA", id)
	}()
	wg.Wait()

	// exactly one of the two racing transitions wins
	if acceptErr == nil {
		s.Error(cancelErr)
	} else {
		s.NoError(cancelErr)
	}

	request, err := store.GetRequest("userA", id)
	s.NoError(err)
	s.Contains([]string{schema.RequestStatusAccepted, schema.RequestStatusCancelled}, request.Status)
}

func (s *RequestTestSuite) TestLifecycleEventsPublished() {
	ctrl := gomock.NewController(s.T())
	defer ctrl.Finish()

	var published []string
	notifier := mocks.NewMockNotifier(ctrl)
	notifier.EXPECT().Publish(gomock.Any()).DoAndReturn(func(event schema.Event) error {
		published = append(published, event.Name)
		return nil
	}).AnyTimes()

	store := NewMongoStore(s.mongoClient, s.testDBName, notifier)

	request, err := store.CreateRequest("userA", validRequestParams)
	s.NoError(err)

	_, err = store.AcceptRequest("userB", request.ID)
	s.NoError(err)

	s.Equal([]string{schema.EventRequestCreated, schema.EventRequestAccepted}, published)
}

func TestRequestTestSuite(t *testing.T) {
	suite.Run(t, NewRequestTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-db"))
}
