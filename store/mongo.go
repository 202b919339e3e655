package store

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/skillswap/skillswap-api/background"
	"github.com/skillswap/skillswap-api/schema"
)

const (
	mongoLogPrefix = "mongo"
	defaultTimeout = 5 * time.Second
)

// MongoStore - interface for mongodb operations
type MongoStore interface {
	RequestLifecycle
	MatchEngine
	RatingOperator
	ProfileOperator
	Closer
	Pinger
}

// Closer - close db connection
type Closer interface {
	Close()
}

// Pinger - ping database
type Pinger interface {
	Ping() error
}

type mongoDB struct {
	client   *mongo.Client
	database string
	notifier background.Notifier
}

// Ping - ping mongo db
func (m *mongoDB) Ping() error {
	return m.client.Ping(context.Background(), nil)
}

// Close - close mongo db connections
func (m *mongoDB) Close() {
	log.WithField("prefix", mongoLogPrefix).Info("closing mongo db connections")
	_ = m.client.Disconnect(context.Background())
}

// publish hands a lifecycle event to the notification collaborator. A
// failed publish never rolls back the transition that produced it.
func (m *mongoDB) publish(event schema.Event) {
	if m.notifier == nil {
		return
	}
	if err := m.notifier.Publish(event); err != nil {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"event":  event.Name,
		}).WithError(err).Error("publish lifecycle event")
	}
}

// NewMongoStore - return mongo db operations
func NewMongoStore(client *mongo.Client, database string, notifier background.Notifier) MongoStore {
	return &mongoDB{
		client:   client,
		database: database,
		notifier: notifier,
	}
}
