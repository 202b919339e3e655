package schema

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBIndexer struct {
	ctx      context.Context
	dbName   string
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDBIndexer(connectionString, dbName string) *MongoDBIndexer {
	ctx := context.Background()
	opts := options.Client().ApplyURI(connectionString)
	client, err := mongo.NewClient(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}

	return &MongoDBIndexer{
		ctx:      ctx,
		dbName:   dbName,
		Client:   client,
		Database: client.Database(dbName),
	}
}

func (m *MongoDBIndexer) createIndex(collection string, index mongo.IndexModel) error {
	c := m.Database.Collection(collection)
	_, err := c.Indexes().CreateOne(m.ctx, index)
	return err
}

func panicIfError(err error) {
	if err != nil {
		panic(err)
	}
}

func (m *MongoDBIndexer) IndexAll() {
	panicIfError(m.IndexProfileCollection())
	panicIfError(m.IndexRequestCollection())
	panicIfError(m.IndexMatchCollection())
	panicIfError(m.IndexRatingCollection())
}

func (m *MongoDBIndexer) IndexProfileCollection() error {
	if err := m.createIndex(ProfileCollection, mongo.IndexModel{
		Keys: bson.M{
			"id": 1,
		},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}

	return m.createIndex(ProfileCollection, mongo.IndexModel{
		Keys: bson.M{
			"account_number": 1,
		},
		Options: options.Index().SetUnique(true),
	})
}

func (m *MongoDBIndexer) IndexRequestCollection() error {
	if err := m.createIndex(RequestCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "requester", Value: 1},
			{Key: "status", Value: 1},
		},
	}); err != nil {
		return err
	}

	return m.createIndex(RequestCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "recipient", Value: 1},
			{Key: "status", Value: 1},
		},
	})
}

func (m *MongoDBIndexer) IndexMatchCollection() error {
	// exactly one match per originating request
	if err := m.createIndex(MatchCollection, mongo.IndexModel{
		Keys: bson.M{
			"original_request": 1,
		},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}

	if err := m.createIndex(MatchCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "participants.user", Value: 1},
			{Key: "status", Value: 1},
		},
	}); err != nil {
		return err
	}

	return m.createIndex(MatchCollection, mongo.IndexModel{
		Keys: bson.M{
			"last_activity": -1,
		},
	})
}

func (m *MongoDBIndexer) IndexRatingCollection() error {
	// one rating per request per rater
	if err := m.createIndex(RatingCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "rater", Value: 1},
			{Key: "request", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}

	return m.createIndex(RatingCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "rated_user", Value: 1},
			{Key: "created_at", Value: -1},
		},
	})
}
