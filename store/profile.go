package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/skillswap/skillswap-api/schema"
)

// ProfileOperator manages the user profiles the rating aggregates
// live on.
type ProfileOperator interface {
	CreateProfile(accountNumber, name string) (*schema.Profile, error)
	GetProfile(accountNumber string) (*schema.Profile, error)
	UpdateProfileSkills(accountNumber string, offered, wanted []schema.Skill) error
}

// CreateProfile registers a profile for an account number. Account
// numbers are unique across profiles.
func (m *mongoDB) CreateProfile(accountNumber, name string) (*schema.Profile, error) {
	if accountNumber == "" {
		return nil, &ValidationError{Field: "account_number", Reason: "required"}
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	profile := schema.Profile{
		ID:            uuid.New().String(),
		AccountNumber: accountNumber,
		Name:          name,
		SkillsOffered: []schema.Skill{},
		SkillsWanted:  []schema.Skill{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	c := m.client.Database(m.database).Collection(schema.ProfileCollection)
	if _, err := c.InsertOne(ctx, profile); err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrProfileTaken
		}
		return nil, err
	}

	return &profile, nil
}

// GetProfile returns the profile of a given account number.
func (m *mongoDB) GetProfile(accountNumber string) (*schema.Profile, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ProfileCollection)

	var profile schema.Profile
	if err := c.FindOne(ctx, bson.M{"account_number": accountNumber}).Decode(&profile); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// UpdateProfileSkills replaces the skill lists of a profile.
func (m *mongoDB) UpdateProfileSkills(accountNumber string, offered, wanted []schema.Skill) error {
	for _, s := range append(append([]schema.Skill{}, offered...), wanted...) {
		if s.Name == "" {
			return &ValidationError{Field: "skill.name", Reason: "required"}
		}
		if !schema.ValidSkillLevel(s.Level) {
			return &ValidationError{Field: "skill.level", Reason: "unknown skill level"}
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ProfileCollection)
	result, err := c.UpdateOne(ctx,
		bson.M{"account_number": accountNumber},
		bson.M{"$set": bson.M{
			"skills_offered": offered,
			"skills_wanted":  wanted,
			"updated_at":     time.Now().UTC(),
		}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrProfileNotFound
	}
	return nil
}
