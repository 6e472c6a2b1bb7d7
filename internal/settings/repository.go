package settings

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Repository interface {
	Get(ctx context.Context) (*Settings, error)
	Upsert(ctx context.Context, s *Settings) error
}

type repository struct {
	col *mongo.Collection
}

func NewRepository(database *mongo.Database) Repository {
	return &repository{col: database.Collection("settings")}
}

// Get returns the single settings document, nil when none exists yet.
func (r *repository) Get(ctx context.Context) (*Settings, error) {
	var s Settings
	err := r.col.FindOne(ctx, bson.M{}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) Upsert(ctx context.Context, s *Settings) error {
	update := bson.M{"$set": bson.M{
		"restaurantName": s.RestaurantName,
		"logoUrl":        s.LogoURL,
		"description":    s.Description,
		"tables":         s.Tables,
		"contactInfo":    s.ContactInfo,
		"bankAccount":    s.BankAccount,
		"socialMedia":    s.SocialMedia,
		"telegramToken":  s.TelegramToken,
		"chatId":         s.ChatID,
	}}

	opts := options.Update().SetUpsert(true)
	_, err := r.col.UpdateOne(ctx, bson.M{}, update, opts)
	return err
}
