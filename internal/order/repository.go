package order

import (
	"context"
	"errors"
	"time"

	"quanngon-be/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, o *Order) (*Order, error)
	GetByID(ctx context.Context, id string) (*Order, error)
	List(ctx context.Context, filter Filter) ([]*Order, error)
	UpdateStatus(ctx context.Context, id string, status Status) (*Order, error)
	Delete(ctx context.Context, id string) (*Order, error)
}

type repository struct {
	col *mongo.Collection
}

func NewRepository(database *mongo.Database) Repository {
	return &repository{col: database.Collection("orders")}
}

func (r *repository) Create(ctx context.Context, o *Order) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Create"),
	)

	now := time.Now().UTC()
	o.ID = primitive.NewObjectID()
	o.CreatedAt = now
	o.UpdatedAt = now

	if _, err := r.col.InsertOne(ctx, o); err != nil {
		log.Error("failed to insert order", zap.Error(err))
		return nil, err
	}

	log.Info("order created",
		zap.String("order_id", o.ID.Hex()),
		zap.String("type", string(o.TypeOrder)),
		zap.Float64("total", o.TotalAmount),
	)
	return o, nil
}

// GetByID returns nil for both a malformed identifier and a missing
// document. Callers treat either as not found.
func (r *repository) GetByID(ctx context.Context, id string) (*Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var o Order
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repository) List(ctx context.Context, filter Filter) ([]*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "List"),
	)

	query := bson.M{}
	if filter.Status != nil {
		query["status"] = *filter.Status
	}
	if filter.TypeOrder != nil {
		query["typeOrder"] = *filter.TypeOrder
	}
	if filter.FromDate != nil || filter.ToDate != nil {
		created := bson.M{}
		if filter.FromDate != nil {
			created["$gte"] = *filter.FromDate
		}
		if filter.ToDate != nil {
			created["$lte"] = *filter.ToDate
		}
		query["createdAt"] = created
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.col.Find(ctx, query, opts)
	if err != nil {
		log.Error("failed to query orders", zap.Error(err))
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []*Order
	if err := cursor.All(ctx, &orders); err != nil {
		log.Error("failed to decode orders", zap.Error(err))
		return nil, err
	}

	log.Debug("orders listed", zap.Int("count", len(orders)))
	return orders, nil
}

// UpdateStatus writes the new status unconditionally. Transition legality
// is the caller's concern.
func (r *repository) UpdateStatus(ctx context.Context, id string, status Status) (*Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrOrderNotFound
	}

	update := bson.M{"$set": bson.M{
		"status":    status,
		"updatedAt": time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var o Order
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repository) Delete(ctx context.Context, id string) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Delete"),
		zap.String("order_id", id),
	)

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrOrderNotFound
	}

	var o Order
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	if o.Status == StatusCompleted || o.Status == StatusPaid {
		return nil, ErrOrderNotDeletable
	}

	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		log.Error("failed to delete order", zap.Error(err))
		return nil, err
	}

	log.Info("order deleted", zap.String("status", string(o.Status)))
	return &o, nil
}
