package menu

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
	ListCategories(ctx context.Context) ([]*Category, error)
	CreateCategory(ctx context.Context, c *Category) (*Category, error)
	UpdateCategory(ctx context.Context, id string, c *Category) (*Category, error)
	DeleteCategory(ctx context.Context, id string) error

	ListItems(ctx context.Context, filter ItemFilter) ([]*Item, error)
	GetItem(ctx context.Context, id string) (*Item, error)
	CreateItem(ctx context.Context, item *Item) (*Item, error)
	UpdateItem(ctx context.Context, id string, item *Item) (*Item, error)
	DeleteItem(ctx context.Context, id string) error
}

type repository struct {
	categories *mongo.Collection
	items      *mongo.Collection
}

func NewRepository(database *mongo.Database) Repository {
	return &repository{
		categories: database.Collection("categories"),
		items:      database.Collection("menu_items"),
	}
}

func (r *repository) ListCategories(ctx context.Context) ([]*Category, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.categories.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []*Category
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repository) CreateCategory(ctx context.Context, c *Category) (*Category, error) {
	now := time.Now().UTC()
	c.ID = primitive.NewObjectID()
	c.CreatedAt = now
	c.UpdatedAt = now

	if _, err := r.categories.InsertOne(ctx, c); err != nil {
		logger.FromCtx(ctx).Error("failed to insert category", zap.Error(err))
		return nil, err
	}
	return c, nil
}

func (r *repository) UpdateCategory(ctx context.Context, id string, c *Category) (*Category, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrCategoryNotFound
	}

	update := bson.M{"$set": bson.M{
		"name":          c.Name,
		"subcategories": c.Subcategories,
		"updatedAt":     time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated Category
	err = r.categories.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *repository) DeleteCategory(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrCategoryNotFound
	}

	res, err := r.categories.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

func (r *repository) ListItems(ctx context.Context, filter ItemFilter) ([]*Item, error) {
	query := bson.M{}
	if filter.Category != nil {
		query["category"] = *filter.Category
	}
	if filter.AvailableOnly {
		query["available"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.items.Find(ctx, query, opts)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to query menu items", zap.Error(err))
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []*Item
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repository) GetItem(ctx context.Context, id string) (*Item, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var item Item
	err = r.items.FindOne(ctx, bson.M{"_id": oid}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *repository) CreateItem(ctx context.Context, item *Item) (*Item, error) {
	now := time.Now().UTC()
	item.ID = primitive.NewObjectID()
	item.CreatedAt = now
	item.UpdatedAt = now

	if _, err := r.items.InsertOne(ctx, item); err != nil {
		logger.FromCtx(ctx).Error("failed to insert menu item", zap.Error(err))
		return nil, err
	}
	return item, nil
}

func (r *repository) UpdateItem(ctx context.Context, id string, item *Item) (*Item, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrItemNotFound
	}

	update := bson.M{"$set": bson.M{
		"name":        item.Name,
		"description": item.Description,
		"price":       item.Price,
		"sizes":       item.Sizes,
		"toppings":    item.Toppings,
		"category":    item.Category,
		"subcategory": item.Subcategory,
		"imageUrl":    item.ImageURL,
		"available":   item.Available,
		"updatedAt":   time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated Item
	err = r.items.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *repository) DeleteItem(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrItemNotFound
	}

	res, err := r.items.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrItemNotFound
	}
	return nil
}
