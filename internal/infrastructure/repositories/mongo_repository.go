package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"portfolio/internal/domain/entities"
	"portfolio/internal/domain/repositories"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type tabler interface {
	TableName() string
}

// collectionName uses the gorm table name so both backends agree.
func collectionName[T any]() string {
	var zero T
	if t, ok := any(zero).(tabler); ok {
		return t.TableName()
	}
	return fmt.Sprintf("%T", zero)
}

type mongoCollection[T any] struct {
	coll *mongo.Collection
}

func NewMongoCollection[T any](db *mongo.Database) repositories.CollectionRepository[T] {
	return &mongoCollection[T]{coll: db.Collection(collectionName[T]())}
}

func (r *mongoCollection[T]) List(ctx context.Context, filter repositories.ListFilter) ([]T, error) {
	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "created_at", Value: 1}})

	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	items := make([]T, 0)
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *mongoCollection[T]) Get(ctx context.Context, id string) (*T, error) {
	var item T
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&item); err != nil {
		return nil, translateMongo(err)
	}
	return &item, nil
}

func (r *mongoCollection[T]) Create(ctx context.Context, item *T) error {
	assignID(item)
	meta := entities.MetaOf(item)
	now := time.Now().UTC()
	meta.CreatedAt, meta.UpdatedAt = now, now
	_, err := r.coll.InsertOne(ctx, item)
	return err
}

func (r *mongoCollection[T]) Save(ctx context.Context, item *T) error {
	return replaceDoc(ctx, r.coll, item)
}

func (r *mongoCollection[T]) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *mongoCollection[T]) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}

type mongoSingleton[T any] struct {
	coll *mongo.Collection
}

func NewMongoSingleton[T any](db *mongo.Database) repositories.SingletonRepository[T] {
	return &mongoSingleton[T]{coll: db.Collection(collectionName[T]())}
}

func (r *mongoSingleton[T]) Get(ctx context.Context) (*T, error) {
	var item T
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: 1}})
	if err := r.coll.FindOne(ctx, bson.M{}, opts).Decode(&item); err != nil {
		return nil, translateMongo(err)
	}
	return &item, nil
}

func (r *mongoSingleton[T]) Save(ctx context.Context, item *T) error {
	return replaceDoc(ctx, r.coll, item)
}

func replaceDoc(ctx context.Context, coll *mongo.Collection, item any) error {
	assignID(item)
	meta := entities.MetaOf(item)
	meta.UpdatedAt = time.Now().UTC()
	if meta.CreatedAt.IsZero() {
		meta.CreatedAt = meta.UpdatedAt
	}
	_, err := coll.ReplaceOne(ctx, bson.M{"_id": meta.ID}, item, options.Replace().SetUpsert(true))
	return err
}

func translateMongo(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return repositories.ErrNotFound
	}
	return err
}
