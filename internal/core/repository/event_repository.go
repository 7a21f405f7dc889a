package repository

import (
	"context"
	"time"

	"eventman/internal/core/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type EventRepository interface {
	Create(event *model.Event) error
	Update(event *model.Event) error
	Delete(id string) error
	FindByID(id string) (*model.Event, error)
	FindAll() ([]*model.Event, error)
}

type MongoEventRepository struct {
	collection *mongo.Collection
}

func NewMongoEventRepository(db *mongo.Database) *MongoEventRepository {
	return &MongoEventRepository{
		collection: db.Collection("events"),
	}
}

func (r *MongoEventRepository) Create(event *model.Event) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := r.collection.InsertOne(ctx, event)
	return err
}

func (r *MongoEventRepository) Update(event *model.Event) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := r.collection.ReplaceOne(ctx, bson.M{"id": event.ID}, event)
	return err
}

// Delete removes the event if present. Deleting an unknown id is not an error.
func (r *MongoEventRepository) Delete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := r.collection.DeleteOne(ctx, bson.M{"id": id})
	return err
}

func (r *MongoEventRepository) FindByID(id string) (*model.Event, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var event model.Event
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&event)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &event, err
}

func (r *MongoEventRepository) FindAll() ([]*model.Event, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []*model.Event
	if err = cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}
