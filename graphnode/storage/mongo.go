package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	graphnode "github.com/SportsToken/AthleteX-Dex-Subgraph/graphnode"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore writes one collection per entity table, upserting by id. Rows
// round-trip through the entity's JSON form so decimal fields stay exact
// strings on the wire.
type MongoStore struct {
	registry *Registry
	client   *mongo.Client
	database string
}

func NewMongoStore(ctx context.Context, registry *Registry, dsn, database string) (*MongoStore, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(dsn))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongo at %s: %w", dsn, err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("pinging mongo at %s: %w", dsn, err)
	}

	return &MongoStore{
		registry: registry,
		client:   client,
		database: database,
	}, nil
}

func (s *MongoStore) collection(entity graphnode.Entity) (*mongo.Collection, error) {
	table, err := s.registry.TableName(entity)
	if err != nil {
		return nil, err
	}
	return s.client.Database(s.database).Collection(table), nil
}

func (s *MongoStore) Load(ctx context.Context, entity graphnode.Entity) error {
	coll, err := s.collection(entity)
	if err != nil {
		return err
	}

	var row bson.M
	err = coll.FindOne(ctx, bson.M{"id": entity.GetID()}).Decode(&row)
	if err == mongo.ErrNoDocuments {
		entity.SetExists(false)
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading %s from %s: %w", entity.GetID(), coll.Name(), err)
	}

	delete(row, "_id")
	raw, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("re-encoding %s row %s: %w", coll.Name(), entity.GetID(), err)
	}
	if err := json.Unmarshal(raw, entity); err != nil {
		return fmt.Errorf("decoding %s row %s: %w", coll.Name(), entity.GetID(), err)
	}
	entity.SetExists(true)
	return nil
}

func (s *MongoStore) Save(ctx context.Context, entity graphnode.Entity) error {
	coll, err := s.collection(entity)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(entity)
	if err != nil {
		return fmt.Errorf("encoding %s row %s: %w", coll.Name(), entity.GetID(), err)
	}
	var row bson.M
	if err := json.Unmarshal(raw, &row); err != nil {
		return fmt.Errorf("decoding %s row %s for mongo: %w", coll.Name(), entity.GetID(), err)
	}

	filter := bson.M{"id": entity.GetID()}
	update := bson.M{"$set": row}
	if _, err := coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
		return fmt.Errorf("upserting %s into %s: %w", entity.GetID(), coll.Name(), err)
	}
	entity.SetExists(true)
	return nil
}

func (s *MongoStore) Delete(ctx context.Context, entity graphnode.Entity) error {
	coll, err := s.collection(entity)
	if err != nil {
		return err
	}
	if _, err := coll.DeleteOne(ctx, bson.M{"id": entity.GetID()}); err != nil {
		return fmt.Errorf("deleting %s from %s: %w", entity.GetID(), coll.Name(), err)
	}
	entity.SetExists(false)
	return nil
}

func (s *MongoStore) LoadAllDistinct(ctx context.Context, model graphnode.Entity) ([]graphnode.Entity, error) {
	coll, err := s.collection(model)
	if err != nil {
		return nil, err
	}

	cursor, err := coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", coll.Name(), err)
	}
	defer cursor.Close(ctx)

	var out []graphnode.Entity
	for cursor.Next(ctx) {
		var row bson.M
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("decoding %s row: %w", coll.Name(), err)
		}
		delete(row, "_id")
		raw, err := json.Marshal(row)
		if err != nil {
			return nil, err
		}
		ent, err := s.registry.NewInstance(coll.Name())
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(raw, ent); err != nil {
			return nil, fmt.Errorf("decoding %s row: %w", coll.Name(), err)
		}
		ent.SetExists(true)
		out = append(out, ent)
	}
	return out, cursor.Err()
}

func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}
