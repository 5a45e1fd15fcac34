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
	panicIfError(m.IndexDailyRecordCollection())
	panicIfError(m.IndexAgeGenderSnapshotCollection())
}

// IndexDailyRecordCollection keys records by area and date, and supports
// looking up the newest record of an area by name
func (m *MongoDBIndexer) IndexDailyRecordCollection() error {
	if err := m.createIndex(DailyRecordCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "area_code", Value: 1},
			{Key: "date", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}

	return m.createIndex(DailyRecordCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "area_name", Value: 1},
			{Key: "date", Value: -1},
		},
	})
}

func (m *MongoDBIndexer) IndexAgeGenderSnapshotCollection() error {
	return m.createIndex(AgeGenderSnapshotCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "area_name", Value: 1},
			{Key: "date", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
}
