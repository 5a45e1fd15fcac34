package store

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/ukcovid-dashboard/schema"
)

var ErrNoRecord = fmt.Errorf("no archived record")

// Archive keeps copies of the statistics feeds
type Archive interface {
	UpsertDailyRecords(ctx context.Context, records []schema.DailyRecord) (int64, error)
	UpsertSnapshots(ctx context.Context, snapshots []schema.AgeGenderSnapshot) (int64, error)
	LatestDailyRecord(ctx context.Context, areaName string) (*schema.DailyRecord, error)
}

// UpsertDailyRecords replaces the records keyed by area code and date, and
// returns how many documents were inserted or modified.
func (m *mongoDB) UpsertDailyRecords(ctx context.Context, records []schema.DailyRecord) (int64, error) {
	if len(records) == 0 {
		log.WithField("prefix", mongoLogPrefix).Debug("no daily record to update")
		return 0, nil
	}

	models := make([]mongo.WriteModel, 0, len(records))
	for _, r := range records {
		models = append(models, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"area_code": r.AreaCode, "date": r.Date}).
			SetReplacement(r).
			SetUpsert(true))
	}

	return m.bulkUpsert(ctx, schema.DailyRecordCollection, models)
}

// UpsertSnapshots replaces the age/gender snapshots keyed by area name and date
func (m *mongoDB) UpsertSnapshots(ctx context.Context, snapshots []schema.AgeGenderSnapshot) (int64, error) {
	if len(snapshots) == 0 {
		log.WithField("prefix", mongoLogPrefix).Debug("no snapshot to update")
		return 0, nil
	}

	models := make([]mongo.WriteModel, 0, len(snapshots))
	for _, s := range snapshots {
		models = append(models, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"area_name": s.AreaName, "date": s.Date}).
			SetReplacement(s).
			SetUpsert(true))
	}

	return m.bulkUpsert(ctx, schema.AgeGenderSnapshotCollection, models)
}

func (m *mongoDB) bulkUpsert(ctx context.Context, collection string, models []mongo.WriteModel) (int64, error) {
	opts := options.BulkWrite().SetOrdered(false)
	res, err := m.collection(collection).BulkWrite(ctx, models, opts)
	if err != nil {
		if errs, hasErr := err.(mongo.BulkWriteException); hasErr {
			if 1 == len(errs.WriteErrors) && DuplicateKeyCode == errs.WriteErrors[0].Code {
				log.WithFields(log.Fields{"prefix": mongoLogPrefix, "collection": collection, "err": errs}).Warn("duplicate record on upsert")
				return 0, nil
			}
		}
		log.WithFields(log.Fields{"prefix": mongoLogPrefix, "collection": collection}).Errorf("upsert with error: %s", err)
		return 0, err
	}

	count := res.UpsertedCount + res.ModifiedCount
	log.WithFields(log.Fields{"prefix": mongoLogPrefix, "collection": collection, "records": count}).Debug("upsert data")
	return count, nil
}

// LatestDailyRecord returns the newest archived record of an area
func (m *mongoDB) LatestDailyRecord(ctx context.Context, areaName string) (*schema.DailyRecord, error) {
	opts := options.FindOne().SetSort(bson.M{"date": -1})

	var record schema.DailyRecord
	err := m.collection(schema.DailyRecordCollection).FindOne(ctx, bson.M{"area_name": areaName}, opts).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNoRecord
		}
		return nil, err
	}

	return &record, nil
}
