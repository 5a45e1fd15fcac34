package main

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/ukcovid-dashboard/external/ukcovid"
	"github.com/bitmark-inc/ukcovid-dashboard/store"
)

type dailyCrawler struct {
	mongoStore store.MongoStore
	area       string
	fetcher    ukcovid.Fetcher
}

func (c dailyCrawler) Run(ctx context.Context) error {
	records, err := c.fetcher.DailyRecords(ctx, c.area)
	if nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "area": c.area, "error": err}).Error("daily records from endpoint")
		return err
	}

	count, err := c.mongoStore.UpsertDailyRecords(ctx, records)
	if err != nil {
		log.WithFields(log.Fields{"prefix": logPrefix, "area": c.area, "error": err}).Error("archive daily records")
		return err
	}

	fields := log.Fields{
		"prefix":  logPrefix,
		"area":    c.area,
		"fetched": len(records),
		"changed": count,
	}

	// records carry the feed's area name, e.g. "United Kingdom" for overview
	if len(records) > 0 {
		latest, err := c.mongoStore.LatestDailyRecord(ctx, records[0].AreaName)
		if err != nil {
			log.WithFields(log.Fields{"prefix": logPrefix, "area": c.area, "error": err}).Warn("latest archived record")
		} else {
			fields["latest"] = latest.Date
		}
	}

	log.WithFields(fields).Info("daily records archived")
	return nil
}

// newDailyCrawler - new cron job archiving the daily records of an area
func newDailyCrawler(area string, mongoStore store.MongoStore, fetcher ukcovid.Fetcher) Cron {
	return &dailyCrawler{
		mongoStore: mongoStore,
		area:       area,
		fetcher:    fetcher,
	}
}
