package main

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/ukcovid-dashboard/external/ukcovid"
	"github.com/bitmark-inc/ukcovid-dashboard/store"
)

type ageGenderCrawler struct {
	mongoStore store.MongoStore
	fetcher    ukcovid.Fetcher
}

func (c ageGenderCrawler) Run(ctx context.Context) error {
	snapshots, err := c.fetcher.AgeGenderSnapshots(ctx)
	if nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "error": err}).Error("age/gender snapshots from endpoint")
		return err
	}

	count, err := c.mongoStore.UpsertSnapshots(ctx, snapshots)
	if err != nil {
		log.WithFields(log.Fields{"prefix": logPrefix, "error": err}).Error("archive age/gender snapshots")
		return err
	}

	log.WithFields(log.Fields{"prefix": logPrefix, "fetched": len(snapshots), "changed": count}).Info("age/gender snapshots archived")
	return nil
}

// newAgeGenderCrawler - new cron job archiving the England age/gender snapshots
func newAgeGenderCrawler(mongoStore store.MongoStore, fetcher ukcovid.Fetcher) Cron {
	return &ageGenderCrawler{
		mongoStore: mongoStore,
		fetcher:    fetcher,
	}
}
