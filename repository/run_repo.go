package repository

import (
	"context"
	"time"

	"github.com/Gthulhu/priosim/domain"
	"github.com/rs/xid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func prepareRun(run *domain.SimulationRun) {
	if run.ID == "" {
		run.ID = xid.New().String()
	}
	if run.CreatedTime == 0 {
		run.CreatedTime = time.Now().UnixMilli()
	}
}

func (r *repo) InsertRun(ctx context.Context, run *domain.SimulationRun) error {
	if run == nil {
		return domain.ErrNilQueryInput
	}
	prepareRun(run)
	_, err := r.db.Collection(simulationRunCollection).InsertOne(ctx, newRunDocument(run))
	return err
}

func (r *repo) QueryRuns(ctx context.Context, opt *domain.QueryRunOptions) error {
	if opt == nil {
		return domain.ErrNilQueryInput
	}
	filter := bson.M{}
	if len(opt.IDs) > 0 {
		filter["_id"] = bson.M{"$in": opt.IDs}
	}
	if len(opt.Fingerprints) > 0 {
		filter["fingerprint"] = bson.M{"$in": opt.Fingerprints}
	}
	findOpts := options.Find().SetSort(bson.D{{Key: "createdTime", Value: -1}, {Key: "_id", Value: -1}})
	if opt.Limit > 0 {
		findOpts.SetLimit(opt.Limit)
	}

	cursor, err := r.db.Collection(simulationRunCollection).Find(ctx, filter, findOpts)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var doc runDocument
		if err := cursor.Decode(&doc); err != nil {
			return err
		}
		opt.Result = append(opt.Result, doc.toDomain())
	}
	return cursor.Err()
}

func (r *repo) DeleteRun(ctx context.Context, id string) error {
	res, err := r.db.Collection(simulationRunCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
