package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"shogi_insight/internal/domain/analysis"
	appErrors "shogi_insight/internal/errors"
)

const analysesCollection = "analyses"

type MongoAnalysisArchive struct {
	log   *zap.SugaredLogger
	mongo *mongo.Database
}

func NewMongoAnalysisArchive(log *zap.SugaredLogger, mongo *mongo.Database) *MongoAnalysisArchive {
	return &MongoAnalysisArchive{
		log:   log,
		mongo: mongo,
	}
}

func (m *MongoAnalysisArchive) Save(ctx context.Context, a analysis.Analysis) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := m.mongo.Collection(analysesCollection).InsertOne(ctx, a)
	if err != nil {
		m.log.Errorf("failed to insert analysis: %v", err)
		return fmt.Errorf("insert analysis: %w", err)
	}
	m.log.Debugf("analysis stored with id: %s", a.ID)
	return nil
}

func (m *MongoAnalysisArchive) Get(ctx context.Context, id string) (analysis.Analysis, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var a analysis.Analysis
	err := m.mongo.Collection(analysesCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return analysis.Analysis{}, fmt.Errorf("%w: %s", appErrors.ErrAnalysisNotFound, id)
		}
		return analysis.Analysis{}, fmt.Errorf("find analysis: %w", err)
	}
	return a, nil
}

// Recent lists the latest analyses, newest first.
func (m *MongoAnalysisArchive) Recent(ctx context.Context, limit int) ([]analysis.Analysis, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(int64(limit))
	cursor, err := m.mongo.Collection(analysesCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find analyses: %w", err)
	}
	defer cursor.Close(ctx)

	out := []analysis.Analysis{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode analyses: %w", err)
	}
	return out, nil
}
