package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/couleurbar/theke-system/internal/core/domain"
)

const collectionSessions = "sessions"

type SessionRepository struct {
	col *mongo.Collection
}

func NewSessionRepository(db *mongo.Database) *SessionRepository {
	return &SessionRepository{col: db.Collection(collectionSessions)}
}

// Create inserts a new session. The partial unique index on active status
// turns a concurrent second create into a duplicate key error, so two
// admins racing the "no active session" check cannot both win.
func (r *SessionRepository) Create(ctx context.Context, s *domain.Session) (*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, s)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrActiveSessionExists
		}
		return nil, err
	}
	return s, nil
}

// FindActive returns the active session, or (nil, nil) when none exists.
func (r *SessionRepository) FindActive(ctx context.Context) (*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var s domain.Session
	err := r.col.FindOne(ctx, bson.M{"status": domain.SessionActive}).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *SessionRepository) FindByID(ctx context.Context, id string) (*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var s domain.Session
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}
	return &s, nil
}

// List returns all sessions, newest first.
func (r *SessionRepository) List(ctx context.Context) ([]*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "startTime", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var sessions []*domain.Session
	if err := cur.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// Close sets the terminal closed status and stamps endTime.
func (r *SessionRepository) Close(ctx context.Context, id string, endTime time.Time) (*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	after := options.After
	var s domain.Session
	err := r.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": domain.SessionClosed, "endTime": endTime.UTC()}},
		options.FindOneAndUpdate().SetReturnDocument(after),
	).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}
	return &s, nil
}

// ApplyOrderTotals increments the session aggregates with $inc so that
// concurrent settlements never lose updates, then writes the popular
// product with a guarded $set that only matches while the field is unset
// (first-write-wins).
func (r *SessionRepository) ApplyOrderTotals(ctx context.Context, id string, amount float64, productsSold int, topProduct string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$inc": bson.M{
			"totalRevenue":                 amount,
			"statistics.totalProductsSold": productsSold,
		},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrSessionNotFound
	}

	if topProduct == "" {
		return nil
	}

	// Matches while the field is absent, null, or empty; a no-op otherwise.
	_, err = r.col.UpdateOne(ctx, bson.M{
		"_id":                           id,
		"statistics.mostPopularProduct": bson.M{"$in": bson.A{nil, ""}},
	}, bson.M{
		"$set": bson.M{"statistics.mostPopularProduct": topProduct},
	})
	return err
}

// EnsureIndexes creates the indexes required on the sessions collection,
// most importantly the single-active-session guard.
func (r *SessionRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "status", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"status": string(domain.SessionActive)}),
		},
		{Keys: bson.D{{Key: "startTime", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
