package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/taskvault/backend/internal/core/domain"
)

const submissionCollection = "submissions"

// activeStatuses are the submission states that block resubmission and are
// covered by the partial unique index.
var activeStatuses = bson.A{string(domain.StatusPending), string(domain.StatusApproved)}

type SubmissionRepository struct {
	coll *mongo.Collection
}

func NewSubmissionRepository(db *mongo.Database) *SubmissionRepository {
	return &SubmissionRepository{coll: db.Collection(submissionCollection)}
}

type submissionDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	TaskID      string             `bson:"task_id"`
	AccountID   string             `bson:"account_id"`
	FileURL     string             `bson:"file_url"`
	FileKey     string             `bson:"file_key,omitempty"`
	Status      string             `bson:"status"`
	SubmittedAt time.Time          `bson:"submitted_at"`
}

func (d submissionDoc) toDomain() *domain.Submission {
	return &domain.Submission{
		ID:          d.ID.Hex(),
		TaskID:      d.TaskID,
		AccountID:   d.AccountID,
		FileURL:     d.FileURL,
		FileKey:     d.FileKey,
		Status:      domain.SubmissionStatus(d.Status),
		SubmittedAt: d.SubmittedAt.UTC(),
	}
}

// Create inserts a new submission and fills in sub.ID. The partial unique
// index on (task_id, account_id) over active statuses makes this the atomic
// eligibility check: a second active submission for the same pair trips a
// duplicate-key error regardless of request interleaving.
func (r *SubmissionRepository) Create(ctx context.Context, sub *domain.Submission) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := submissionDoc{
		ID:          primitive.NewObjectID(),
		TaskID:      sub.TaskID,
		AccountID:   sub.AccountID,
		FileURL:     sub.FileURL,
		FileKey:     sub.FileKey,
		Status:      string(sub.Status),
		SubmittedAt: sub.SubmittedAt,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrAlreadySubmitted
		}
		return fmt.Errorf("insert submission: %w", err)
	}

	sub.ID = doc.ID.Hex()
	return nil
}

func (r *SubmissionRepository) FindByID(ctx context.Context, id string) (*domain.Submission, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrSubmissionNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc submissionDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("find submission: %w", err)
	}
	return doc.toDomain(), nil
}

// FindByAccount returns the account's submissions, newest first.
func (r *SubmissionRepository) FindByAccount(ctx context.Context, accountID string) ([]*domain.Submission, error) {
	return r.find(ctx, bson.M{"account_id": accountID})
}

// FindActiveTaskIDs returns the distinct task IDs the account still holds a
// Pending or Approved submission for.
func (r *SubmissionRepository) FindActiveTaskIDs(ctx context.Context, accountID string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{
		"account_id": accountID,
		"status":     bson.M{"$in": activeStatuses},
	}

	raw, err := r.coll.Distinct(ctx, "task_id", filter)
	if err != nil {
		return nil, fmt.Errorf("distinct active task ids: %w", err)
	}

	ids := make([]string, 0, len(raw))
	for _, v := range raw {
		if id, ok := v.(string); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// FindAll returns every submission, newest first.
func (r *SubmissionRepository) FindAll(ctx context.Context) ([]*domain.Submission, error) {
	return r.find(ctx, bson.M{})
}

// UpdateStatus overwrites the status of the identified submission. Moving a
// decided submission back into an active status can trip the partial unique
// index when the account has since resubmitted the same task; that surfaces
// as domain.ErrAlreadySubmitted rather than a bare store error.
func (r *SubmissionRepository) UpdateStatus(ctx context.Context, id string, status domain.SubmissionStatus) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrSubmissionNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": bson.M{"status": string(status)}})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrAlreadySubmitted
		}
		return fmt.Errorf("update submission status: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrSubmissionNotFound
	}
	return nil
}

// EnsureIndexes creates the partial unique index enforcing the
// one-active-submission-per-(task,account) invariant, plus the listing
// indexes.
func (r *SubmissionRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "task_id", Value: 1}, {Key: "account_id", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"status": bson.M{"$in": activeStatuses}}),
		},
		{Keys: bson.D{{Key: "account_id", Value: 1}, {Key: "submitted_at", Value: -1}}},
		{Keys: bson.D{{Key: "submitted_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *SubmissionRepository) find(ctx context.Context, filter bson.M) ([]*domain.Submission, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "submitted_at", Value: -1}})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find submissions: %w", err)
	}
	defer cur.Close(ctx)

	var subs []*domain.Submission
	for cur.Next(ctx) {
		var doc submissionDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode submission: %w", err)
		}
		subs = append(subs, doc.toDomain())
	}
	return subs, cur.Err()
}
