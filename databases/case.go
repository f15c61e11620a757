package databases

// go generate: mockery --name CaseDatabase

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/legalaid-ng/legalaid-api/models"
)

const caseName = "cases"

// CaseDatabase contains the methods to use with the case database
type CaseDatabase interface {
	Insert(ctx context.Context, c *models.Case) error
	FindByID(ctx context.Context, id string) (*models.Case, error)
	FindByNumber(ctx context.Context, caseNumber string) (*models.Case, error)
	Assign(ctx context.Context, caseID, lawyerID string, at time.Time) error
	UpdateStatus(ctx context.Context, caseID string, status models.CaseStatus, at time.Time) error
	Find(ctx context.Context, filter models.CaseFilter) ([]models.Case, error)
	Count(ctx context.Context, filter models.CaseFilter) (int64, error)
}

type caseDatabase struct {
	db DatabaseHelper
}

// NewCaseDatabase initializes a new instance of case database with the provided db connection
func NewCaseDatabase(db DatabaseHelper) CaseDatabase {
	return &caseDatabase{
		db: db,
	}
}

func (c *caseDatabase) Insert(ctx context.Context, cs *models.Case) error {
	_, err := c.db.Collection(caseName).InsertOne(ctx, cs)
	return translate("insert case", err)
}

func (c *caseDatabase) FindByID(ctx context.Context, id string) (*models.Case, error) {
	return c.findOne(ctx, bson.M{"_id": id})
}

func (c *caseDatabase) FindByNumber(ctx context.Context, caseNumber string) (*models.Case, error) {
	return c.findOne(ctx, bson.M{"case.caseNumber": caseNumber})
}

func (c *caseDatabase) findOne(ctx context.Context, filter bson.M) (*models.Case, error) {
	cs := &models.Case{}
	err := c.db.Collection(caseName).FindOne(ctx, filter).Decode(&cs)
	if err != nil {
		return nil, translate("find case", err)
	}
	return cs, nil
}

func (c *caseDatabase) Assign(ctx context.Context, caseID, lawyerID string, at time.Time) error {
	update := bson.M{"$set": bson.M{
		"case.lawyerId":   lawyerID,
		"case.status":     models.CaseStatusAssigned,
		"case.assignedAt": at,
		"case.updatedAt":  at,
	}}
	return c.updateOne(ctx, "assign case", caseID, update)
}

func (c *caseDatabase) UpdateStatus(ctx context.Context, caseID string, status models.CaseStatus, at time.Time) error {
	set := bson.M{
		"case.status":    status,
		"case.updatedAt": at,
	}
	if status == models.CaseStatusClosed {
		set["case.closedAt"] = at
	}
	return c.updateOne(ctx, "update case status", caseID, bson.M{"$set": set})
}

func (c *caseDatabase) updateOne(ctx context.Context, op, caseID string, update bson.M) error {
	res, err := c.db.Collection(caseName).UpdateOne(ctx, bson.M{"_id": caseID}, update)
	if err != nil {
		return translate(op, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}

func (c *caseDatabase) Find(ctx context.Context, filter models.CaseFilter) ([]models.Case, error) {
	opts := newMongoPaginate(filter.Limit, filter.Page).getPaginatedOpts(bson.D{{Key: "case.createdAt", Value: -1}})
	cursor, err := c.db.Collection(caseName).Find(ctx, caseQuery(filter), opts)
	if err != nil {
		return nil, translate("find cases", err)
	}
	defer cursor.Close(ctx)

	var cases []models.Case
	if err := cursor.All(ctx, &cases); err != nil {
		return nil, translate("decode cases", err)
	}
	return cases, nil
}

func (c *caseDatabase) Count(ctx context.Context, filter models.CaseFilter) (int64, error) {
	n, err := c.db.Collection(caseName).CountDocuments(ctx, caseQuery(filter))
	if err != nil {
		return 0, translate("count cases", err)
	}
	return n, nil
}

func caseQuery(filter models.CaseFilter) bson.M {
	q := bson.M{}
	if filter.UserID != "" {
		q["case.userId"] = filter.UserID
	}
	if filter.LawyerID != "" {
		q["case.lawyerId"] = filter.LawyerID
	}
	if len(filter.Statuses) > 0 {
		q["case.status"] = bson.M{"$in": filter.Statuses}
	}
	return q
}
