package databases

// go generate: mockery --name CoverLetterDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/legalaid-ng/legalaid-api/models"
)

const coverLetterName = "coverletters"

// CoverLetterDatabase contains the methods to use with the cover letter database
type CoverLetterDatabase interface {
	Insert(ctx context.Context, cl *models.CoverLetter) error
	FindByCase(ctx context.Context, caseID string) ([]models.CoverLetter, error)
}

type coverLetterDatabase struct {
	db DatabaseHelper
}

// NewCoverLetterDatabase initializes a new instance of cover letter database with the provided db connection
func NewCoverLetterDatabase(db DatabaseHelper) CoverLetterDatabase {
	return &coverLetterDatabase{
		db: db,
	}
}

func (c *coverLetterDatabase) Insert(ctx context.Context, cl *models.CoverLetter) error {
	_, err := c.db.Collection(coverLetterName).InsertOne(ctx, cl)
	return translate("insert cover letter", err)
}

func (c *coverLetterDatabase) FindByCase(ctx context.Context, caseID string) ([]models.CoverLetter, error) {
	opts := newMongoPaginate(0, 1).getPaginatedOpts(bson.D{{Key: "coverLetter.createdAt", Value: 1}})
	cursor, err := c.db.Collection(coverLetterName).Find(ctx, bson.M{"coverLetter.caseId": caseID}, opts)
	if err != nil {
		return nil, translate("find cover letters", err)
	}
	defer cursor.Close(ctx)

	var letters []models.CoverLetter
	if err := cursor.All(ctx, &letters); err != nil {
		return nil, translate("decode cover letters", err)
	}
	return letters, nil
}
