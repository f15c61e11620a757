package databases

// go generate: mockery --name HearingDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/legalaid-ng/legalaid-api/models"
)

const hearingName = "hearings"

// HearingDatabase contains the methods to use with the court hearing database
type HearingDatabase interface {
	Insert(ctx context.Context, h *models.CourtHearing) error
	Find(ctx context.Context, filter models.HearingFilter) ([]models.CourtHearing, error)
}

type hearingDatabase struct {
	db DatabaseHelper
}

// NewHearingDatabase initializes a new instance of hearing database with the provided db connection
func NewHearingDatabase(db DatabaseHelper) HearingDatabase {
	return &hearingDatabase{
		db: db,
	}
}

func (h *hearingDatabase) Insert(ctx context.Context, hearing *models.CourtHearing) error {
	_, err := h.db.Collection(hearingName).InsertOne(ctx, hearing)
	return translate("insert hearing", err)
}

func (h *hearingDatabase) Find(ctx context.Context, filter models.HearingFilter) ([]models.CourtHearing, error) {
	q := bson.M{}
	if filter.CaseIDs != nil {
		q["hearing.caseId"] = bson.M{"$in": filter.CaseIDs}
	}
	date := bson.M{}
	if !filter.From.IsZero() {
		date["$gte"] = filter.From
	}
	if !filter.To.IsZero() {
		date["$lte"] = filter.To
	}
	if len(date) > 0 {
		q["hearing.date"] = date
	}

	opts := newMongoPaginate(filter.Limit, 1).getPaginatedOpts(bson.D{{Key: "hearing.date", Value: 1}})
	cursor, err := h.db.Collection(hearingName).Find(ctx, q, opts)
	if err != nil {
		return nil, translate("find hearings", err)
	}
	defer cursor.Close(ctx)

	var hearings []models.CourtHearing
	if err := cursor.All(ctx, &hearings); err != nil {
		return nil, translate("decode hearings", err)
	}
	return hearings, nil
}
