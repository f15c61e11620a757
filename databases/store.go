package databases

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store bundles the repositories the actions work with, whatever the backend
type Store struct {
	Accounts      AccountDatabase
	Cases         CaseDatabase
	Hearings      HearingDatabase
	CoverLetters  CoverLetterDatabase
	Notifications NotificationDatabase
	Tx            Transactor
}

// NewMongoStore wires every mongo backed repository to the same database
func NewMongoStore(db DatabaseHelper) *Store {
	return &Store{
		Accounts:      NewAccountDatabase(db),
		Cases:         NewCaseDatabase(db),
		Hearings:      NewHearingDatabase(db),
		CoverLetters:  NewCoverLetterDatabase(db),
		Notifications: NewNotificationDatabase(db),
		Tx:            NewTransactor(db.Client()),
	}
}

type indexSpec struct {
	collection string
	keys       bson.D
	unique     bool
}

var indexes = []indexSpec{
	{collection: accountName, keys: bson.D{{Key: "account.email", Value: 1}}, unique: true},
	{collection: accountName, keys: bson.D{{Key: "account.role", Value: 1}, {Key: "account.createdAt", Value: -1}}},
	{collection: caseName, keys: bson.D{{Key: "case.caseNumber", Value: 1}}, unique: true},
	{collection: caseName, keys: bson.D{{Key: "case.userId", Value: 1}, {Key: "case.createdAt", Value: -1}}},
	{collection: caseName, keys: bson.D{{Key: "case.lawyerId", Value: 1}, {Key: "case.status", Value: 1}}},
	{collection: hearingName, keys: bson.D{{Key: "hearing.caseId", Value: 1}, {Key: "hearing.date", Value: 1}}},
	{collection: coverLetterName, keys: bson.D{{Key: "coverLetter.caseId", Value: 1}}},
	{collection: notificationName, keys: bson.D{{Key: "notification.recipientId", Value: 1}, {Key: "notification.createdAt", Value: -1}}},
	{collection: notificationName, keys: bson.D{{Key: "notification.emailStatus", Value: 1}}},
}

// EnsureIndexes creates the indexes the application relies on, including the unique
// ones on account email and case number
func EnsureIndexes(ctx context.Context, db DatabaseHelper) error {
	for _, spec := range indexes {
		model := mongo.IndexModel{Keys: spec.keys}
		if spec.unique {
			model.Options = options.Index().SetUnique(true)
		}
		if _, err := db.Collection(spec.collection).CreateIndex(ctx, model); err != nil {
			return fmt.Errorf("create index on %s: %w", spec.collection, err)
		}
	}
	return nil
}
