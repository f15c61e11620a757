package databases_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/legalaid-ng/legalaid-api/config"
	"github.com/legalaid-ng/legalaid-api/databases"
	"github.com/legalaid-ng/legalaid-api/databases/mocks"
	"github.com/legalaid-ng/legalaid-api/models"
)

func TestNewAccountDatabase(t *testing.T) {
	t.Setenv("DB_URI", "mongodb://127.0.0.1:27017")
	t.Setenv("DB_NAME", "test")
	t.Setenv("SESSION_SECRET", "test-secret")
	conf, err := config.New()
	assert.NoError(t, err)

	dbClient, err := databases.NewClient(conf)
	assert.NoError(t, err)

	db := databases.NewDatabase(conf, dbClient)

	accountDB := databases.NewAccountDatabase(db)

	assert.NotEmpty(t, accountDB)
}

func TestAccountDatabase_FindByEmail(t *testing.T) {

	// define variables for interfaces
	var dbHelper databases.DatabaseHelper
	var collectionHelper databases.CollectionHelper
	var srHelperErr databases.SingleResultHelper
	var srHelperCorrect databases.SingleResultHelper

	// set interfaces implementation to mocked structures
	dbHelper = &mocks.DatabaseHelper{}
	collectionHelper = &mocks.CollectionHelper{}
	srHelperErr = &mocks.SingleResultHelper{}
	srHelperCorrect = &mocks.SingleResultHelper{}

	srHelperErr.(*mocks.SingleResultHelper).
		On("Decode", mock.Anything).
		Return(mongo.ErrNoDocuments)

	srHelperCorrect.(*mocks.SingleResultHelper).
		On("Decode", mock.Anything).
		Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(**models.Account)
		(*arg).ID = "mocked-account"
	})

	collectionHelper.(*mocks.CollectionHelper).
		On("FindOne", context.Background(), bson.M{"account.email": "missing@example.com"}).
		Return(srHelperErr)

	collectionHelper.(*mocks.CollectionHelper).
		On("FindOne", context.Background(), bson.M{"account.email": "ada@example.com"}).
		Return(srHelperCorrect)

	dbHelper.(*mocks.DatabaseHelper).
		On("Collection", "accounts").Return(collectionHelper)

	accountDba := databases.NewAccountDatabase(dbHelper)

	account, err := accountDba.FindByEmail(context.Background(), "missing@example.com")

	assert.Nil(t, account)
	assert.ErrorIs(t, err, databases.ErrNotFound)

	// lookups are case insensitive on the stored, lowercased address
	account, err = accountDba.FindByEmail(context.Background(), "  Ada@Example.com ")

	assert.Equal(t, &models.Account{ID: "mocked-account"}, account)
	assert.NoError(t, err)
}

func TestAccountDatabase_Insert(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	collectionHelper := &mocks.CollectionHelper{}
	dbHelper.On("Collection", "accounts").Return(collectionHelper)

	dup := mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key error"}}}
	collectionHelper.On("InsertOne", context.Background(), mock.MatchedBy(func(a *models.Account) bool {
		return a.ID == "taken"
	})).Return(nil, dup)
	collectionHelper.On("InsertOne", context.Background(), mock.MatchedBy(func(a *models.Account) bool {
		return a.ID == "fresh"
	})).Return(&mocks.InsertOneResultHelper{}, nil)

	accountDba := databases.NewAccountDatabase(dbHelper)

	err := accountDba.Insert(context.Background(), &models.Account{ID: "taken", Details: models.AccountDetails{Email: "a@b.com"}})
	assert.ErrorIs(t, err, databases.ErrDuplicate)

	fresh := &models.Account{ID: "fresh", Details: models.AccountDetails{Email: " New@Example.COM"}}
	err = accountDba.Insert(context.Background(), fresh)
	assert.NoError(t, err)
	assert.Equal(t, "new@example.com", fresh.Details.Email)
}

func TestAccountDatabase_FindByRole(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	collectionHelper := &mocks.CollectionHelper{}
	cursorHelper := &mocks.CursorHelper{}
	dbHelper.On("Collection", "accounts").Return(collectionHelper)

	collectionHelper.On("Find", context.Background(), bson.M{"account.role": models.RoleLawyer}, mock.Anything).
		Return(cursorHelper, nil)
	collectionHelper.On("Find", context.Background(), bson.M{"account.role": models.RoleAdmin}, mock.Anything).
		Return(nil, errors.New("mocked-error"))
	cursorHelper.On("All", context.Background(), mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(1).(*[]models.Account)
		*arg = []models.Account{{ID: "lawyer-1"}, {ID: "lawyer-2"}}
	})
	cursorHelper.On("Close", context.Background()).Return(nil)

	accountDba := databases.NewAccountDatabase(dbHelper)

	lawyers, err := accountDba.FindByRole(context.Background(), models.RoleLawyer, 10)
	assert.NoError(t, err)
	assert.Equal(t, []models.Account{{ID: "lawyer-1"}, {ID: "lawyer-2"}}, lawyers)

	admins, err := accountDba.FindByRole(context.Background(), models.RoleAdmin, 10)
	assert.Empty(t, admins)
	assert.EqualError(t, err, "find accounts: mocked-error")
	cursorHelper.AssertExpectations(t)
}
