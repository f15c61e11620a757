package databases

// go generate: mockery --name AccountDatabase

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/legalaid-ng/legalaid-api/models"
)

const accountName = "accounts"

// AccountDatabase contains the methods to use with the account database
type AccountDatabase interface {
	Insert(ctx context.Context, account *models.Account) error
	FindByID(ctx context.Context, id string) (*models.Account, error)
	FindByEmail(ctx context.Context, email string) (*models.Account, error)
	FindByRole(ctx context.Context, role models.Role, limit int64) ([]models.Account, error)
}

type accountDatabase struct {
	db DatabaseHelper
}

// NewAccountDatabase initializes a new instance of account database with the provided db connection
func NewAccountDatabase(db DatabaseHelper) AccountDatabase {
	return &accountDatabase{
		db: db,
	}
}

func (a *accountDatabase) Insert(ctx context.Context, account *models.Account) error {
	account.Details.Email = strings.ToLower(strings.TrimSpace(account.Details.Email))
	_, err := a.db.Collection(accountName).InsertOne(ctx, account)
	return translate("insert account", err)
}

func (a *accountDatabase) FindByID(ctx context.Context, id string) (*models.Account, error) {
	return a.findOne(ctx, bson.M{"_id": id})
}

func (a *accountDatabase) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	return a.findOne(ctx, bson.M{"account.email": strings.ToLower(strings.TrimSpace(email))})
}

func (a *accountDatabase) findOne(ctx context.Context, filter bson.M) (*models.Account, error) {
	account := &models.Account{}
	err := a.db.Collection(accountName).FindOne(ctx, filter).Decode(&account)
	if err != nil {
		return nil, translate("find account", err)
	}
	return account, nil
}

func (a *accountDatabase) FindByRole(ctx context.Context, role models.Role, limit int64) ([]models.Account, error) {
	opts := newMongoPaginate(limit, 1).getPaginatedOpts(bson.D{{Key: "account.createdAt", Value: -1}})
	cursor, err := a.db.Collection(accountName).Find(ctx, bson.M{"account.role": role}, opts)
	if err != nil {
		return nil, translate("find accounts", err)
	}
	defer cursor.Close(ctx)

	var accounts []models.Account
	if err := cursor.All(ctx, &accounts); err != nil {
		return nil, translate("decode accounts", err)
	}
	return accounts, nil
}
