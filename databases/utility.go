package databases

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoPaginate struct {
	limit int64
	page  int64
}

func newMongoPaginate(limit, page int64) *mongoPaginate {
	if page < 1 {
		page = 1
	}
	return &mongoPaginate{
		limit: limit,
		page:  page,
	}
}

func (mp *mongoPaginate) getPaginatedOpts(sort bson.D) *options.FindOptions {
	fOpt := options.Find().SetSort(sort)
	if mp.limit <= 0 {
		return fOpt
	}
	skip := mp.page*mp.limit - mp.limit
	return fOpt.SetLimit(mp.limit).SetSkip(skip)
}
