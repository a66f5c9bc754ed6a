package database

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/gestorx/vendas-api/internal/entity"
)

// LoginHistoryRepository é append-only: entradas de auditoria não são
// editadas nem removidas.
type LoginHistoryRepository struct {
	Coll *mongo.Collection
}

func NewLoginHistoryRepository(db *mongo.Database) *LoginHistoryRepository {
	return &LoginHistoryRepository{Coll: db.Collection(CollectionLoginHistory)}
}

func (r *LoginHistoryRepository) Create(ctx context.Context, entry *entity.LoginHistory) error {
	_, err := r.Coll.InsertOne(ctx, entry)
	return err
}

func (r *LoginHistoryRepository) FindByUser(ctx context.Context, userID string) ([]entity.LoginHistory, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.Coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []entity.LoginHistory
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
