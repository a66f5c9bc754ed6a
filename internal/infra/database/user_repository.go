package database

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/gestorx/vendas-api/internal/entity"
)

type UserRepository struct {
	Coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{Coll: db.Collection(CollectionUsers)}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	_, err := r.Coll.InsertOne(ctx, u)
	return err
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	var user entity.User
	err := r.Coll.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindAll traz também os desativados: vendas antigas referenciam esses IDs e
// a resolução de nomes na listagem de clientes precisa deles.
func (r *UserRepository) FindAll(ctx context.Context) ([]entity.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.Coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []entity.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	result, err := r.Coll.ReplaceOne(ctx, bson.M{"_id": u.ID}, u)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return entity.ErrUserNotFound
	}
	return nil
}

// Deactivate é soft-delete: o documento fica no banco, só sai das telas de
// seleção de vendedor.
func (r *UserRepository) Deactivate(ctx context.Context, id string) error {
	update := bson.M{"$set": bson.M{
		"active":     false,
		"updated_at": time.Now(),
	}}

	result, err := r.Coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return entity.ErrUserNotFound
	}
	return nil
}
