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

type ProspectionRepository struct {
	Coll *mongo.Collection
}

func NewProspectionRepository(db *mongo.Database) *ProspectionRepository {
	return &ProspectionRepository{Coll: db.Collection(CollectionProspections)}
}

func (r *ProspectionRepository) Create(ctx context.Context, p *entity.Prospection) error {
	_, err := r.Coll.InsertOne(ctx, p)
	return err
}

func (r *ProspectionRepository) FindByID(ctx context.Context, id string) (*entity.Prospection, error) {
	var prospection entity.Prospection
	err := r.Coll.FindOne(ctx, bson.M{"_id": id}).Decode(&prospection)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrProspectionNotFound
		}
		return nil, err
	}
	return &prospection, nil
}

func (r *ProspectionRepository) FindAll(ctx context.Context) ([]entity.Prospection, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.Coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var prospections []entity.Prospection
	if err := cursor.All(ctx, &prospections); err != nil {
		return nil, err
	}
	return prospections, nil
}

func (r *ProspectionRepository) Update(ctx context.Context, p *entity.Prospection) error {
	result, err := r.Coll.ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return entity.ErrProspectionNotFound
	}
	return nil
}

func (r *ProspectionRepository) Delete(ctx context.Context, id string) error {
	result, err := r.Coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return entity.ErrProspectionNotFound
	}
	return nil
}

func (r *ProspectionRepository) MarkConverted(ctx context.Context, id, saleID string) error {
	update := bson.M{"$set": bson.M{
		"status":     entity.ProspectionConvertida,
		"sale_id":    saleID,
		"updated_at": time.Now(),
	}}

	result, err := r.Coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return entity.ErrProspectionNotFound
	}
	return nil
}
