package database

import (
	"context"
	"errors"
	"log"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/gestorx/vendas-api/internal/entity"
)

type SaleRepository struct {
	Coll *mongo.Collection
}

func NewSaleRepository(db *mongo.Database) *SaleRepository {
	return &SaleRepository{Coll: db.Collection(CollectionSales)}
}

func (r *SaleRepository) Create(ctx context.Context, sale *entity.Sale) error {
	if _, err := r.Coll.InsertOne(ctx, sale); err != nil {
		log.Printf("Erro crítico no banco: %v", err)
		return err
	}
	return nil
}

func (r *SaleRepository) FindByID(ctx context.Context, id string) (*entity.Sale, error) {
	var sale entity.Sale
	err := r.Coll.FindOne(ctx, bson.M{"_id": id}).Decode(&sale)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrSaleNotFound
		}
		return nil, err
	}

	// A normalização roda na borda de leitura: ninguém acima vê o estágio
	// legado "fechado" nem campos obrigatórios vazios.
	sale.Normalize()
	return &sale, nil
}

func (r *SaleRepository) FindAll(ctx context.Context) ([]entity.Sale, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.Coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var sales []entity.Sale
	if err := cursor.All(ctx, &sales); err != nil {
		return nil, err
	}

	for i := range sales {
		sales[i].Normalize()
	}
	return sales, nil
}

// Update regrava o documento inteiro ($set completo): o formulário de edição
// sempre reenvia todos os campos.
func (r *SaleRepository) Update(ctx context.Context, sale *entity.Sale) error {
	result, err := r.Coll.ReplaceOne(ctx, bson.M{"_id": sale.ID}, sale)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return entity.ErrSaleNotFound
	}
	return nil
}

func (r *SaleRepository) Delete(ctx context.Context, id string) error {
	result, err := r.Coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return entity.ErrSaleNotFound
	}
	return nil
}
