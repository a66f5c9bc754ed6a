package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Nomes das coleções do banco de documentos.
const (
	CollectionSales         = "sales"
	CollectionProducts      = "products"
	CollectionProspections  = "prospections"
	CollectionNotifications = "notifications"
	CollectionUsers         = "users"
	CollectionLoginHistory  = "loginHistory"
)

// NewMongoConnection abre a conexão e testa o Ping antes de devolver.
func NewMongoConnection(uri, dbName string) (*mongo.Client, *mongo.Database, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(10).
		SetMaxConnIdleTime(5 * time.Minute)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx, nil); err != nil {
		return nil, nil, err
	}

	return client, client.Database(dbName), nil
}
