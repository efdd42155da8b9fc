package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"barberia/config"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"google.golang.org/api/option"
)

// MongoClient is the global MongoDB client instance.
var MongoClient *mongo.Client

// FirestoreClient is set when STORE_BACKEND=firestore.
var FirestoreClient *firestore.Client

// InitDB initializes the MongoDB connection.
func InitDB() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(config.AppConfig.DatabaseURL)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatalf("failed to connect to MongoDB: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("failed to ping MongoDB: %v", err)
	}
	MongoClient = client
	log.Println("Connected to MongoDB successfully!")
}

// InitFirestore initializes a Firebase app and its Firestore client.
func InitFirestore() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := newFirestoreClient(ctx, config.AppConfig.FirebaseProjectID, config.AppConfig.FirebaseCredentialsFile)
	if err != nil {
		log.Fatalf("firebase: %v", err)
	}
	FirestoreClient = client
	log.Println("Connected to Firestore successfully!")
}

func newFirestoreClient(ctx context.Context, projectID, credentialsFile string) (*firestore.Client, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	var cfg *firebase.Config
	if projectID != "" {
		cfg = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, cfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing app: %w", err)
	}
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting Firestore client: %w", err)
	}
	return client, nil
}

// Close releases whichever store clients were opened.
func Close(ctx context.Context) {
	if MongoClient != nil {
		if err := MongoClient.Disconnect(ctx); err != nil {
			log.Printf("failed to disconnect MongoDB: %v", err)
		}
	}
	if FirestoreClient != nil {
		if err := FirestoreClient.Close(); err != nil {
			log.Printf("failed to close Firestore: %v", err)
		}
	}
}
