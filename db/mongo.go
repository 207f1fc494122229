package db

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"mrm-cyber-api/config"
	"mrm-cyber-api/internal/logger"
)

var (
	clientOnce sync.Once
	client     *mongo.Client
	db         *mongo.Database
)

// Init establishes the single Mongo connection for the process. A missing
// DATABASE_URL or a failed connection leaves the package in disabled mode:
// Database() returns nil and Enabled() reports false. Init never aborts the
// process; every endpoint degrades per its own policy.
func Init(ctx context.Context) error {
	var initErr error
	clientOnce.Do(func() {
		uri := config.MongoURI()
		if uri == "" {
			logger.Log.Warn("DATABASE_URL not set, running without storage")
			return
		}

		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		cl, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
		if err != nil {
			initErr = err
			return
		}
		// Ping to verify connection
		if err := cl.Ping(ctx, readpref.Primary()); err != nil {
			initErr = err
			return
		}
		client = cl
		db = client.Database(config.MongoDBName())
		logger.Log.Infof("MongoDB connected, database=%s", config.MongoDBName())
	})
	return initErr
}

func Client() *mongo.Client { return client }

// Database returns the shared database handle, nil in disabled mode.
func Database() *mongo.Database { return db }

// Enabled reports whether a storage connection exists. Callers must check
// before attempting writes.
func Enabled() bool { return db != nil }
