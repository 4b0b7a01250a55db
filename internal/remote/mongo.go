package remote

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"menu-planner/internal/logger"
	"menu-planner/internal/model"
)

const (
	usersCollection   = "users"
	recipesCollection = "recipes"
	plansCollection   = "menu_plans"
)

// MongoStore is the Store implementation over a MongoDB database.
type MongoStore struct {
	db      *mongo.Database
	log     *logger.Logger
	timeout time.Duration
}

// Connect dials MongoDB and returns a MongoStore bound to the named database.
func Connect(ctx context.Context, uri, dbName string, timeout time.Duration, log *logger.Logger) (*MongoStore, error) {
	dialCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	clientOptions := options.Client().ApplyURI(uri)
	clientOptions.SetServerSelectionTimeout(timeout)

	client, err := mongo.Connect(dialCtx, clientOptions)
	if err != nil {
		return nil, &RemoteUnavailable{Op: "connect", Err: err}
	}

	pingCtx, pingCancel := context.WithTimeout(ctx, timeout)
	defer pingCancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, &RemoteUnavailable{Op: "ping", Err: err}
	}

	return &MongoStore{db: client.Database(dbName), log: log, timeout: timeout}, nil
}

// Close disconnects the underlying client.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.db.Client().Disconnect(ctx)
}

func (s *MongoStore) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

func (s *MongoStore) FetchUser(ctx context.Context, id string) (*model.User, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	var doc userDoc
	err := s.db.Collection(usersCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, &RemoteUnavailable{Op: "fetch user", Err: err}
	}

	u, err := userFromDoc(doc)
	if err != nil {
		return nil, &DecodeError{Collection: usersCollection, Key: id, Err: err}
	}
	return &u, nil
}

func (s *MongoStore) PutUser(ctx context.Context, u model.User) error {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	_, err := s.db.Collection(usersCollection).
		ReplaceOne(ctx, bson.M{"_id": u.ID}, userToDoc(u), opts)
	if err != nil {
		return &RemoteUnavailable{Op: "put user", Err: err}
	}
	return nil
}

func (s *MongoStore) FetchAllRecipes(ctx context.Context) ([]model.Recipe, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	col := s.db.Collection(recipesCollection)
	cur, err := col.Find(ctx, bson.M{})
	if err != nil {
		return nil, &RemoteUnavailable{Op: "fetch recipes", Err: err}
	}
	defer cur.Close(ctx)

	var recipes []model.Recipe
	for cur.Next(ctx) {
		var doc recipeDoc
		if err := cur.Decode(&doc); err != nil {
			s.log.Warnw("skipping undecodable recipe document", "error", err)
			continue
		}
		rec, err := recipeFromDoc(doc)
		if err != nil {
			s.log.Warnw("skipping malformed recipe document", "id", doc.ID, "error", err)
			continue
		}
		recipes = append(recipes, rec)
	}
	if err := cur.Err(); err != nil {
		return nil, &RemoteUnavailable{Op: "fetch recipes", Err: err}
	}

	return recipes, nil
}

// PutRecipes upserts the batch by id in one bulk write.
func (s *MongoStore) PutRecipes(ctx context.Context, recipes []model.Recipe) error {
	if len(recipes) == 0 {
		return nil
	}

	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	writes := make([]mongo.WriteModel, 0, len(recipes))
	for _, rec := range recipes {
		writes = append(writes, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": rec.ID}).
			SetReplacement(recipeToDoc(rec)).
			SetUpsert(true))
	}

	_, err := s.db.Collection(recipesCollection).BulkWrite(ctx, writes)
	if err != nil {
		return &RemoteUnavailable{Op: "put recipes", Err: err}
	}
	return nil
}

func (s *MongoStore) PutPlan(ctx context.Context, key string, p model.MenuPlan) error {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	_, err := s.db.Collection(plansCollection).
		ReplaceOne(ctx, bson.M{"_id": key}, planToDoc(key, p), opts)
	if err != nil {
		return &RemoteUnavailable{Op: "put plan", Err: err}
	}
	return nil
}

func (s *MongoStore) DeletePlansMatching(ctx context.Context, planID int64) (int64, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	res, err := s.db.Collection(plansCollection).DeleteMany(ctx, bson.M{"plan_id": planID})
	if err != nil {
		return 0, &RemoteUnavailable{Op: "delete plans", Err: err}
	}
	return res.DeletedCount, nil
}
