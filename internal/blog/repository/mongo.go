package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/meeraai/site-backend/internal/blog"
)

// MongoRepo implements a MongoDB-backed repository for blog posts.
type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	// unique index on slug; duplicate inserts fail with a conflict error
	idxModel := mongo.IndexModel{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true)}
	col.Indexes().CreateOne(context.Background(), idxModel)
	return &MongoRepo{col: col}
}

func (m *MongoRepo) List(ctx context.Context) ([]*blog.BlogPost, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cur, err := m.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []*blog.BlogPost{}
	for cur.Next(ctx) {
		var p blog.BlogPost
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		out = append(out, &p)
	}
	return out, cur.Err()
}

func (m *MongoRepo) GetBySlug(ctx context.Context, slug string) (*blog.BlogPost, error) {
	var p blog.BlogPost
	err := m.col.FindOne(ctx, bson.M{"slug": slug}).Decode(&p)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (m *MongoRepo) Create(ctx context.Context, post *blog.BlogPost) error {
	if post.ID.IsZero() {
		post.ID = primitive.NewObjectID()
	}
	if _, err := m.col.InsertOne(ctx, post); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateSlug
		}
		return err
	}
	return nil
}

func (m *MongoRepo) Update(ctx context.Context, id primitive.ObjectID, fields blog.UpdateFields) (*blog.BlogPost, error) {
	set := updateSet(fields)
	if len(set) == 0 {
		// an empty $set is rejected by the server; a no-op update just
		// returns the current document
		var p blog.BlogPost
		if err := m.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
			if err == mongo.ErrNoDocuments {
				return nil, ErrNotFound
			}
			return nil, err
		}
		return &p, nil
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated blog.BlogPost
	err := m.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateSlug
		}
		return nil, err
	}
	return &updated, nil
}

func (m *MongoRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	// unconditional: deleting an absent id still reports success
	_, err := m.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func updateSet(fields blog.UpdateFields) bson.M {
	set := bson.M{}
	if fields.Title != nil {
		set["title"] = *fields.Title
	}
	if fields.Content != nil {
		set["content"] = *fields.Content
	}
	if fields.Excerpt != nil {
		set["excerpt"] = *fields.Excerpt
	}
	if fields.Author != nil {
		set["author"] = *fields.Author
	}
	if fields.Category != nil {
		set["category"] = *fields.Category
	}
	if fields.Image != nil {
		set["image"] = *fields.Image
	}
	if fields.Date != nil {
		set["date"] = *fields.Date
	}
	if fields.Tags != nil {
		set["tags"] = *fields.Tags
	}
	if fields.Slug != nil {
		set["slug"] = *fields.Slug
	}
	return set
}
