package blog

import "go.mongodb.org/mongo-driver/bson/primitive"

// Author identifies the writer of a post.
type Author struct {
	ID   string `json:"id" bson:"id"`
	Name string `json:"name" bson:"name"`
}

// BlogPost is the persistent blog model. The slug is a unique,
// human-readable alternate key; date is stored as display-formatted text
// ("January 5, 2024") and stamped server-side at creation.
type BlogPost struct {
	ID       primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title    string             `json:"title" bson:"title"`
	Content  string             `json:"content" bson:"content"`
	Excerpt  string             `json:"excerpt" bson:"excerpt"`
	Author   Author             `json:"author" bson:"author"`
	Category string             `json:"category" bson:"category"`
	Image    string             `json:"image" bson:"image"`
	Date     string             `json:"date" bson:"date"`
	Tags     []string           `json:"tags" bson:"tags"`
	Slug     string             `json:"slug" bson:"slug"`
}

// UpdateFields carries a partial update; only non-nil fields overwrite.
type UpdateFields struct {
	Title    *string   `json:"title"`
	Content  *string   `json:"content"`
	Excerpt  *string   `json:"excerpt"`
	Author   *Author   `json:"author"`
	Category *string   `json:"category"`
	Image    *string   `json:"image"`
	Date     *string   `json:"date"`
	Tags     *[]string `json:"tags"`
	Slug     *string   `json:"slug"`
}
