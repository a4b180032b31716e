// internal/domain/models/statuscount.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StatusCount is one row of the status_counts collection.
// There is exactly one document per Status; Position mirrors display order
// so the collection can be read back sorted without consulting the code.
type StatusCount struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Status    Status             `bson:"status" json:"status"`
	Count     int                `bson:"count" json:"count"`
	Position  int                `bson:"position" json:"position"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}
