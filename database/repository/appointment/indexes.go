// FILE: database/repository/appointment/indexes.go
package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the query indexes on the appointments collection.
// The slot index is not unique; slot exclusivity is only checked by the
// booking engine before insert.
func (r *mongoAppointmentRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// barberId + dateString + timeSlot (availability and taken-slot queries)
		{
			Keys:    bson.D{{Key: "barberId", Value: 1}, {Key: "dateString", Value: 1}, {Key: "timeSlot", Value: 1}},
			Options: options.Index().SetName("barber_date_slot_idx"),
		},
		// admin listing
		{
			Keys:    bson.D{{Key: "date", Value: -1}},
			Options: options.Index().SetName("date_desc_idx"),
		},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create appointment indexes: %w", err)
	}
	return nil
}
