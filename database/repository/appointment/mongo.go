package appointmentRepo

import (
	"context"
	"fmt"

	"barberia/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoAppointmentRepo struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoAppointmentRepo constructs a MongoDB AppointmentRepository.
func NewMongoAppointmentRepo(client *mongo.Client, dbName, collection string) *mongoAppointmentRepo {
	return &mongoAppointmentRepo{
		client: client,
		coll:   client.Database(dbName).Collection(collection),
	}
}

func (r *mongoAppointmentRepo) FindByBarberAndDate(ctx context.Context, barberID, dateString string) ([]models.Appointment, error) {
	filter := bson.M{"barberId": barberID, "dateString": dateString}
	return r.find(ctx, filter, options.Find())
}

func (r *mongoAppointmentRepo) FindBySlot(ctx context.Context, barberID, dateString, timeSlot string) ([]models.Appointment, error) {
	filter := bson.M{"barberId": barberID, "dateString": dateString, "timeSlot": timeSlot}
	return r.find(ctx, filter, options.Find())
}

// Insert stores appt, assigning an id when it has none.
func (r *mongoAppointmentRepo) Insert(ctx context.Context, appt *models.Appointment) error {
	if appt == nil {
		return ErrNilAppointment
	}
	if appt.ID == "" {
		appt.ID = uuid.New().String()
	}
	if _, err := r.coll.InsertOne(ctx, appt); err != nil {
		return fmt.Errorf("error inserting appointment: %w", err)
	}
	return nil
}

func (r *mongoAppointmentRepo) ListAllByDateDesc(ctx context.Context) ([]models.Appointment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	return r.find(ctx, bson.M{}, opts)
}

func (r *mongoAppointmentRepo) Ping(ctx context.Context) error {
	return r.client.Ping(ctx, nil)
}

func (r *mongoAppointmentRepo) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Appointment, error) {
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding appointments: %w", err)
	}
	defer cursor.Close(ctx)

	appointments := []models.Appointment{}
	for cursor.Next(ctx) {
		var appt models.Appointment
		if err := cursor.Decode(&appt); err != nil {
			return nil, fmt.Errorf("error decoding appointment: %w", err)
		}
		appointments = append(appointments, appt)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return appointments, nil
}
