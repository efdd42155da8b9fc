package appointmentRepo

import (
	"context"
	"fmt"

	"barberia/models"

	"cloud.google.com/go/firestore"
)

type firestoreAppointmentRepo struct {
	client *firestore.Client
	coll   *firestore.CollectionRef
}

// NewFirestoreAppointmentRepo constructs a Firestore AppointmentRepository.
func NewFirestoreAppointmentRepo(client *firestore.Client, collection string) *firestoreAppointmentRepo {
	return &firestoreAppointmentRepo{
		client: client,
		coll:   client.Collection(collection),
	}
}

func (r *firestoreAppointmentRepo) FindByBarberAndDate(ctx context.Context, barberID, dateString string) ([]models.Appointment, error) {
	q := r.coll.Where("barberId", "==", barberID).Where("dateString", "==", dateString)
	return r.getAll(ctx, q)
}

func (r *firestoreAppointmentRepo) FindBySlot(ctx context.Context, barberID, dateString, timeSlot string) ([]models.Appointment, error) {
	q := r.coll.
		Where("barberId", "==", barberID).
		Where("dateString", "==", dateString).
		Where("timeSlot", "==", timeSlot)
	return r.getAll(ctx, q)
}

// Insert adds appt as a new document; the generated document id is written back.
func (r *firestoreAppointmentRepo) Insert(ctx context.Context, appt *models.Appointment) error {
	if appt == nil {
		return ErrNilAppointment
	}
	ref, _, err := r.coll.Add(ctx, appt)
	if err != nil {
		return fmt.Errorf("error adding appointment document: %w", err)
	}
	appt.ID = ref.ID
	return nil
}

func (r *firestoreAppointmentRepo) ListAllByDateDesc(ctx context.Context) ([]models.Appointment, error) {
	return r.getAll(ctx, r.coll.OrderBy("date", firestore.Desc))
}

// Ping issues a minimal read; Firestore has no dedicated health call.
func (r *firestoreAppointmentRepo) Ping(ctx context.Context) error {
	_, err := r.coll.Limit(1).Documents(ctx).GetAll()
	return err
}

func (r *firestoreAppointmentRepo) getAll(ctx context.Context, q firestore.Query) ([]models.Appointment, error) {
	docs, err := q.Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("error querying appointments: %w", err)
	}

	appointments := make([]models.Appointment, 0, len(docs))
	for _, doc := range docs {
		var appt models.Appointment
		if err := doc.DataTo(&appt); err != nil {
			return nil, fmt.Errorf("error decoding appointment %s: %w", doc.Ref.ID, err)
		}
		appt.ID = doc.Ref.ID
		appointments = append(appointments, appt)
	}
	return appointments, nil
}
