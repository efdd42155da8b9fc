package config

// Appointment store backends.
const (
	StoreMongo     = "mongo"
	StoreFirestore = "firestore"
	StoreMemory    = "memory"
)

// Mail delivery modes.
const (
	MailDeliveryDirect = "direct"
	MailDeliveryQueued = "queued"
)

// AppointmentsCollection is shared by the Mongo and Firestore stores.
const AppointmentsCollection = "appointments"
