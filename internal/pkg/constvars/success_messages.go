package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	CreateAppointmentSuccessMessage     = "Appointment booked for %s on %s at %d:00"
	GetAppointmentSuccessMessage        = "get appointments successfully"
	GetAvailableSlotsSuccessMessage     = "get available slots successfully"
	ExportAppointmentSnapshotSuccessMsg = "appointment snapshot exported successfully"
	GetLoadClustersSuccessMessage       = "get appointment load clusters successfully"
	HealthCheckSuccessMessage           = "service is healthy"
)
