package responses

type Appointment struct {
	Name      string `json:"name"`
	Day       string `json:"day"`
	DayNumber int    `json:"day_number"`
	Hour      int    `json:"hour"`
	SlotLabel string `json:"slot_label"`
}

type CreateAppointment struct {
	Appointment
	Message string `json:"message"`
}

type AvailableSlot struct {
	Day       string `json:"day"`
	DayNumber int    `json:"day_number"`
	Hour      int    `json:"hour"`
	SlotLabel string `json:"slot_label"`
}

type AppointmentSnapshot struct {
	Bucket     string `json:"bucket"`
	ObjectName string `json:"object_name"`
	Records    int    `json:"records"`
	Size       int64  `json:"size"`
}
