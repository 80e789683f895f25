package requests

type CreateAppointmentRequest struct {
	Name string `json:"name" validate:"required,not_blank"`
	Day  string `json:"day" validate:"required,oneof=Monday Tuesday Wednesday Thursday Friday"`
	Hour int    `json:"hour" validate:"required,min=9,max=16"`
}

type FindAvailableSlotsRequest struct {
	Day string `validate:"omitempty,oneof=Monday Tuesday Wednesday Thursday Friday"`
}

type LoadClusteringRequest struct {
	Seed  int64 `validate:"gte=0"`
	Count int   `validate:"min=1,max=5000"`
}
