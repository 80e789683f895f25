package queries

const (
	GetAllAppointments = `
		SELECT name, day, hour
		FROM appointments
		ORDER BY position
	`

	DeleteAllAppointments = `
		DELETE FROM appointments
	`

	InsertAppointmentPostgres = `
		INSERT INTO appointments (position, name, day, hour)
		VALUES ($1, $2, $3, $4)
	`

	InsertAppointmentSQLite = `
		INSERT INTO appointments (position, name, day, hour)
		VALUES (?, ?, ?, ?)
	`
)
