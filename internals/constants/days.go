package constants

import "time"

// Spanish weekday names indexed by time.Weekday (0=Domingo..6=Sábado).
// Schedules store the day as its Spanish name, matching the admin UI.
var DayNames = [7]string{"Domingo", "Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado"}

func DayName(d time.Weekday) string {
	return DayNames[int(d)%7]
}
