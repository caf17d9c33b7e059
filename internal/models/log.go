package models

// LogEntry is a single day's wellness journal record. The backend owns the
// canonical copy; the client only holds transient snapshots fetched per screen.
type LogEntry struct {
	ID          int64   `json:"id"`
	Date        string  `json:"data"` // calendar date, YYYY-MM-DD
	Emotion     string  `json:"emocao"`
	SleepHours  float64 `json:"horasSono"`
	WaterLiters float64 `json:"aguaLitros"`
	Exercised   bool    `json:"fezExercicio"`
	RestedMind  bool    `json:"descansouMente"`
	Notes       string  `json:"notas"`
	UserID      int64   `json:"usuarioId"`
}
