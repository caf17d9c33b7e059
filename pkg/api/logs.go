package api

import "github.com/LucasAlmeida-cmd/vitalog/internal/models"

// LogRequest is the body of POST /log/criar and PUT /log/atualizar/{id}.
type LogRequest struct {
	Date        string  `json:"data"`
	Emotion     string  `json:"emocao"`
	SleepHours  float64 `json:"horasSono"`
	WaterLiters float64 `json:"aguaLitros"`
	Exercised   bool    `json:"fezExercicio"`
	RestedMind  bool    `json:"descansouMente"`
	Notes       string  `json:"notas"`
}

// LogsPage is the paginated envelope returned by GET /log/meusLogs.
// Only Content is consumed by the client; the page metadata is kept for
// completeness of the contract.
type LogsPage struct {
	Content       []models.LogEntry `json:"content"`
	TotalElements int               `json:"totalElements"`
	TotalPages    int               `json:"totalPages"`
	Number        int               `json:"number"`
	Size          int               `json:"size"`
}
