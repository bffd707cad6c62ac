package appointment

import "math"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled  Status = "agendado"
	StatusConfirmed  Status = "confirmado"
	StatusInProgress Status = "em_andamento"
	StatusCompleted  Status = "concluido"
	StatusCancelled  Status = "cancelado"
	StatusNoShow     Status = "nao_compareceu"
)

func InitialStatus() Status {
	return StatusScheduled
}

func IsValid(s Status) bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusInProgress,
		StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// IsTerminal indica estados finais do ciclo de vida.
func IsTerminal(s Status) bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// BlocksSlot indica se o agendamento ainda ocupa o horário do
// profissional. Apenas cancelamentos liberam o horário.
func BlocksSlot(s Status) bool {
	return s != StatusCancelled
}

// ===============================
// Fidelidade
// ===============================

// LoyaltyPoints calcula os pontos ganhos na conclusão:
// 1 ponto a cada 10 unidades de valor, truncado.
func LoyaltyPoints(totalValue float64) int {
	if totalValue <= 0 {
		return 0
	}
	return int(math.Floor(totalValue / 10))
}

// ShouldAwardPoints garante acúmulo único: só pontua na transição
// para concluido vinda de qualquer outro status.
func ShouldAwardPoints(previous, next Status) bool {
	return next == StatusCompleted && previous != StatusCompleted
}
