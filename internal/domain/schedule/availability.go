package schedule

import "time"

// Janela de funcionamento padrão quando o profissional não tem
// grade semanal cadastrada para o dia.
const (
	DefaultOpenHour  = 6
	DefaultCloseHour = 23

	SlotStep = 30 * time.Minute
)

// DayWindow monta a janela de atendimento do dia no fuso da data.
func DayWindow(date time.Time) Interval {
	loc := date.Location()
	return Interval{
		Start: time.Date(date.Year(), date.Month(), date.Day(), DefaultOpenHour, 0, 0, 0, loc),
		End:   time.Date(date.Year(), date.Month(), date.Day(), DefaultCloseHour, 0, 0, 0, loc),
	}
}

// FreeSlots enumera os horários livres dentro da janela, andando em passos
// fixos de SlotStep. Um slot entra quando o serviço inteiro cabe antes do
// fechamento e a janela [slot, slot+duration) não colide com nenhum
// intervalo ocupado. Função pura: mesma entrada, mesma saída.
func FreeSlots(window Interval, duration time.Duration, busy []Interval) []Interval {
	var slots []Interval

	for cur := window.Start; !cur.Add(duration).After(window.End); cur = cur.Add(SlotStep) {
		candidate := Interval{Start: cur, End: cur.Add(duration)}

		if ConflictsAny(busy, candidate) {
			continue
		}

		slots = append(slots, candidate)
	}

	return slots
}
