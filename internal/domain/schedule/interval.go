package schedule

import "time"

// Interval é meio-aberto: [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps segue a regra de colisão de intervalos meio-abertos:
// [s1,e1) e [s2,e2) colidem sse s1 < e2 && s2 < e1.
// Intervalos adjacentes (fim de um == início do outro) não colidem.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

// Contains verifica se t cai dentro do intervalo.
func (i Interval) Contains(t time.Time) bool {
	return !t.Before(i.Start) && t.Before(i.End)
}

func (i Interval) Valid() bool {
	return i.End.After(i.Start)
}

func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// ConflictsAny verifica o candidato contra uma lista de intervalos ocupados.
func ConflictsAny(busy []Interval, candidate Interval) bool {
	for _, b := range busy {
		if candidate.Overlaps(b) {
			return true
		}
	}
	return false
}
