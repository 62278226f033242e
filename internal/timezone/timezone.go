package timezone

import "time"

// Fuso único de operação. Todo o motor de agenda trabalha neste fuso;
// não há suporte a fuso por barbearia.
const OperatingTimezone = "America/Sao_Paulo"

func Location() *time.Location {
	loc, err := time.LoadLocation(OperatingTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location())
}
