package entity

import "time"

// Company representa una empresa cuyo stock se administra (enfoque Brasil).
type Company struct {
	ID        string
	Name      string
	CNPJ      string // CNPJ brasileño, formato libre (con o sin puntuación)
	CreatedAt time.Time
	UpdatedAt time.Time
}
