package models

import "time"

// Counterparty mirrors the participante table.
type Counterparty struct {
	ID           int64     `db:"id"`
	TaxID        string    `db:"cpf_cnpj"`
	Name         string    `db:"nome"`
	Type         int       `db:"tipo_contraparte"`
	RegisteredAt time.Time `db:"data_cadastro"`
}
