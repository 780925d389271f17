package models

// Crop mirrors the cultura table.
type Crop struct {
	ID          int64  `db:"id"`
	Name        string `db:"nome"`
	Type        string `db:"tipo"`
	Cycle       string `db:"ciclo"`
	MeasureUnit string `db:"unidade_medida"`
}
