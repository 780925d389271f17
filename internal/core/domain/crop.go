package domain

// Crop is a reference lookup (cultura) for production planning. It carries
// no numeric invariants.
type Crop struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Cycle       string `json:"cycle"`
	MeasureUnit string `json:"measureUnit"`
}
