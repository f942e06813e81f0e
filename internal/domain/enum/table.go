package enum

// TableShape is presentational only; it has no effect on billing.
type TableShape string

const (
	TableShapeRound  TableShape = "round"
	TableShapeSquare TableShape = "square"
)

// TableState is derived from a table's occupancy and bill.
type TableState string

const (
	TableStateEmpty    TableState = "EMPTY"
	TableStateOccupied TableState = "OCCUPIED"
)
