package request

// MoveTableRequest is a drag-and-drop position. Width and Height describe the
// client's floor area and are optional.
type MoveTableRequest struct {
	X      *float64 `json:"x" binding:"required"`
	Y      *float64 `json:"y" binding:"required"`
	Width  float64  `json:"width" binding:"min=0"`
	Height float64  `json:"height" binding:"min=0"`
}
