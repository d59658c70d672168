package request

// AddSlotRequest is validated again by the manager; binding only rejects
// missing fields.
type AddSlotRequest struct {
	ID       int    `json:"id" binding:"required"`
	Location string `json:"location" binding:"required"`
}
