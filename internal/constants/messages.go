package constants

const (
	MsgFlightNotFound   = "Flight not found"
	MsgNoFieldsToUpdate = "No fields to update"
	MsgFlightCreated    = "Flight created"
	MsgFlightUpdated    = "Flight updated"
	MsgFlightDeleted    = "Flight deleted"
	MsgStoreUnavailable = "Flight store unavailable"
)
