package model

// DeviceStatus is the lifecycle state of a repair ticket. Transitions are not
// guarded: staff move tickets freely and the table below only drives customer
// messaging. Keeping it permissive is a product decision, not an oversight.
type DeviceStatus string

const (
	StatusNew          DeviceStatus = "NEW"
	StatusReceived     DeviceStatus = "RECEIVED"
	StatusInProgress   DeviceStatus = "IN_PROGRESS"
	StatusWaitingParts DeviceStatus = "WAITING_PARTS"
	StatusNoParts      DeviceStatus = "NO_PARTS"
	StatusReady        DeviceStatus = "READY"
	StatusDelivered    DeviceStatus = "DELIVERED"
	StatusRefused      DeviceStatus = "REFUSED"
	StatusCanceled     DeviceStatus = "CANCELED"
)

// DeviceStatuses lists every known status, in workflow order.
var DeviceStatuses = []DeviceStatus{
	StatusNew,
	StatusReceived,
	StatusInProgress,
	StatusWaitingParts,
	StatusNoParts,
	StatusReady,
	StatusDelivered,
	StatusRefused,
	StatusCanceled,
}

// Known reports whether s is one of the workflow statuses. The column itself
// is free-form, so the check belongs at the request boundary.
func (s DeviceStatus) Known() bool {
	for _, known := range DeviceStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// CanNotify reports whether outbound customer messaging is allowed for the
// status. NO_PARTS is internal-only and must never reach the customer.
func (s DeviceStatus) CanNotify() bool {
	return s != StatusNoParts
}

// TemplateCode returns the default notification template code for the status,
// or "" when no status-keyed template exists.
func (s DeviceStatus) TemplateCode() string {
	switch s {
	case StatusReceived:
		return "RECEIVED"
	case StatusWaitingParts:
		return "WAITING_PARTS"
	case StatusReady:
		return "READY"
	case StatusDelivered:
		return "DELIVERED"
	}
	return ""
}

// Channel is the outbound messaging channel of a template or log entry.
type Channel string

const (
	ChannelWhatsApp Channel = "WHATSAPP"
	ChannelSMS      Channel = "SMS"
)

// MessageStatus is the state a message log row is written with. "SENT" means
// the deep link was handed to the caller, not that a carrier delivered
// anything; refused composes fail before a row exists, so it is the only
// value ever persisted.
type MessageStatus string

const MessageStatusSent MessageStatus = "SENT"
