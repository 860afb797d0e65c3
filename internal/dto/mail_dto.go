package dto

// Email kinds understood by the mail queue consumer.
const (
	EmailKindResetToken      = "reset_token"
	EmailKindContactAck      = "contact_ack"
	EmailKindAdoptionReceipt = "adoption_receipt"
)

// SendEmailMessage is the payload queued on the SEND_EMAIL topic.
type SendEmailMessage struct {
	Kind    string `json:"kind"`
	To      string `json:"to"`
	Name    string `json:"name,omitempty"`
	PetName string `json:"pet_name,omitempty"`
	Token   string `json:"token,omitempty"`
}
