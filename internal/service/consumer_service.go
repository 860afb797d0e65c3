package service

import (
	"context"
	"encoding/json"
	"log"

	"pawhaven-be/internal/dto"
	"pawhaven-be/internal/pkg/mailer"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the in-process mail queue so HTTP handlers
// never block on SMTP.
type consumerService struct {
	pubSub       *gochannel.GoChannel
	topicName    string
	emailService mailer.IEmailService
}

func NewConsumerService(pubSub *gochannel.GoChannel, topicName string, emailService mailer.IEmailService) IConsumerService {
	return &consumerService{
		pubSub:       pubSub,
		topicName:    topicName,
		emailService: emailService,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var payload dto.SendEmailMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal mail message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	var err error
	switch payload.Kind {
	case dto.EmailKindResetToken:
		err = cs.emailService.SendResetToken(payload.To, payload.Token)
	case dto.EmailKindContactAck:
		err = cs.emailService.SendContactAck(payload.To, payload.Name)
	case dto.EmailKindAdoptionReceipt:
		err = cs.emailService.SendAdoptionReceipt(payload.To, payload.Name, payload.PetName)
	default:
		log.Printf("[WARN] Unknown mail kind %q, dropping", payload.Kind)
		msg.Ack()
		return
	}

	if err != nil {
		log.Printf("[ERROR] Failed to send %s email to %s: %v", payload.Kind, payload.To, err)
		msg.Nack()
		return
	}

	msg.Ack()
}
