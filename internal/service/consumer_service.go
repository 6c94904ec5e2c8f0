package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"talentflow-be/internal/dto"
	"talentflow-be/internal/entity"
	"talentflow-be/internal/pkg/mailer"
	"talentflow-be/internal/repository/specification"
	"talentflow-be/internal/repository/unitofwork"
	internalWS "talentflow-be/internal/websocket"
	"talentflow-be/pkg/events"
	pktNats "talentflow-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the freelancer.lifecycle topic: every message
// becomes an audit-trail activity row, a board broadcast, a NATS event for
// external systems, and optionally an email to the freelancer.
type consumerService struct {
	pubSub         *gochannel.GoChannel
	topicName      string
	uowFactory     unitofwork.RepositoryFactory
	emailService   mailer.IEmailService
	eventPublisher *pktNats.Publisher
	hub            *internalWS.Hub
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	eventPublisher *pktNats.Publisher,
	hub *internalWS.Hub,
) IConsumerService {
	return &consumerService{
		pubSub:         pubSub,
		topicName:      topicName,
		uowFactory:     uowFactory,
		emailService:   emailService,
		eventPublisher: eventPublisher,
		hub:            hub,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.LifecycleMessage
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		log.Printf("[ERROR] Failed to unmarshal lifecycle message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Processing lifecycle event %s for freelancer %s", payload.EventType, payload.FreelancerId)

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	freelancer, err := uow.FreelancerRepository().FindOne(ctx, specification.ByID{ID: payload.FreelancerId})
	if err != nil {
		log.Printf("[ERROR] Failed to get freelancer %s: %v", payload.FreelancerId, err)
		msg.Nack() // Nack for retriable errors
		return
	}
	if freelancer == nil {
		log.Printf("[ERROR] Freelancer not found: %s", payload.FreelancerId)
		msg.Ack() // Deleted in the meantime? Ack.
		return
	}

	activity := &entity.Activity{
		Id:           uuid.New(),
		FreelancerId: payload.FreelancerId,
		ActorId:      payload.ActorId,
		Type:         payload.EventType,
		Description:  payload.Description,
		Details:      payload.Details,
		CreatedAt:    time.Now(),
	}
	if err := uow.ActivityRepository().Create(ctx, activity); err != nil {
		log.Printf("[ERROR] Failed to record activity for freelancer %s: %v", payload.FreelancerId, err)
		msg.Nack()
		return
	}

	// Live board update for connected operators.
	if cs.hub != nil {
		cs.hub.Broadcast(internalWS.BoardUpdate{
			EventType:    string(payload.EventType),
			FreelancerId: payload.FreelancerId,
			Description:  payload.Description,
			Details:      payload.Details,
			OccurredAt:   activity.CreatedAt,
		})
	}

	// Relay to the external bus; auxiliary, never blocks the ack.
	if cs.eventPublisher != nil {
		evt := events.NewLifecycleEvent(string(payload.EventType), payload.FreelancerId, payload.ActorId, payload.Description, payload.Details)
		if err := cs.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to relay %s event to NATS: %v\n", payload.EventType, err)
		}
	}

	if payload.NotifyEmail && cs.emailService != nil {
		cs.notifyFreelancer(freelancer, payload)
	}

	msg.Ack()
}

func (cs *consumerService) notifyFreelancer(f *entity.Freelancer, payload dto.LifecycleMessage) {
	switch payload.EventType {
	case entity.ActivityStageMoved:
		stage, _ := payload.Details["to_stage"].(string)
		if stage == "" {
			stage = string(f.Status)
		}
		go func() {
			if err := cs.emailService.SendStageUpdate(f.Email, f.FullName, stage); err != nil {
				fmt.Printf("[WARN] Failed to send stage update email to %s: %v\n", f.Email, err)
			}
		}()
	case entity.ActivityQuizAssigned:
		title, _ := payload.Details["quiz_title"].(string)
		link, _ := payload.Details["quiz_link"].(string)
		go func() {
			if err := cs.emailService.SendQuizInvite(f.Email, f.FullName, title, link); err != nil {
				fmt.Printf("[WARN] Failed to send quiz invite email to %s: %v\n", f.Email, err)
			}
		}()
	case entity.ActivityDocumentSent:
		title, _ := payload.Details["document_title"].(string)
		link, _ := payload.Details["sign_link"].(string)
		go func() {
			if err := cs.emailService.SendDocumentRequest(f.Email, f.FullName, title, link); err != nil {
				fmt.Printf("[WARN] Failed to send document request email to %s: %v\n", f.Email, err)
			}
		}()
	}
}
