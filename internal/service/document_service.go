package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"talentflow-be/internal/dto"
	"talentflow-be/internal/entity"
	"talentflow-be/internal/repository/specification"
	"talentflow-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IDocumentService interface {
	Send(ctx context.Context, actorId uuid.UUID, req *dto.SendDocumentRequest) (*dto.DocumentResponse, error)
	UpdateStatus(ctx context.Context, actorId uuid.UUID, req *dto.UpdateDocumentStatusRequest) (*dto.DocumentResponse, error)
	DocumentsFor(ctx context.Context, freelancerId uuid.UUID) ([]*dto.DocumentResponse, error)
}

type documentService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
}

func NewDocumentService(uowFactory unitofwork.RepositoryFactory, publisherService IPublisherService) IDocumentService {
	return &documentService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
	}
}

func (s *documentService) Send(ctx context.Context, actorId uuid.UUID, req *dto.SendDocumentRequest) (*dto.DocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	freelancer, err := uow.FreelancerRepository().FindOne(ctx, specification.ByID{ID: req.FreelancerId})
	if err != nil {
		return nil, err
	}
	if freelancer == nil {
		return nil, errors.New("freelancer not found")
	}

	now := time.Now()
	document := &entity.SignableDocument{
		Id:           uuid.New(),
		FreelancerId: req.FreelancerId,
		Title:        req.Title,
		Kind:         entity.DocumentKind(req.Kind),
		Status:       entity.DocumentStatusSent,
		FileURL:      req.FileURL,
		SentAt:       now,
		CreatedAt:    now,
	}

	if err := uow.DocumentRepository().Create(ctx, document); err != nil {
		return nil, err
	}

	signLink := fmt.Sprintf("%s/documents/%s/sign", os.Getenv("FRONTEND_URL"), document.Id)
	publishLifecycle(ctx, s.publisherService, dto.LifecycleMessage{
		EventType:    entity.ActivityDocumentSent,
		FreelancerId: req.FreelancerId,
		ActorId:      &actorId,
		Description:  fmt.Sprintf("Sent document %q for signature", req.Title),
		Details: map[string]interface{}{
			"document_id":    document.Id.String(),
			"document_title": req.Title,
			"kind":           req.Kind,
			"sign_link":      signLink,
		},
		NotifyEmail: true,
	})

	return documentToResponse(document), nil
}

// UpdateStatus advances the signature lifecycle. A signed NDA also flips
// the freelancer's nda_signed flag so the roster filter sees it.
func (s *documentService) UpdateStatus(ctx context.Context, actorId uuid.UUID, req *dto.UpdateDocumentStatusRequest) (*dto.DocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	document, err := uow.DocumentRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if document == nil {
		return nil, errors.New("document not found")
	}

	now := time.Now()
	status := entity.DocumentStatus(req.Status)
	document.Status = status
	switch status {
	case entity.DocumentStatusViewed:
		document.ViewedAt = &now
	case entity.DocumentStatusSigned:
		document.SignedAt = &now
	}
	document.UpdatedAt = &now

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.DocumentRepository().Update(ctx, document); err != nil {
		return nil, err
	}

	if status == entity.DocumentStatusSigned && document.Kind == entity.DocumentKindNDA {
		if err := uow.FreelancerRepository().MarkNdaSigned(ctx, document.FreelancerId); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if status == entity.DocumentStatusSigned {
		publishLifecycle(ctx, s.publisherService, dto.LifecycleMessage{
			EventType:    entity.ActivityDocumentSigned,
			FreelancerId: document.FreelancerId,
			ActorId:      &actorId,
			Description:  fmt.Sprintf("Document %q signed", document.Title),
			Details: map[string]interface{}{
				"document_id":    document.Id.String(),
				"document_title": document.Title,
				"kind":           string(document.Kind),
			},
		})
	}

	return documentToResponse(document), nil
}

func (s *documentService) DocumentsFor(ctx context.Context, freelancerId uuid.UUID) ([]*dto.DocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	documents, err := uow.DocumentRepository().FindAll(ctx,
		specification.ByFreelancerID{FreelancerID: freelancerId},
		specification.OrderBy{Field: "sent_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.DocumentResponse, len(documents))
	for i, d := range documents {
		responses[i] = documentToResponse(d)
	}
	return responses, nil
}

func documentToResponse(d *entity.SignableDocument) *dto.DocumentResponse {
	return &dto.DocumentResponse{
		Id:           d.Id,
		FreelancerId: d.FreelancerId,
		Title:        d.Title,
		Kind:         string(d.Kind),
		Status:       string(d.Status),
		FileURL:      d.FileURL,
		SentAt:       d.SentAt,
		ViewedAt:     d.ViewedAt,
		SignedAt:     d.SignedAt,
	}
}
