package service

import (
	"context"
	"crypto/sha512"
	"errors"
	"fmt"
	"os"
	"time"

	"talentflow-be/internal/dto"
	"talentflow-be/internal/entity"
	"talentflow-be/internal/repository/specification"
	"talentflow-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

type IPaymentService interface {
	CreatePayout(ctx context.Context, actorId uuid.UUID, req *dto.CreatePayoutRequest) (*dto.PayoutResponse, error)
	HandleNotification(ctx context.Context, req *dto.PayoutNotificationRequest) error
	PayoutsFor(ctx context.Context, freelancerId uuid.UUID) ([]*dto.PayoutResponse, error)
}

type paymentService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
}

func NewPaymentService(uowFactory unitofwork.RepositoryFactory, publisherService IPublisherService) IPaymentService {
	return &paymentService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
	}
}

// CreatePayout books a pending payout and opens a payment page for it.
// Only approved freelancers can be paid out.
func (s *paymentService) CreatePayout(ctx context.Context, actorId uuid.UUID, req *dto.CreatePayoutRequest) (*dto.PayoutResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	freelancer, err := uow.FreelancerRepository().FindOne(ctx, specification.ByID{ID: req.FreelancerId})
	if err != nil {
		return nil, err
	}
	if freelancer == nil {
		return nil, errors.New("freelancer not found")
	}
	if freelancer.Status != entity.StageApproved {
		return nil, errors.New("payouts are only available for approved freelancers")
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	payout := &entity.Payout{
		Id:           uuid.New(),
		FreelancerId: req.FreelancerId,
		Amount:       req.Amount,
		Currency:     currency,
		Description:  req.Description,
		Status:       entity.PayoutStatusPending,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := uow.PayoutRepository().Create(ctx, payout); err != nil {
		return nil, err
	}

	// External gateway call stays outside the DB write: a failed call leaves
	// a pending payout that can be retried.
	var sClient snap.Client
	serverKey := os.Getenv("MIDTRANS_SERVER_KEY")
	env := midtrans.Sandbox
	if os.Getenv("MIDTRANS_IS_PRODUCTION") == "true" {
		env = midtrans.Production
	}
	sClient.New(serverKey, env)

	frontendURL := os.Getenv("FRONTEND_URL")
	finishRedirectURL := fmt.Sprintf("%s/payouts?payment=success", frontendURL)

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  payout.Id.String(),
			GrossAmt: int64(req.Amount),
		},
		CreditCard: &snap.CreditCardDetails{
			Secure: true,
		},
		Callbacks: &snap.Callbacks{
			Finish: finishRedirectURL,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: freelancer.FullName,
			Email: freelancer.Email,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    payout.Id.String(),
				Price: int64(req.Amount),
				Qty:   1,
				Name:  req.Description,
			},
		},
		EnabledPayments: snap.AllSnapPaymentType,
	}

	snapResp, midErr := sClient.CreateTransaction(snapReq)
	if midErr != nil {
		return nil, fmt.Errorf("midtrans error: %v", midErr.GetMessage())
	}

	payout.PaymentURL = &snapResp.RedirectURL
	if err := uow.PayoutRepository().Update(ctx, payout); err != nil {
		return nil, err
	}

	publishLifecycle(ctx, s.publisherService, dto.LifecycleMessage{
		EventType:    entity.ActivityPayoutCreated,
		FreelancerId: req.FreelancerId,
		ActorId:      &actorId,
		Description:  fmt.Sprintf("Payout of %.2f %s created", req.Amount, currency),
		Details: map[string]interface{}{
			"payout_id": payout.Id.String(),
			"amount":    req.Amount,
			"currency":  currency,
		},
	})

	return payoutToResponse(payout), nil
}

func (s *paymentService) HandleNotification(ctx context.Context, req *dto.PayoutNotificationRequest) error {
	fmt.Printf("\n[WEBHOOK] ========== Processing Notification ==========\n")
	fmt.Printf("[WEBHOOK] OrderId: %s | Status: %s\n", req.OrderId, req.TransactionStatus)

	serverKey := os.Getenv("MIDTRANS_SERVER_KEY")
	if serverKey == "" {
		fmt.Println("[WEBHOOK ERROR] MIDTRANS_SERVER_KEY not configured")
		return fmt.Errorf("server configuration error")
	}

	// Midtrans signature = SHA512(order_id + status_code + gross_amount + server_key)
	signatureInput := req.OrderId + req.StatusCode + req.GrossAmount + serverKey
	expectedSignature := fmt.Sprintf("%x", sha512.Sum512([]byte(signatureInput)))

	if req.SignatureKey != expectedSignature {
		fmt.Printf("[WEBHOOK ERROR] Signature mismatch for OrderId=%s\n", req.OrderId)
		return fmt.Errorf("invalid signature")
	}

	payoutId, err := uuid.Parse(req.OrderId)
	if err != nil {
		fmt.Printf("[WEBHOOK ERROR] Invalid order_id format: %s\n", req.OrderId)
		return fmt.Errorf("invalid order id format")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	payout, err := uow.PayoutRepository().FindOne(ctx, specification.ByID{ID: payoutId})
	if err != nil {
		return err
	}
	if payout == nil {
		fmt.Printf("[WEBHOOK ERROR] Payout not found: %s\n", req.OrderId)
		return fmt.Errorf("payout not found")
	}

	var newStatus entity.PayoutStatus
	switch req.TransactionStatus {
	case "capture", "settlement":
		newStatus = entity.PayoutStatusPaid
	case "deny", "cancel":
		newStatus = entity.PayoutStatusFailed
	case "expire":
		newStatus = entity.PayoutStatusExpired
	case "pending":
		fmt.Printf("[WEBHOOK] Payment PENDING - no action needed\n")
		return nil
	default:
		fmt.Printf("[WEBHOOK] Unknown status '%s' - no action taken\n", req.TransactionStatus)
		return nil
	}

	if payout.Status == newStatus {
		fmt.Printf("[WEBHOOK] Status already up-to-date, skipping update\n")
		return nil
	}

	fmt.Printf("[WEBHOOK] State transition: %s -> %s\n", payout.Status, newStatus)

	payout.Status = newStatus
	payout.UpdatedAt = time.Now()
	if req.TransactionId != "" {
		payout.MidtransTransactionId = &req.TransactionId
	}
	if newStatus == entity.PayoutStatusPaid {
		now := time.Now()
		payout.PaidAt = &now
	}

	if err := uow.PayoutRepository().Update(ctx, payout); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	fmt.Printf("[WEBHOOK] Successfully updated payout %s\n", payoutId)
	return nil
}

func (s *paymentService) PayoutsFor(ctx context.Context, freelancerId uuid.UUID) ([]*dto.PayoutResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	payouts, err := uow.PayoutRepository().FindAll(ctx,
		specification.ByFreelancerID{FreelancerID: freelancerId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.PayoutResponse, len(payouts))
	for i, p := range payouts {
		responses[i] = payoutToResponse(p)
	}
	return responses, nil
}

func payoutToResponse(p *entity.Payout) *dto.PayoutResponse {
	return &dto.PayoutResponse{
		Id:           p.Id,
		FreelancerId: p.FreelancerId,
		Amount:       p.Amount,
		Currency:     p.Currency,
		Description:  p.Description,
		Status:       string(p.Status),
		PaymentURL:   p.PaymentURL,
		CreatedAt:    p.CreatedAt,
		PaidAt:       p.PaidAt,
	}
}
