package mapper

import (
	"talentflow-be/internal/entity"
	"talentflow-be/internal/model"
)

type PayoutMapper struct{}

func NewPayoutMapper() *PayoutMapper {
	return &PayoutMapper{}
}

func (m *PayoutMapper) ToEntity(p *model.Payout) *entity.Payout {
	if p == nil {
		return nil
	}
	return &entity.Payout{
		Id:                    p.Id,
		FreelancerId:          p.FreelancerId,
		Amount:                p.Amount,
		Currency:              p.Currency,
		Description:           p.Description,
		Status:                entity.PayoutStatus(p.Status),
		MidtransTransactionId: p.MidtransTransactionId,
		PaymentURL:            p.PaymentURL,
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             p.UpdatedAt,
		PaidAt:                p.PaidAt,
	}
}

func (m *PayoutMapper) ToModel(p *entity.Payout) *model.Payout {
	if p == nil {
		return nil
	}
	return &model.Payout{
		Id:                    p.Id,
		FreelancerId:          p.FreelancerId,
		Amount:                p.Amount,
		Currency:              p.Currency,
		Description:           p.Description,
		Status:                string(p.Status),
		MidtransTransactionId: p.MidtransTransactionId,
		PaymentURL:            p.PaymentURL,
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             p.UpdatedAt,
		PaidAt:                p.PaidAt,
	}
}

func (m *PayoutMapper) ToEntities(models []*model.Payout) []*entity.Payout {
	entities := make([]*entity.Payout, len(models))
	for i, p := range models {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
