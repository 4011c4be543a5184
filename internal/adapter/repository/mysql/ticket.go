package mysql

import (
	"context"

	ticketDomain "insurance-backend/internal/domain/ticket"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TicketRepository struct{ db *gorm.DB }

func NewTicketRepository(db *gorm.DB) *TicketRepository { return &TicketRepository{db: db} }

func (r *TicketRepository) Create(ctx context.Context, t *ticketDomain.SupportTicket) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TicketRepository) Save(ctx context.Context, t *ticketDomain.SupportTicket) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *TicketRepository) GetByID(ctx context.Context, id uint64) (*ticketDomain.SupportTicket, error) {
	var out ticketDomain.SupportTicket
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *TicketRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*ticketDomain.SupportTicket, error) {
	var out ticketDomain.SupportTicket
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&out, id)
	return &out, res.Error
}

func (r *TicketRepository) ListByUser(ctx context.Context, userID uint64) ([]ticketDomain.SupportTicket, error) {
	var out []ticketDomain.SupportTicket
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&out)
	return out, res.Error
}

func (r *TicketRepository) ListAll(ctx context.Context) ([]ticketDomain.SupportTicket, error) {
	var out []ticketDomain.SupportTicket
	res := r.db.WithContext(ctx).Order("id").Find(&out)
	return out, res.Error
}

func (r *TicketRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&ticketDomain.SupportTicket{}, id).Error
}
