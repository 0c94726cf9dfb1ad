package payment

import (
	"github.com/adboardhq/adboard/app/models"
	"gorm.io/gorm"
)

// Repository provides DB operations used by the payment service.
type Repository interface {
	GetPlan(id uint) (*models.Plan, error)
	GetAnnouncement(id uint) (*models.Announcement, error)
	CreatePayment(p *models.Payment) error
	GetPaymentByProviderID(providerPaymentID string) (*models.Payment, error)
	PromoteAnnouncement(announcementID uint, plan *models.Plan) error
	ConfirmAndPromote(paymentID uint) (bool, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewRepository creates a payment repository backed by GORM.
func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) GetPlan(id uint) (*models.Plan, error) {
	var plan models.Plan
	if err := r.db.First(&plan, id).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *gormRepository) GetAnnouncement(id uint) (*models.Announcement, error) {
	var a models.Announcement
	if err := r.db.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *gormRepository) CreatePayment(p *models.Payment) error {
	return r.db.Create(p).Error
}

func (r *gormRepository) GetPaymentByProviderID(providerPaymentID string) (*models.Payment, error) {
	var p models.Payment
	err := r.db.Where("provider_payment_id = ?", providerPaymentID).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// PromoteAnnouncement applies the priority rule and persists plan + priority
// in one update. Used by the free-plan shortcut and by direct plan edits.
func (r *gormRepository) PromoteAnnouncement(announcementID uint, plan *models.Plan) error {
	var a models.Announcement
	AssignPriority(&a, plan)
	return r.db.Model(&models.Announcement{}).
		Where("id = ?", announcementID).
		Updates(map[string]interface{}{
			"plan_id":  a.PlanID,
			"priority": a.Priority,
		}).Error
}

// ConfirmAndPromote flips the payment to paid and promotes its announcement
// in a single transaction. The flip is a conditional update on paid=false so
// racing confirmations apply the promotion at most once; the first return
// value reports whether this call won the transition.
func (r *gormRepository) ConfirmAndPromote(paymentID uint) (bool, error) {
	applied := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Payment{}).
			Where("id = ? AND paid = ?", paymentID, false).
			Update("paid", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Lost the race or already confirmed earlier: nothing to promote.
			return nil
		}

		var p models.Payment
		if err := tx.Preload("Plan").First(&p, paymentID).Error; err != nil {
			return err
		}

		var a models.Announcement
		AssignPriority(&a, p.Plan)
		if err := tx.Model(&models.Announcement{}).
			Where("id = ?", p.AnnouncementID).
			Updates(map[string]interface{}{
				"plan_id":  a.PlanID,
				"priority": a.Priority,
			}).Error; err != nil {
			return err
		}

		applied = true
		return nil
	})
	return applied, err
}
