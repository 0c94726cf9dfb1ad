package payment

import (
	"context"
	"errors"
	"testing"

	"github.com/adboardhq/adboard/app/models"
	"gorm.io/gorm"
)

// fakeRepository keeps everything in memory and mimics the conditional
// paid-flip semantics of the GORM implementation.
type fakeRepository struct {
	plans         map[uint]*models.Plan
	announcements map[uint]*models.Announcement
	payments      []*models.Payment
	nextPaymentID uint
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		plans:         make(map[uint]*models.Plan),
		announcements: make(map[uint]*models.Announcement),
		nextPaymentID: 1,
	}
}

func (r *fakeRepository) GetPlan(id uint) (*models.Plan, error) {
	p, ok := r.plans[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeRepository) GetAnnouncement(id uint) (*models.Announcement, error) {
	a, ok := r.announcements[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *fakeRepository) CreatePayment(p *models.Payment) error {
	p.ID = r.nextPaymentID
	r.nextPaymentID++
	cp := *p
	r.payments = append(r.payments, &cp)
	return nil
}

func (r *fakeRepository) GetPaymentByProviderID(providerPaymentID string) (*models.Payment, error) {
	for _, p := range r.payments {
		if p.ProviderPaymentID == providerPaymentID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepository) PromoteAnnouncement(announcementID uint, plan *models.Plan) error {
	a, ok := r.announcements[announcementID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	AssignPriority(a, plan)
	return nil
}

func (r *fakeRepository) ConfirmAndPromote(paymentID uint) (bool, error) {
	for _, p := range r.payments {
		if p.ID != paymentID {
			continue
		}
		if p.Paid {
			return false, nil
		}
		p.Paid = true
		var plan *models.Plan
		if p.PlanID != nil {
			plan = r.plans[*p.PlanID]
		}
		return true, r.PromoteAnnouncement(p.AnnouncementID, plan)
	}
	return false, gorm.ErrRecordNotFound
}

// fakeGateway returns canned charges and counts calls.
type fakeGateway struct {
	createCalls int
	getCalls    int
	charge      Charge
	createErr   error
	getErr      error
	status      string
}

func (g *fakeGateway) CreateCharge(ctx context.Context, in CreateChargeInput) (*Charge, error) {
	g.createCalls++
	if g.createErr != nil {
		return nil, g.createErr
	}
	if in.IdempotencyKey == "" {
		return nil, errors.New("missing idempotency key")
	}
	cp := g.charge
	return &cp, nil
}

func (g *fakeGateway) GetCharge(ctx context.Context, id string) (*Charge, error) {
	g.getCalls++
	if g.getErr != nil {
		return nil, g.getErr
	}
	return &Charge{ID: id, Status: g.status}, nil
}

func newTestService() (*Service, *fakeRepository, *fakeGateway) {
	repo := newFakeRepository()
	repo.plans[1] = &models.Plan{ID: 1, Name: models.PlanBasic, Amount: 0, Priority: 1}
	repo.plans[3] = &models.Plan{ID: 3, Name: models.PlanTop, Amount: 500, Priority: 3}
	repo.announcements[10] = &models.Announcement{ID: 10, UserID: 7, Title: "Bicycle", Priority: DefaultPriority}

	gw := &fakeGateway{
		charge: Charge{ID: "pay_abc", Status: StatusPending, ConfirmationURL: "https://gw.example/confirm/pay_abc"},
	}
	return NewService(repo, gw), repo, gw
}

func TestInitiateFreePlanSkipsGateway(t *testing.T) {
	svc, repo, gw := newTestService()

	res, err := svc.Initiate(context.Background(), 7, 10, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.FreePlanApplied {
		t.Fatalf("expected free plan shortcut")
	}
	if gw.createCalls != 0 {
		t.Fatalf("expected no gateway calls, got %d", gw.createCalls)
	}
	if len(repo.payments) != 1 {
		t.Fatalf("expected 1 payment, got %d", len(repo.payments))
	}
	p := repo.payments[0]
	if !p.Paid || p.Amount != 0 || p.ProviderPaymentID != "" {
		t.Fatalf("unexpected payment state: paid=%v amount=%v provider=%q", p.Paid, p.Amount, p.ProviderPaymentID)
	}
	if a := repo.announcements[10]; a.Priority != 1 || a.PlanID == nil || *a.PlanID != 1 {
		t.Fatalf("expected immediate promotion, got priority=%d plan=%v", a.Priority, a.PlanID)
	}
}

func TestInitiatePaidPlanCreatesUnpaidPayment(t *testing.T) {
	svc, repo, gw := newTestService()

	res, err := svc.Initiate(context.Background(), 7, 10, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.FreePlanApplied {
		t.Fatalf("did not expect free plan shortcut")
	}
	if res.PaymentID != "pay_abc" || res.ConfirmationURL == "" {
		t.Fatalf("unexpected result: %+v", res)
	}
	if gw.createCalls != 1 {
		t.Fatalf("expected exactly one charge create, got %d", gw.createCalls)
	}
	if len(repo.payments) != 1 {
		t.Fatalf("expected 1 payment, got %d", len(repo.payments))
	}
	p := repo.payments[0]
	if p.Paid || p.Amount != 500 || p.ProviderPaymentID != "pay_abc" {
		t.Fatalf("unexpected payment state: paid=%v amount=%v provider=%q", p.Paid, p.Amount, p.ProviderPaymentID)
	}
	// Announcement must stay untouched until confirmation.
	if a := repo.announcements[10]; a.Priority != DefaultPriority || a.PlanID != nil {
		t.Fatalf("announcement changed before confirmation: priority=%d plan=%v", a.Priority, a.PlanID)
	}
}

func TestInitiateRejectsForeignAnnouncement(t *testing.T) {
	svc, repo, _ := newTestService()

	_, err := svc.Initiate(context.Background(), 99, 10, 3)
	if !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
	if len(repo.payments) != 0 {
		t.Fatalf("expected no payment rows, got %d", len(repo.payments))
	}
}

func TestInitiateUnknownPlanAndAnnouncement(t *testing.T) {
	svc, _, _ := newTestService()

	if _, err := svc.Initiate(context.Background(), 7, 10, 42); !errors.Is(err, ErrPlanNotFound) {
		t.Fatalf("expected ErrPlanNotFound, got %v", err)
	}
	if _, err := svc.Initiate(context.Background(), 7, 42, 3); !errors.Is(err, ErrAnnouncementNotFound) {
		t.Fatalf("expected ErrAnnouncementNotFound, got %v", err)
	}
}

func TestInitiateGatewayFailureCreatesNothing(t *testing.T) {
	svc, repo, gw := newTestService()
	gw.createErr = errors.New("connection refused")

	_, err := svc.Initiate(context.Background(), 7, 10, 3)
	var gwErr *GatewayError
	if !errors.As(err, &gwErr) {
		t.Fatalf("expected GatewayError, got %v", err)
	}
	if len(repo.payments) != 0 {
		t.Fatalf("expected no payment rows, got %d", len(repo.payments))
	}
}

func TestCheckStatusSucceededPromotesOnce(t *testing.T) {
	svc, repo, gw := newTestService()
	if _, err := svc.Initiate(context.Background(), 7, 10, 3); err != nil {
		t.Fatalf("initiate: %v", err)
	}
	gw.status = StatusSucceeded

	for i := 0; i < 2; i++ {
		res, err := svc.CheckStatus(context.Background(), 7, "pay_abc")
		if err != nil {
			t.Fatalf("poll %d: %v", i, err)
		}
		if !res.Paid || res.Status != StatusSucceeded {
			t.Fatalf("poll %d: unexpected result %+v", i, res)
		}
	}

	a := repo.announcements[10]
	if a.Priority != 3 || a.PlanID == nil || *a.PlanID != 3 {
		t.Fatalf("expected promotion to top plan, got priority=%d plan=%v", a.Priority, a.PlanID)
	}
	if !repo.payments[0].Paid {
		t.Fatalf("payment not marked paid")
	}
}

func TestCheckStatusPendingLeavesStateUntouched(t *testing.T) {
	svc, repo, gw := newTestService()
	if _, err := svc.Initiate(context.Background(), 7, 10, 3); err != nil {
		t.Fatalf("initiate: %v", err)
	}
	gw.status = StatusPending

	res, err := svc.CheckStatus(context.Background(), 7, "pay_abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Paid || res.Status != StatusPending {
		t.Fatalf("unexpected result: %+v", res)
	}
	if repo.payments[0].Paid {
		t.Fatalf("payment must stay unpaid while pending")
	}
	if a := repo.announcements[10]; a.Priority != DefaultPriority || a.PlanID != nil {
		t.Fatalf("announcement changed while pending")
	}
}

func TestCheckStatusFailedStaysUnpaidForever(t *testing.T) {
	svc, repo, gw := newTestService()
	if _, err := svc.Initiate(context.Background(), 7, 10, 3); err != nil {
		t.Fatalf("initiate: %v", err)
	}
	gw.status = "canceled"

	res, err := svc.CheckStatus(context.Background(), 7, "pay_abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Paid || res.Message != "payment failed" {
		t.Fatalf("unexpected result: %+v", res)
	}
	if repo.payments[0].Paid {
		t.Fatalf("failed payment must stay unpaid")
	}
	if a := repo.announcements[10]; a.Priority != DefaultPriority || a.PlanID != nil {
		t.Fatalf("announcement changed on failure")
	}
}

func TestCheckStatusGatewayErrorLeavesStateUntouched(t *testing.T) {
	svc, repo, gw := newTestService()
	if _, err := svc.Initiate(context.Background(), 7, 10, 3); err != nil {
		t.Fatalf("initiate: %v", err)
	}

	beforePaid := repo.payments[0].Paid
	beforePriority := repo.announcements[10].Priority
	beforePlanID := repo.announcements[10].PlanID
	gw.getErr = errors.New("timeout")

	_, err := svc.CheckStatus(context.Background(), 7, "pay_abc")
	var gwErr *GatewayError
	if !errors.As(err, &gwErr) {
		t.Fatalf("expected GatewayError, got %v", err)
	}
	if repo.payments[0].Paid != beforePaid {
		t.Fatalf("payment mutated on gateway error")
	}
	if a := repo.announcements[10]; a.Priority != beforePriority || a.PlanID != beforePlanID {
		t.Fatalf("announcement mutated on gateway error")
	}
}

func TestCheckStatusUnknownOrForeignPayment(t *testing.T) {
	svc, _, gw := newTestService()
	if _, err := svc.Initiate(context.Background(), 7, 10, 3); err != nil {
		t.Fatalf("initiate: %v", err)
	}
	gw.status = StatusSucceeded

	if _, err := svc.CheckStatus(context.Background(), 7, "pay_unknown"); !errors.Is(err, ErrPaymentNotFound) {
		t.Fatalf("expected ErrPaymentNotFound for unknown id, got %v", err)
	}
	// Foreign payments look exactly like missing ones.
	if _, err := svc.CheckStatus(context.Background(), 99, "pay_abc"); !errors.Is(err, ErrPaymentNotFound) {
		t.Fatalf("expected ErrPaymentNotFound for foreign payment, got %v", err)
	}
}
