package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/adboardhq/adboard/app/models"
	"github.com/adboardhq/adboard/internal/pkg/payment"
	"github.com/adboardhq/adboard/internal/pkg/usercontext"
)

type stubPaymentRepo struct {
	plans         map[uint]*models.Plan
	announcements map[uint]*models.Announcement
	payments      []*models.Payment
	promoted      map[uint]*models.Plan
}

func newStubPaymentRepo() *stubPaymentRepo {
	return &stubPaymentRepo{
		plans: map[uint]*models.Plan{
			1: {ID: 1, Name: models.PlanBasic, Amount: 0, Priority: 1},
			3: {ID: 3, Name: models.PlanTop, Amount: 500, Priority: 3},
		},
		announcements: map[uint]*models.Announcement{
			10: {ID: 10, UserID: 7, Title: "Bike", Priority: 1},
		},
		promoted: map[uint]*models.Plan{},
	}
}

func (r *stubPaymentRepo) GetPlan(id uint) (*models.Plan, error) {
	if p, ok := r.plans[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubPaymentRepo) GetAnnouncement(id uint) (*models.Announcement, error) {
	if a, ok := r.announcements[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubPaymentRepo) CreatePayment(p *models.Payment) error {
	r.payments = append(r.payments, p)
	return nil
}

func (r *stubPaymentRepo) GetPaymentByProviderID(providerPaymentID string) (*models.Payment, error) {
	for _, p := range r.payments {
		if p.ProviderPaymentID == providerPaymentID {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubPaymentRepo) PromoteAnnouncement(announcementID uint, plan *models.Plan) error {
	r.promoted[announcementID] = plan
	return nil
}

func (r *stubPaymentRepo) ConfirmAndPromote(paymentID uint) (bool, error) {
	for _, p := range r.payments {
		if p.ID == paymentID && !p.Paid {
			p.Paid = true
			if p.PlanID != nil {
				r.promoted[p.AnnouncementID] = r.plans[*p.PlanID]
			}
			return true, nil
		}
	}
	return false, nil
}

type stubGateway struct {
	charge  payment.Charge
	err     error
	created int
}

func (g *stubGateway) CreateCharge(ctx context.Context, in payment.CreateChargeInput) (*payment.Charge, error) {
	g.created++
	if g.err != nil {
		return nil, g.err
	}
	c := g.charge
	return &c, nil
}

func (g *stubGateway) GetCharge(ctx context.Context, id string) (*payment.Charge, error) {
	if g.err != nil {
		return nil, g.err
	}
	c := g.charge
	return &c, nil
}

func newPaymentTestApp(userID uint, repo payment.Repository, gw payment.Gateway) *fiber.App {
	SetPaymentService(payment.NewService(repo, gw))

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		usercontext.SetUserContext(c, usercontext.UserContext{UserID: userID, IsLoggedIn: true})
		return c.Next()
	})
	app.Post("/payments/create", HandleCreatePayment)
	app.Get("/payments/status/:payment_id", HandleCheckPaymentStatus)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestHandleCreatePaymentFreePlan(t *testing.T) {
	repo := newStubPaymentRepo()
	gw := &stubGateway{}
	app := newPaymentTestApp(7, repo, gw)

	resp := postJSON(t, app, "/payments/create", fiber.Map{"announcement_id": 10, "plan_id": 1})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "free plan applied", body["detail"])
	assert.Zero(t, gw.created)
	require.Len(t, repo.payments, 1)
	assert.True(t, repo.payments[0].Paid)
}

func TestHandleCreatePaymentPaidPlan(t *testing.T) {
	repo := newStubPaymentRepo()
	gw := &stubGateway{charge: payment.Charge{ID: "pay_abc", Status: payment.StatusPending, ConfirmationURL: "https://pay.example/abc"}}
	app := newPaymentTestApp(7, repo, gw)

	resp := postJSON(t, app, "/payments/create", fiber.Map{"announcement_id": 10, "plan_id": 3})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "pay_abc", body["payment_id"])
	assert.Equal(t, "https://pay.example/abc", body["confirmation_url"])
	assert.Empty(t, repo.promoted)
}

func TestHandleCreatePaymentForeignAnnouncement(t *testing.T) {
	repo := newStubPaymentRepo()
	app := newPaymentTestApp(99, repo, &stubGateway{})

	resp := postJSON(t, app, "/payments/create", fiber.Map{"announcement_id": 10, "plan_id": 3})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Empty(t, repo.payments)
}

func TestHandleCreatePaymentUnknownPlan(t *testing.T) {
	repo := newStubPaymentRepo()
	app := newPaymentTestApp(7, repo, &stubGateway{})

	resp := postJSON(t, app, "/payments/create", fiber.Map{"announcement_id": 10, "plan_id": 42})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandleCreatePaymentGatewayDown(t *testing.T) {
	repo := newStubPaymentRepo()
	gw := &stubGateway{err: errors.New("connection refused")}
	app := newPaymentTestApp(7, repo, gw)

	resp := postJSON(t, app, "/payments/create", fiber.Map{"announcement_id": 10, "plan_id": 3})
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Empty(t, repo.payments)
}

func TestHandleCheckPaymentStatusSucceeded(t *testing.T) {
	repo := newStubPaymentRepo()
	planID := uint(3)
	repo.payments = append(repo.payments, &models.Payment{
		ID: 1, UserID: 7, AnnouncementID: 10, PlanID: &planID, Amount: 500,
		ProviderPaymentID: "pay_abc",
	})
	gw := &stubGateway{charge: payment.Charge{ID: "pay_abc", Status: payment.StatusSucceeded}}
	app := newPaymentTestApp(7, repo, gw)

	req := httptest.NewRequest(http.MethodGet, "/payments/status/pay_abc", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["paid"])
	assert.Equal(t, "payment succeeded", body["message"])
	assert.Equal(t, repo.plans[3], repo.promoted[10])
}

func TestHandleCheckPaymentStatusFailed(t *testing.T) {
	repo := newStubPaymentRepo()
	planID := uint(3)
	repo.payments = append(repo.payments, &models.Payment{
		ID: 1, UserID: 7, AnnouncementID: 10, PlanID: &planID, Amount: 500,
		ProviderPaymentID: "pay_abc",
	})
	gw := &stubGateway{charge: payment.Charge{ID: "pay_abc", Status: "canceled"}}
	app := newPaymentTestApp(7, repo, gw)

	req := httptest.NewRequest(http.MethodGet, "/payments/status/pay_abc", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, false, body["paid"])
	assert.Empty(t, repo.promoted)
}

func TestHandleCheckPaymentStatusForeignPayment(t *testing.T) {
	repo := newStubPaymentRepo()
	planID := uint(3)
	repo.payments = append(repo.payments, &models.Payment{
		ID: 1, UserID: 7, AnnouncementID: 10, PlanID: &planID,
		ProviderPaymentID: "pay_abc",
	})
	app := newPaymentTestApp(99, repo, &stubGateway{charge: payment.Charge{ID: "pay_abc", Status: payment.StatusSucceeded}})

	req := httptest.NewRequest(http.MethodGet, "/payments/status/pay_abc", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
