package payment

import "github.com/adboardhq/adboard/app/models"

// DefaultPriority is the ranking weight of announcements without a plan.
const DefaultPriority = 1

// AssignPriority sets the announcement's plan and re-establishes the
// denormalized priority copy. It is the only place allowed to write
// Announcement.Priority: on create with a plan, on a direct plan edit, and
// on payment confirmation. Plan weights are taken as-is, no clamping.
func AssignPriority(a *models.Announcement, p *models.Plan) {
	if p == nil {
		a.PlanID = nil
		a.Plan = nil
		a.Priority = DefaultPriority
		return
	}
	id := p.ID
	a.PlanID = &id
	a.Plan = p
	a.Priority = p.Priority
}
