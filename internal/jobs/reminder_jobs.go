package jobs

import (
	"context"
	"time"

	"propertypulse-backend/internal/domain"
	"propertypulse-backend/internal/logger"
)

// SendContractExpiryReminders emails owners and tenants about active
// contracts ending within the next 30 days.
func (jr *JobRunner) SendContractExpiryReminders() {
	jr.runWithRecovery("SendContractExpiryReminders", func() {
		ctx := context.Background()
		cutoff := time.Now().AddDate(0, 0, 30).Format("2006-01-02")

		contracts, err := jr.store.ContractRepository.ListEndingBefore(ctx, cutoff, domain.ContractStatusActive)
		if err != nil {
			logger.Error("failed to list expiring contracts", "error", err)
			return
		}

		for _, c := range contracts {
			prop, err := jr.store.PropertyRepository.GetByID(ctx, c.PropertyID)
			if err != nil {
				logger.Error("failed to load property for expiring contract", "contract_id", c.ID, "error", err)
				continue
			}

			tenant, err := jr.store.UserRepository.GetByID(ctx, c.TenantID)
			if err == nil {
				if err := jr.emailSvc.SendContractExpiryReminder(ctx, tenant.Email, tenant.Name, prop.Name, c.EndDate); err != nil {
					logger.Error("failed to send tenant expiry reminder", "contract_id", c.ID, "error", err)
				}
			}
			owner, err := jr.store.UserRepository.GetByID(ctx, prop.OwnerID)
			if err == nil {
				if err := jr.emailSvc.SendContractExpiryReminder(ctx, owner.Email, owner.Name, prop.Name, c.EndDate); err != nil {
					logger.Error("failed to send owner expiry reminder", "contract_id", c.ID, "error", err)
				}
			}
		}

		logger.Info("processed expiring contracts", "count", len(contracts))
	})
}

// SendEventReminders emails property owners about uncompleted events
// scheduled for tomorrow.
func (jr *JobRunner) SendEventReminders() {
	jr.runWithRecovery("SendEventReminders", func() {
		ctx := context.Background()
		from := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
		to := time.Now().AddDate(0, 0, 2).Format("2006-01-02")

		events, err := jr.store.EventRepository.ListScheduledBetween(ctx, from, to)
		if err != nil {
			logger.Error("failed to list upcoming events", "error", err)
			return
		}

		for _, e := range events {
			prop, err := jr.store.PropertyRepository.GetByID(ctx, e.PropertyID)
			if err != nil {
				continue
			}
			owner, err := jr.store.UserRepository.GetByID(ctx, prop.OwnerID)
			if err != nil {
				continue
			}
			if err := jr.emailSvc.SendEventReminder(ctx, owner.Email, owner.Name, e.Title, e.ScheduledOn.Format(time.RFC3339)); err != nil {
				logger.Error("failed to send event reminder", "event_id", e.ID, "error", err)
			}
		}

		logger.Info("processed upcoming events", "count", len(events))
	})
}

// SendPendingRequestDigest emails every admin a count of join requests
// still waiting for review.
func (jr *JobRunner) SendPendingRequestDigest() {
	jr.runWithRecovery("SendPendingRequestDigest", func() {
		ctx := context.Background()

		pending, err := jr.store.JoinRequestRepository.List(ctx, domain.JoinRequestStatusPending)
		if err != nil {
			logger.Error("failed to list pending join requests", "error", err)
			return
		}
		if len(pending) == 0 {
			return
		}

		admins, err := jr.store.UserRepository.ListByRole(ctx, domain.RoleAdmin)
		if err != nil {
			logger.Error("failed to list admins for digest", "error", err)
			return
		}
		for _, admin := range admins {
			if err := jr.emailSvc.SendPendingRequestsDigest(ctx, admin.Email, len(pending)); err != nil {
				logger.Error("failed to send pending-request digest", "email", admin.Email, "error", err)
			}
		}
	})
}

// MarkExpiredContracts flips ACTIVE contracts past their end date to EXPIRED
// and frees their properties.
func (jr *JobRunner) MarkExpiredContracts() {
	jr.runWithRecovery("MarkExpiredContracts", func() {
		ctx := context.Background()
		today := time.Now().Format("2006-01-02")

		contracts, err := jr.store.ContractRepository.ListEndingBefore(ctx, today, domain.ContractStatusActive)
		if err != nil {
			logger.Error("failed to list ended contracts", "error", err)
			return
		}

		for i := range contracts {
			c := &contracts[i]
			c.Status = domain.ContractStatusExpired
			if err := jr.store.ContractRepository.Update(ctx, c); err != nil {
				logger.Error("failed to mark contract expired", "contract_id", c.ID, "error", err)
				continue
			}
			if prop, err := jr.store.PropertyRepository.GetByID(ctx, c.PropertyID); err == nil {
				prop.Status = domain.PropertyStatusAvailable
				if err := jr.store.PropertyRepository.Update(ctx, prop); err != nil {
					logger.Error("failed to free property of expired contract", "property_id", prop.ID, "error", err)
				}
			}
		}

		logger.Info("marked expired contracts", "count", len(contracts))
	})
}
