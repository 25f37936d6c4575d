package report

import (
	"context"

	"entrepreneur-tracker/internal/http/api"
	"entrepreneur-tracker/internal/models"
	"entrepreneur-tracker/internal/service"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=ReportProvider
type ReportProvider interface {
	CountEntrepreneurs(ctx context.Context) (int, error)
	CountRecentEntrepreneurs(ctx context.Context) (int, error)
	CountBusinesses(ctx context.Context) (int, error)
	CountBootcampAssignments(ctx context.Context) (int, error)
	PaymentTotals(ctx context.Context) (*models.PaymentTotals, error)
	HubPerformance(ctx context.Context) ([]*models.HubPerformance, error)
}

type ReportService struct {
	trm     service.TransactionManager
	reports ReportProvider
}

func NewReportService(trm service.TransactionManager, reports ReportProvider) *ReportService {
	return &ReportService{
		trm:     trm,
		reports: reports,
	}
}

// Get assembles all system metrics inside one transaction so the totals and
// the per-hub breakdown describe the same snapshot.
func (s *ReportService) Get(ctx context.Context) (*api.ReportsResponse, error) {
	resp := &api.ReportsResponse{
		HubPerformance: []api.HubPerformanceRow{},
	}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		entrepreneurs, err := s.reports.CountEntrepreneurs(ctx)
		if err != nil {
			return err
		}
		businesses, err := s.reports.CountBusinesses(ctx)
		if err != nil {
			return err
		}
		payments, err := s.reports.PaymentTotals(ctx)
		if err != nil {
			return err
		}
		recent, err := s.reports.CountRecentEntrepreneurs(ctx)
		if err != nil {
			return err
		}
		assignments, err := s.reports.CountBootcampAssignments(ctx)
		if err != nil {
			return err
		}
		hubs, err := s.reports.HubPerformance(ctx)
		if err != nil {
			return err
		}

		resp.TotalEntrepreneurs = entrepreneurs
		resp.TotalBusinesses = businesses
		resp.TotalPayments = payments.Total
		resp.PaidPayments = payments.Paid
		resp.UnpaidPayments = payments.Unpaid
		resp.PendingPayments = payments.Pending
		resp.OverduePayments = payments.Overdue
		resp.RecentRegistrations = recent
		resp.BootcampAssignments = assignments

		for _, h := range hubs {
			resp.HubPerformance = append(resp.HubPerformance, api.HubPerformanceRow(*h))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}
