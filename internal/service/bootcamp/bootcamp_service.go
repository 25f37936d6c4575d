package bootcamp

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"time"

	"entrepreneur-tracker/internal/http/api"
	"entrepreneur-tracker/internal/models"
	repo "entrepreneur-tracker/internal/repository"
	"entrepreneur-tracker/internal/service"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=AssignmentProvider
type AssignmentProvider interface {
	GetByUserID(ctx context.Context, userID int64) (*models.BootcampAssignment, error)
	Insert(ctx context.Context, a *models.BootcampAssignment) (*models.BootcampAssignment, error)
	Update(ctx context.Context, u repo.AssignmentUpdate) (*models.BootcampAssignment, error)
	ListCohorts(ctx context.Context, f repo.CohortFilter) ([]*models.CohortRow, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=UserGetter
type UserGetter interface {
	GetByID(ctx context.Context, userID int64) (*models.User, error)
}

type BootcampService struct {
	trm         service.TransactionManager
	assignments AssignmentProvider
	users       UserGetter
}

func NewBootcampService(trm service.TransactionManager, assignments AssignmentProvider, users UserGetter) *BootcampService {
	return &BootcampService{
		trm:         trm,
		assignments: assignments,
		users:       users,
	}
}

type AssignInput struct {
	UserID         int64
	Cohort         string
	CohortYear     *int
	Attendance     *int
	TotalSessions  *int
	BootcampStatus *string
}

var yearPattern = regexp.MustCompile(`\d{4}`)

// cohortYear resolves the assignment year: explicit value first, then a
// 4-digit run inside the cohort label ("Cohort 2024 B"), then the current
// calendar year.
func cohortYear(explicit *int, cohort string) int {
	if explicit != nil {
		return *explicit
	}
	if m := yearPattern.FindString(cohort); m != "" {
		year, _ := strconv.Atoi(m)
		return year
	}
	return time.Now().Year()
}

// Assign upserts the user's single assignment. The returned bool reports
// whether a new row was inserted.
func (s *BootcampService) Assign(ctx context.Context, in AssignInput) (*api.AssignmentSchema, bool, error) {
	year := cohortYear(in.CohortYear, in.Cohort)

	var (
		result  *models.BootcampAssignment
		created bool
	)

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		if _, err := s.users.GetByID(ctx, in.UserID); err != nil {
			return err
		}

		_, err := s.assignments.GetByUserID(ctx, in.UserID)
		switch {
		case err == nil:
			result, err = s.assignments.Update(ctx, repo.AssignmentUpdate{
				UserID:         in.UserID,
				Cohort:         in.Cohort,
				CohortYear:     year,
				Attendance:     in.Attendance,
				TotalSessions:  in.TotalSessions,
				BootcampStatus: in.BootcampStatus,
			})
			return err
		case errors.Is(err, repo.ErrNotFound):
			created = true

			assignment := &models.BootcampAssignment{
				UserID:         in.UserID,
				Cohort:         in.Cohort,
				CohortYear:     year,
				BootcampStatus: models.BootcampActive,
			}
			if in.Attendance != nil {
				assignment.Attendance = *in.Attendance
			}
			if in.TotalSessions != nil {
				assignment.TotalSessions = *in.TotalSessions
			}
			if in.BootcampStatus != nil {
				assignment.BootcampStatus = *in.BootcampStatus
			}

			result, err = s.assignments.Insert(ctx, assignment)
			return err
		default:
			return err
		}
	})
	if err != nil {
		return nil, false, err
	}

	schema := Schema(result)
	return &schema, created, nil
}

func (s *BootcampService) Cohorts(ctx context.Context, f repo.CohortFilter) ([]api.CohortRowSchema, error) {
	rows, err := s.assignments.ListCohorts(ctx, f)
	if err != nil {
		return nil, err
	}

	resp := make([]api.CohortRowSchema, 0, len(rows))
	for _, r := range rows {
		resp = append(resp, api.CohortRowSchema{
			ID:             r.ID,
			Cohort:         r.Cohort,
			CohortYear:     r.CohortYear,
			AssignedDate:   r.AssignedDate,
			Attendance:     r.Attendance,
			TotalSessions:  r.TotalSessions,
			BootcampStatus: r.BootcampStatus,
			UserID:         r.UserID,
			Name:           r.Name,
			Surname:        r.Surname,
			Email:          r.Email,
			Phone:          r.Phone,
			Hub:            r.Hub,
		})
	}
	return resp, nil
}

// Schema converts a stored assignment into its response shape.
func Schema(a *models.BootcampAssignment) api.AssignmentSchema {
	return api.AssignmentSchema{
		ID:             a.ID,
		UserID:         a.UserID,
		Cohort:         a.Cohort,
		CohortYear:     a.CohortYear,
		Attendance:     a.Attendance,
		TotalSessions:  a.TotalSessions,
		BootcampStatus: a.BootcampStatus,
		AssignedDate:   a.AssignedDate,
	}
}
