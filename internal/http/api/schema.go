package api

import "time"

// UserSchema is the public slice of a user account. The credential hash never
// leaves the server.
type UserSchema struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Surname string  `json:"surname"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone"`
	Hub     *string `json:"hub"`
	Role    string  `json:"role"`
}

type AuthResponse struct {
	Token string     `json:"token"`
	User  UserSchema `json:"user"`
}

type BusinessSchema struct {
	ID                 int64      `json:"id"`
	UserID             int64      `json:"user_id"`
	Name               string     `json:"name"`
	Type               *string    `json:"type"`
	RegistrationNumber string     `json:"registration_number"`
	Location           *string    `json:"location"`
	Industry           *string    `json:"industry"`
	YearsOperating     *int       `json:"years_operating"`
	Description        *string    `json:"description"`
	TurnoverRange      *string    `json:"turnover_range"`
	LogoURL            *string    `json:"logo_url"`
	CreatedAt          *time.Time `json:"created_at"`
}

type BusinessResponse struct {
	Business BusinessSchema `json:"business"`
}

type BusinessesResponse struct {
	Businesses []BusinessSchema `json:"businesses"`
}

// AdminBusinessRow lists a business together with its owner's contacts, used
// by admins picking a business for a payment record.
type AdminBusinessRow struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	RegistrationNumber string `json:"registration_number"`
	OwnerName          string `json:"owner_name"`
	OwnerSurname       string `json:"owner_surname"`
	OwnerEmail         string `json:"owner_email"`
}

type AdminBusinessesResponse struct {
	Businesses []AdminBusinessRow `json:"businesses"`
}

type PaymentSchema struct {
	ID         int64      `json:"id"`
	BusinessID int64      `json:"business_id"`
	Month      int        `json:"month"`
	Year       int        `json:"year"`
	Status     string     `json:"status"`
	Notes      *string    `json:"notes"`
	CreatedAt  *time.Time `json:"created_at"`
}

type PaymentResponse struct {
	Payment PaymentSchema `json:"payment"`
}

type AdminPaymentRow struct {
	PaymentSchema
	BusinessName       string  `json:"business_name"`
	RegistrationNumber *string `json:"registration_number"`
	OwnerName          *string `json:"user_name"`
	OwnerSurname       *string `json:"user_surname"`
	OwnerEmail         *string `json:"email"`
}

type AdminPaymentsResponse struct {
	Payments []AdminPaymentRow `json:"payments"`
}

type EntrepreneurSchema struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	Surname       string     `json:"surname"`
	IDNumber      string     `json:"id_number"`
	Email         string     `json:"email"`
	Phone         *string    `json:"phone"`
	Hub           *string    `json:"hub"`
	Status        string     `json:"status"`
	CreatedAt     *time.Time `json:"created_at"`
	BusinessCount int        `json:"business_count"`
}

type EntrepreneursResponse struct {
	Entrepreneurs []EntrepreneurSchema `json:"entrepreneurs"`
}

// EntrepreneurProfile is the shape returned after an admin update: profile
// fields only, no aggregate count.
type EntrepreneurProfile struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Surname string  `json:"surname"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone"`
	Hub     *string `json:"hub"`
	Status  string  `json:"status"`
}

type UpdatedEntrepreneurResponse struct {
	User EntrepreneurProfile `json:"user"`
}

// DashboardPayment is a payment row on the entrepreneur's own dashboard,
// labelled with the business it belongs to.
type DashboardPayment struct {
	PaymentSchema
	BusinessName string `json:"business_name"`
}

type DashboardResponse struct {
	User       UserSchema         `json:"user"`
	Businesses []BusinessSchema   `json:"businesses"`
	Payments   []DashboardPayment `json:"payments"`
	Bootcamp   *AssignmentSchema  `json:"bootcamp"`
}

type AssignmentSchema struct {
	ID             int64      `json:"id"`
	UserID         int64      `json:"user_id"`
	Cohort         string     `json:"cohort"`
	CohortYear     int        `json:"cohort_year"`
	Attendance     int        `json:"attendance"`
	TotalSessions  int        `json:"total_sessions"`
	BootcampStatus string     `json:"bootcamp_status"`
	AssignedDate   *time.Time `json:"assigned_date"`
}

type AssignmentResponse struct {
	Assignment AssignmentSchema `json:"assignment"`
}

type CohortRowSchema struct {
	ID             int64      `json:"id"`
	Cohort         string     `json:"cohort"`
	CohortYear     int        `json:"cohort_year"`
	AssignedDate   *time.Time `json:"assigned_date"`
	Attendance     int        `json:"attendance"`
	TotalSessions  int        `json:"total_sessions"`
	BootcampStatus string     `json:"bootcamp_status"`
	UserID         int64      `json:"user_id"`
	Name           string     `json:"name"`
	Surname        string     `json:"surname"`
	Email          string     `json:"email"`
	Phone          *string    `json:"phone"`
	Hub            *string    `json:"hub"`
}

type CohortsResponse struct {
	Assignments []CohortRowSchema `json:"assignments"`
}

type HubPerformanceRow struct {
	Hub                 string `json:"hub"`
	TotalEntrepreneurs  int    `json:"total_entrepreneurs"`
	TotalBusinesses     int    `json:"total_businesses"`
	ActiveEntrepreneurs int    `json:"active_entrepreneurs"`
	TotalPayments       int    `json:"total_payments"`
	PaidPayments        int    `json:"paid_payments"`
}

type ReportsResponse struct {
	TotalEntrepreneurs  int                 `json:"totalEntrepreneurs"`
	TotalBusinesses     int                 `json:"totalBusinesses"`
	TotalPayments       int                 `json:"totalPayments"`
	PaidPayments        int                 `json:"paidPayments"`
	UnpaidPayments      int                 `json:"unpaidPayments"`
	PendingPayments     int                 `json:"pendingPayments"`
	OverduePayments     int                 `json:"overduePayments"`
	RecentRegistrations int                 `json:"recentRegistrations"`
	BootcampAssignments int                 `json:"bootcampAssignments"`
	HubPerformance      []HubPerformanceRow `json:"hubPerformance"`
}
