package models

// PaymentTotals partitions the payment count by status.
type PaymentTotals struct {
	Total   int `db:"total"`
	Paid    int `db:"paid"`
	Unpaid  int `db:"unpaid"`
	Pending int `db:"pending"`
	Overdue int `db:"overdue"`
}

// HubPerformance aggregates per-hub activity, grouped by hub label.
type HubPerformance struct {
	Hub                 string `db:"hub"`
	TotalEntrepreneurs  int    `db:"total_entrepreneurs"`
	TotalBusinesses     int    `db:"total_businesses"`
	ActiveEntrepreneurs int    `db:"active_entrepreneurs"`
	TotalPayments       int    `db:"total_payments"`
	PaidPayments        int    `db:"paid_payments"`
}
