package analytics

import "context"

// AnalyticsService computes derived statistics from shift, employee, contract
// and attendance data. Results are recomputed on every call.
type AnalyticsService interface {
	// OvertimeReport returns contracted-vs-worked statistics per employee
	// plus the per-weekday overtime totals series
	OvertimeReport(ctx context.Context, req ReportRequest) (OvertimeReportResponse, error)

	// TardinessReport returns late-arrival and unauthorized-absence
	// statistics per employee
	TardinessReport(ctx context.Context, req ReportRequest) (TardinessReportResponse, error)
}
