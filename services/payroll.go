package services

import "hrm_backend/models"

// Flat components applied to every breakdown.
const (
	FlatTax       = 200.0
	FlatAllowance = 1000.0
	FlatLTA       = 2000.0
)

// ComputeBreakdown derives the stored salary components from a raw wage
// figure. Net pay is wage + hra - pf - tax; allowance and lta are recorded
// on the snapshot but never enter the net figure. Existing payslips depend
// on these exact numbers, so the formula must not change.
func ComputeBreakdown(employeeID uint, wage float64) models.Salary {
	basic := wage * 0.5
	hra := basic * 0.5
	pf := basic * 0.12

	return models.Salary{
		EmployeeID: employeeID,
		Basic:      basic,
		HRA:        hra,
		Allowance:  FlatAllowance,
		LTA:        FlatLTA,
		PF:         pf,
		Tax:        FlatTax,
		NetSalary:  wage + hra - pf - FlatTax,
	}
}
