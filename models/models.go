package models

import "time"

type Employee struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	LoginID    string `gorm:"unique;not null" json:"login_id"`
	Name       string `gorm:"not null" json:"name"`
	Email      string `gorm:"unique;not null" json:"email"`
	Mobile     string `json:"mobile"`
	Department string `json:"department"`
	Position   string `json:"position"`
	Password   string `json:"-"`

	Salaries    []Salary     `gorm:"foreignKey:EmployeeID" json:"-"`
	Attendances []Attendance `gorm:"foreignKey:EmployeeID" json:"-"`
}

// Salary is one payroll snapshot. Rows accumulate per employee; nothing
// updates or deduplicates them after insert.
type Salary struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	EmployeeID uint    `gorm:"not null;index" json:"employee_id"`
	Basic      float64 `json:"basic"`
	HRA        float64 `json:"hra"`
	Allowance  float64 `json:"allowance"`
	LTA        float64 `json:"lta"`
	PF         float64 `json:"pf"`
	Tax        float64 `json:"tax"`
	NetSalary  float64 `json:"net_salary"`
}

type Attendance struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	EmployeeID uint      `gorm:"not null;index" json:"employee_id"`
	Date       time.Time `json:"date"`
	CheckIn    string    `json:"check_in"`  // time of day, e.g. "09:00"
	CheckOut   string    `json:"check_out"` // time of day, e.g. "18:00"
	Status     string    `json:"status"`    // present, absent, ...
}
