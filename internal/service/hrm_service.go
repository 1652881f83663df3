package service

import (
	"errors"
	"fmt"
	"time"

	"go-restaurant-pos/internal/model"
	"go-restaurant-pos/internal/repository"
	"go-restaurant-pos/pkg/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrAlreadyCheckedIn   = errors.New("employee is already checked in")
	ErrNotCheckedIn       = errors.New("employee has no open attendance")
	ErrPayrollNotFound    = errors.New("payroll record not found")
	ErrPayrollAlreadyPaid = errors.New("payroll has already been paid")
)

type HRMService interface {
	CreateEmployee(req *model.Employee, userID string) error
	UpdateEmployee(id uuid.UUID, req *model.Employee, userID string) (*model.Employee, error)
	DeleteEmployee(id uuid.UUID, userID string) error
	GetEmployees() ([]model.Employee, error)

	CheckIn(employeeID uuid.UUID, userID string) (*model.Attendance, error)
	CheckOut(employeeID uuid.UUID, userID string) (*model.Attendance, error)
	GetTodayAttendances() ([]model.Attendance, error)

	CreatePayroll(req *CreatePayrollRequest, userID string) (*model.Payroll, error)
	MarkPayrollPaid(id uuid.UUID, userID string) (*model.Payroll, error)
	GetPayrolls(month, year int) ([]model.Payroll, *PayrollSummary, error)
}

type CreatePayrollRequest struct {
	EmployeeID uuid.UUID       `json:"employee_id" validate:"uuid_required"`
	Month      int             `json:"month" validate:"required,gte=1,lte=12"`
	Year       int             `json:"year" validate:"required"`
	BaseSalary decimal.Decimal `json:"base_salary"`
	Bonus      decimal.Decimal `json:"bonus"`
	Deduction  decimal.Decimal `json:"deduction"`
}

// PayrollSummary backs the HRM overview cards for one month
type PayrollSummary struct {
	TotalNet     decimal.Decimal `json:"total_net"`
	PendingCount int             `json:"pending_count"`
}

// SummarizePayrolls totals net salary and counts unpaid records
func SummarizePayrolls(payrolls []model.Payroll) PayrollSummary {
	summary := PayrollSummary{TotalNet: decimal.Zero}
	for _, p := range payrolls {
		summary.TotalNet = summary.TotalNet.Add(p.NetSalary)
		if p.Status == model.PayrollPending {
			summary.PendingCount++
		}
	}
	return summary
}

type hrmService struct {
	employeeRepo repository.EmployeeRepository
	auditRepo    repository.AuditRepository
}

func NewHRMService(employeeRepo repository.EmployeeRepository, auditRepo repository.AuditRepository) HRMService {
	return &hrmService{employeeRepo: employeeRepo, auditRepo: auditRepo}
}

func (s *hrmService) CreateEmployee(req *model.Employee, userID string) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	req.CreatedBy = userID
	req.UpdatedBy = userID
	if err := s.employeeRepo.Create(req); err != nil {
		return err
	}

	s.auditRepo.Create(auditEntry(userID, "erp", "create", "employee", req.ID.String(),
		fmt.Sprintf("employee %s created", req.FullName)))
	return nil
}

func (s *hrmService) UpdateEmployee(id uuid.UUID, req *model.Employee, userID string) (*model.Employee, error) {
	employee, err := s.employeeRepo.FindByID(id)
	if err != nil {
		return nil, ErrEmployeeNotFound
	}

	employee.FullName = req.FullName
	employee.Position = req.Position
	employee.Phone = req.Phone
	employee.Email = req.Email
	employee.Salary = req.Salary
	employee.HireDate = req.HireDate
	employee.IsActive = req.IsActive
	employee.UpdatedBy = userID

	if err := s.employeeRepo.Update(employee); err != nil {
		return nil, err
	}

	s.auditRepo.Create(auditEntry(userID, "erp", "update", "employee", id.String(),
		fmt.Sprintf("employee %s updated", employee.FullName)))
	return employee, nil
}

func (s *hrmService) DeleteEmployee(id uuid.UUID, userID string) error {
	if _, err := s.employeeRepo.FindByID(id); err != nil {
		return ErrEmployeeNotFound
	}
	if err := s.employeeRepo.Delete(id, userID); err != nil {
		return err
	}
	s.auditRepo.Create(auditEntry(userID, "erp", "delete", "employee", id.String(), "employee removed"))
	return nil
}

func (s *hrmService) GetEmployees() ([]model.Employee, error) {
	return s.employeeRepo.FindAll()
}

func (s *hrmService) CheckIn(employeeID uuid.UUID, userID string) (*model.Attendance, error) {
	if _, err := s.employeeRepo.FindByID(employeeID); err != nil {
		return nil, ErrEmployeeNotFound
	}

	if _, err := s.employeeRepo.FindOpenAttendance(employeeID); err == nil {
		return nil, ErrAlreadyCheckedIn
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	attendance := &model.Attendance{
		EmployeeID: employeeID,
		CheckIn:    time.Now(),
	}
	attendance.CreatedBy = userID
	attendance.UpdatedBy = userID

	if err := s.employeeRepo.CreateAttendance(attendance); err != nil {
		return nil, err
	}
	return attendance, nil
}

func (s *hrmService) CheckOut(employeeID uuid.UUID, userID string) (*model.Attendance, error) {
	attendance, err := s.employeeRepo.FindOpenAttendance(employeeID)
	if err != nil {
		return nil, ErrNotCheckedIn
	}

	now := time.Now()
	attendance.CheckOut = &now
	attendance.UpdatedBy = userID

	if err := s.employeeRepo.UpdateAttendance(attendance); err != nil {
		return nil, err
	}
	return attendance, nil
}

func (s *hrmService) GetTodayAttendances() ([]model.Attendance, error) {
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return s.employeeRepo.FindAttendancesSince(midnight)
}

// CreatePayroll computes net salary as base + bonus - deduction
func (s *hrmService) CreatePayroll(req *CreatePayrollRequest, userID string) (*model.Payroll, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	if _, err := s.employeeRepo.FindByID(req.EmployeeID); err != nil {
		return nil, ErrEmployeeNotFound
	}

	payroll := &model.Payroll{
		EmployeeID: req.EmployeeID,
		Month:      req.Month,
		Year:       req.Year,
		BaseSalary: req.BaseSalary,
		Bonus:      req.Bonus,
		Deduction:  req.Deduction,
		NetSalary:  req.BaseSalary.Add(req.Bonus).Sub(req.Deduction),
		Status:     model.PayrollPending,
	}
	payroll.CreatedBy = userID
	payroll.UpdatedBy = userID

	if err := s.employeeRepo.CreatePayroll(payroll); err != nil {
		return nil, err
	}

	s.auditRepo.Create(auditEntry(userID, "erp", "create", "payroll", payroll.ID.String(),
		fmt.Sprintf("payroll %d/%d net %s", req.Month, req.Year, payroll.NetSalary.StringFixed(2))))
	return payroll, nil
}

func (s *hrmService) MarkPayrollPaid(id uuid.UUID, userID string) (*model.Payroll, error) {
	payroll, err := s.employeeRepo.FindPayrollByID(id)
	if err != nil {
		return nil, ErrPayrollNotFound
	}
	if payroll.Status == model.PayrollPaid {
		return nil, ErrPayrollAlreadyPaid
	}

	payroll.Status = model.PayrollPaid
	payroll.UpdatedBy = userID
	if err := s.employeeRepo.UpdatePayroll(payroll); err != nil {
		return nil, err
	}

	s.auditRepo.Create(auditEntry(userID, "erp", "update", "payroll", id.String(), "payroll marked paid"))
	return payroll, nil
}

func (s *hrmService) GetPayrolls(month, year int) ([]model.Payroll, *PayrollSummary, error) {
	payrolls, err := s.employeeRepo.FindPayrolls(month, year)
	if err != nil {
		return nil, nil, err
	}
	summary := SummarizePayrolls(payrolls)
	return payrolls, &summary, nil
}
