package repository

import (
	"time"

	"go-restaurant-pos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EmployeeRepository interface {
	Create(employee *model.Employee) error
	Update(employee *model.Employee) error
	Delete(id uuid.UUID, deletedBy string) error
	FindByID(id uuid.UUID) (*model.Employee, error)
	FindAll() ([]model.Employee, error)

	CreateAttendance(attendance *model.Attendance) error
	UpdateAttendance(attendance *model.Attendance) error
	FindOpenAttendance(employeeID uuid.UUID) (*model.Attendance, error)
	FindAttendancesSince(since time.Time) ([]model.Attendance, error)

	CreatePayroll(payroll *model.Payroll) error
	UpdatePayroll(payroll *model.Payroll) error
	FindPayrollByID(id uuid.UUID) (*model.Payroll, error)
	FindPayrolls(month, year int) ([]model.Payroll, error)
}

type employeeRepo struct {
	db *gorm.DB
}

func NewEmployeeRepo(db *gorm.DB) EmployeeRepository {
	return &employeeRepo{db}
}

func (r *employeeRepo) Create(employee *model.Employee) error {
	return r.db.Create(employee).Error
}

func (r *employeeRepo) Update(employee *model.Employee) error {
	return r.db.Save(employee).Error
}

func (r *employeeRepo) Delete(id uuid.UUID, deletedBy string) error {
	return r.db.Model(&model.Employee{}).Where("id = ?", id).Updates(map[string]interface{}{
		"deleted_at": gorm.Expr("NOW()"),
		"deleted_by": deletedBy,
	}).Error
}

func (r *employeeRepo) FindByID(id uuid.UUID) (*model.Employee, error) {
	var employee model.Employee
	if err := r.db.First(&employee, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepo) FindAll() ([]model.Employee, error) {
	var employees []model.Employee
	err := r.db.Order("created_at DESC").Find(&employees).Error
	return employees, err
}

func (r *employeeRepo) CreateAttendance(attendance *model.Attendance) error {
	return r.db.Create(attendance).Error
}

func (r *employeeRepo) UpdateAttendance(attendance *model.Attendance) error {
	return r.db.Save(attendance).Error
}

// FindOpenAttendance returns the employee's latest check-in with no check-out
func (r *employeeRepo) FindOpenAttendance(employeeID uuid.UUID) (*model.Attendance, error) {
	var attendance model.Attendance
	err := r.db.Where("employee_id = ? AND check_out IS NULL", employeeID).
		Order("check_in DESC").
		First(&attendance).Error
	if err != nil {
		return nil, err
	}
	return &attendance, nil
}

func (r *employeeRepo) FindAttendancesSince(since time.Time) ([]model.Attendance, error) {
	var attendances []model.Attendance
	err := r.db.Preload("Employee").
		Where("check_in >= ?", since).
		Order("check_in DESC").
		Find(&attendances).Error
	return attendances, err
}

func (r *employeeRepo) CreatePayroll(payroll *model.Payroll) error {
	return r.db.Create(payroll).Error
}

func (r *employeeRepo) UpdatePayroll(payroll *model.Payroll) error {
	return r.db.Save(payroll).Error
}

func (r *employeeRepo) FindPayrollByID(id uuid.UUID) (*model.Payroll, error) {
	var payroll model.Payroll
	if err := r.db.Preload("Employee").First(&payroll, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &payroll, nil
}

func (r *employeeRepo) FindPayrolls(month, year int) ([]model.Payroll, error) {
	var payrolls []model.Payroll
	err := r.db.Preload("Employee").
		Where("month = ? AND year = ?", month, year).
		Find(&payrolls).Error
	return payrolls, err
}
