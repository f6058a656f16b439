package models

import "github.com/shopspring/decimal"

const defaultEmployeeStatus = "active"

// Employee is a staff member; shipments are assigned to employees.
type Employee struct {
	EmpID      uint                `gorm:"primaryKey;column:emp_id" json:"emp_id"`
	Name       *string             `gorm:"size:100" json:"name"`
	Email      *string             `gorm:"size:100;uniqueIndex" json:"email"`
	Phone      *string             `gorm:"size:20" json:"phone"`
	Dob        Date                `json:"dob"`
	Address    *string             `gorm:"type:text" json:"address"`
	HireDate   Date                `json:"hire_date"`
	Salary     decimal.NullDecimal `gorm:"type:numeric(10,2)" json:"salary"`
	Position   *string             `gorm:"size:50" json:"position"`
	Department *string             `gorm:"size:50" json:"department"`
	Status     string              `gorm:"size:20;not null" json:"status"`
}

func (Employee) TableName() string { return "employees" }

type EmployeeCreateRequest struct {
	Name       *string             `json:"name" binding:"omitempty,max=100"`
	Email      *string             `json:"email" binding:"omitempty,max=100"`
	Phone      *string             `json:"phone" binding:"omitempty,max=20"`
	Dob        Date                `json:"dob"`
	Address    *string             `json:"address"`
	HireDate   Date                `json:"hire_date"`
	Salary     decimal.NullDecimal `json:"salary"`
	Position   *string             `json:"position" binding:"omitempty,max=50"`
	Department *string             `json:"department" binding:"omitempty,max=50"`
	Status     *string             `json:"status" binding:"omitempty,max=20"`
}

func (r EmployeeCreateRequest) ToModel() *Employee {
	emp := &Employee{
		Name:       r.Name,
		Email:      r.Email,
		Phone:      r.Phone,
		Dob:        r.Dob,
		Address:    r.Address,
		HireDate:   r.HireDate,
		Salary:     r.Salary,
		Position:   r.Position,
		Department: r.Department,
		Status:     defaultEmployeeStatus,
	}
	if r.Status != nil {
		emp.Status = *r.Status
	}
	return emp
}

type EmployeeUpdateRequest struct {
	Name       Optional[string]          `json:"name"`
	Email      Optional[string]          `json:"email"`
	Phone      Optional[string]          `json:"phone"`
	Dob        Optional[Date]            `json:"dob"`
	Address    Optional[string]          `json:"address"`
	HireDate   Optional[Date]            `json:"hire_date"`
	Salary     Optional[decimal.Decimal] `json:"salary"`
	Position   Optional[string]          `json:"position"`
	Department Optional[string]          `json:"department"`
	Status     Optional[string]          `json:"status"`
}

func (r EmployeeUpdateRequest) Changes() Changes {
	c := Changes{}
	put(c, "name", r.Name)
	put(c, "email", r.Email)
	put(c, "phone", r.Phone)
	put(c, "dob", r.Dob)
	put(c, "address", r.Address)
	put(c, "hire_date", r.HireDate)
	put(c, "salary", r.Salary)
	put(c, "position", r.Position)
	put(c, "department", r.Department)
	put(c, "status", r.Status)
	return c
}

func (r EmployeeUpdateRequest) Validate() error {
	return firstError(
		notNull("status", r.Status),
		maxLen("name", r.Name, 100),
		maxLen("email", r.Email, 100),
		maxLen("phone", r.Phone, 20),
		maxLen("position", r.Position, 50),
		maxLen("department", r.Department, 50),
		maxLen("status", r.Status, 20),
	)
}

// User is a customer account. Password holds a bcrypt hash and is never
// written to responses.
type User struct {
	UserID   uint    `gorm:"primaryKey;column:user_id" json:"user_id"`
	Email    string  `gorm:"size:100;not null;uniqueIndex" json:"email"`
	Username string  `gorm:"size:50;not null;uniqueIndex" json:"username"`
	Password string  `gorm:"size:255;not null" json:"-"`
	Address  *string `gorm:"size:255" json:"address"`
	Phone    *string `gorm:"size:20" json:"phone"`
	Dob      Date    `json:"dob"`
	CardNum  *string `gorm:"size:20" json:"card_num"`
	BankAcc  *string `gorm:"size:20" json:"bank_acc"`
}

func (User) TableName() string { return "users" }

type UserCreateRequest struct {
	Email    string  `json:"email" binding:"required,max=100"`
	Username string  `json:"username" binding:"required,max=50"`
	Password string  `json:"password" binding:"required"`
	Address  *string `json:"address" binding:"omitempty,max=255"`
	Phone    *string `json:"phone" binding:"omitempty,max=20"`
	Dob      Date    `json:"dob"`
	CardNum  *string `json:"card_num" binding:"omitempty,max=20"`
	BankAcc  *string `json:"bank_acc" binding:"omitempty,max=20"`
}

// ToModel copies the plaintext password; callers hash it before storing.
func (r UserCreateRequest) ToModel() *User {
	return &User{
		Email:    r.Email,
		Username: r.Username,
		Password: r.Password,
		Address:  r.Address,
		Phone:    r.Phone,
		Dob:      r.Dob,
		CardNum:  r.CardNum,
		BankAcc:  r.BankAcc,
	}
}

type UserUpdateRequest struct {
	Email    Optional[string] `json:"email"`
	Username Optional[string] `json:"username"`
	Password Optional[string] `json:"password"`
	Address  Optional[string] `json:"address"`
	Phone    Optional[string] `json:"phone"`
	Dob      Optional[Date]   `json:"dob"`
	CardNum  Optional[string] `json:"card_num"`
	BankAcc  Optional[string] `json:"bank_acc"`
}

func (r UserUpdateRequest) Changes() Changes {
	c := Changes{}
	put(c, "email", r.Email)
	put(c, "username", r.Username)
	put(c, "password", r.Password)
	put(c, "address", r.Address)
	put(c, "phone", r.Phone)
	put(c, "dob", r.Dob)
	put(c, "card_num", r.CardNum)
	put(c, "bank_acc", r.BankAcc)
	return c
}

func (r UserUpdateRequest) Validate() error {
	return firstError(
		notNull("email", r.Email),
		notNull("username", r.Username),
		notNull("password", r.Password),
		maxLen("email", r.Email, 100),
		maxLen("username", r.Username, 50),
		maxLen("address", r.Address, 255),
		maxLen("phone", r.Phone, 20),
		maxLen("card_num", r.CardNum, 20),
		maxLen("bank_acc", r.BankAcc, 20),
	)
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Message  string `json:"message"`
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
}
