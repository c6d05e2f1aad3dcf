package model

import (
	"time"
)

const (
	TableBreeds       = "breeds"
	TableCats         = "cats"
	TableCustomers    = "customers"
	TableEmployees    = "employees"
	TableOrders       = "orders"
	TableOrderDetails = "order_details"
)

var ALL_SHOP_TABLES []interface{} = []interface{}{
	Breed{}, Cat{}, Customer{}, Employee{}, Order{}, OrderDetail{},
}

// ALL_TABLE_NAMES lists the tables in migration order.
var ALL_TABLE_NAMES = []string{
	TableBreeds, TableCats, TableCustomers, TableEmployees, TableOrders, TableOrderDetails,
}

// TablesByName maps a table name from the store configuration to its model.
var TablesByName = map[string]interface{}{
	TableBreeds:       Breed{},
	TableCats:         Cat{},
	TableCustomers:    Customer{},
	TableEmployees:    Employee{},
	TableOrders:       Order{},
	TableOrderDetails: OrderDetail{},
}

type Breed struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"not null"`
	IsActive  bool      `json:"is_active" gorm:"not null;default:true"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Breed) TableName() string { return TableBreeds }

type Cat struct {
	ID           uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name         string    `json:"name" gorm:"not null"`
	BreedId      uint      `json:"breed_id" gorm:"index;not null"`
	Age          int       `json:"age" gorm:"not null"`
	Color        string    `json:"color" gorm:"not null"`
	Price        float64   `json:"price" gorm:"type:decimal(10,2);not null"`
	Availability string    `json:"availability" gorm:"not null;default:Available"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (Cat) TableName() string { return TableCats }

// Person is the shape shared by customers and employees.
type Person struct {
	Username    string `json:"username" gorm:"unique;not null"`
	FirstName   string `json:"firstName" gorm:"not null"`
	LastName    string `json:"lastName" gorm:"not null"`
	Email       string `json:"email" gorm:"unique;not null"`
	PhoneNumber string `json:"phoneNumber" gorm:"not null"`
}

type Customer struct {
	ID uint `json:"id" gorm:"primaryKey;autoIncrement"`
	Person
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Customer) TableName() string { return TableCustomers }

type Employee struct {
	ID uint `json:"id" gorm:"primaryKey;autoIncrement"`
	Person
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Employee) TableName() string { return TableEmployees }

// Order holds a single implicit line item. CustomerName and CatName are
// copied at write time and are not kept in sync with later edits.
type Order struct {
	OrderId      uint      `json:"order_id" gorm:"primaryKey;autoIncrement"`
	CustomerId   uint      `json:"customer_id" gorm:"index;not null"`
	CustomerName string    `json:"customer_name" gorm:"not null"`
	CatId        uint      `json:"cat_id" gorm:"index;not null"`
	CatName      string    `json:"cat_name" gorm:"not null"`
	Quantity     int       `json:"quantity" gorm:"not null"`
	UnitPrice    float64   `json:"unitPrice" gorm:"type:decimal(10,2);not null"`
	OrderDate    time.Time `json:"order_date" gorm:"index;not null"`
	TotalAmount  float64   `json:"total_amount" gorm:"type:decimal(10,2);not null"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (Order) TableName() string { return TableOrders }

type OrderDetail struct {
	DetailId  uint      `json:"detail_id" gorm:"primaryKey;autoIncrement"`
	OrderId   uint      `json:"order_id" gorm:"index;not null"`
	CatId     uint      `json:"cat_id" gorm:"index;not null"`
	Quantity  int       `json:"quantity" gorm:"not null"`
	UnitPrice float64   `json:"unitPrice" gorm:"type:decimal(10,2);not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (OrderDetail) TableName() string { return TableOrderDetails }
