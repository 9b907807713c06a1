package domain

// Car is a rentable vehicle belonging to an agency.
type Car struct {
	Record
	Make      string  `json:"make"`
	Model     string  `json:"model"`
	Plate     string  `json:"plate"`
	CarClass  string  `json:"carClass"` // economy, compact, suv, luxury, van
	AgencyID  string  `json:"agencyId"`
	DailyRate float64 `json:"dailyRate"`
	Status    string  `json:"status"`
}

// Agency is a rental branch that owns cars.
type Agency struct {
	Record
	Name   string `json:"name"`
	City   string `json:"city"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Status string `json:"status"`
}

// Client is a business account renting on behalf of its staff.
type Client struct {
	Record
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Status  string `json:"status"`
}

// Customer is an individual renter.
type Customer struct {
	Record
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Status    string `json:"status"`
}

// Product is a sellable add-on such as a child seat or insurance package.
type Product struct {
	Record
	Name       string  `json:"name"`
	SKU        string  `json:"sku"`
	CategoryID string  `json:"categoryId"`
	Price      float64 `json:"price"`
	Status     string  `json:"status"`
}

// Category groups products.
type Category struct {
	Record
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// FAQ is a published question and answer pair.
type FAQ struct {
	Record
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
	Status   string `json:"status"`
}

// Lead is a prospective customer captured by a marketing channel.
type Lead struct {
	Record
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Source string `json:"source"` // web, referral, phone, event
	Status string `json:"status"`
}

// TradePerson is a service provider (mechanic, cleaner, driver) awaiting or
// holding marketplace approval.
type TradePerson struct {
	Record
	Name     string `json:"name"`
	Email    string `json:"email"`
	Trade    string `json:"trade"`
	Position string `json:"position"` // junior, senior, lead
	City     string `json:"city"`
	Status   string `json:"status"`
}

// Transaction is a payment recorded against a customer.
type Transaction struct {
	Record
	Reference    string  `json:"reference"`
	CustomerName string  `json:"customerName"`
	Amount       float64 `json:"amount"`
	Currency     string  `json:"currency"`
	Method       string  `json:"method"` // card, cash, transfer
	Status       string  `json:"status"`
}

// User is a dashboard operator.
type User struct {
	Record
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"` // admin, manager, agent
	Status string `json:"status"`
}

// ServiceQuestion is a question asked of customers when booking a service.
type ServiceQuestion struct {
	Record
	Question string `json:"question"`
	Service  string `json:"service"`
	Category string `json:"category"`
	Status   string `json:"status"`
}
