package models

const (
	// RoleAdmin may create, update, and delete catalog products.
	RoleAdmin = "admin"
	// RoleCustomer may browse the catalog and manage a cart.
	RoleCustomer = "customer"
)
