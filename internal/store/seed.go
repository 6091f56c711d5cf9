package store

import "github.com/adilbekov/catalog-admin/internal/model"

// SeedProducts fills the store with the demo catalog the panel ships with.
func SeedProducts(s *ProductStore) {
	s.Replace([]model.Product{
		{ID: 1, Name: "T-Shirt", Category: "Clothing", Price: "$19.99", Stock: 43, Status: model.StatusActive},
		{ID: 2, Name: "Jeans", Category: "Clothing", Price: "$49.99", Stock: 32, Status: model.StatusActive},
		{ID: 3, Name: "Sneakers", Category: "Footwear", Price: "$79.99", Stock: 12, Status: model.StatusActive},
		{ID: 4, Name: "Watch", Category: "Accessories", Price: "$129.99", Stock: 8, Status: model.StatusLowStock},
		{ID: 5, Name: "Backpack", Category: "Accessories", Price: "$59.99", Stock: 0, Status: model.StatusOutOfStock},
	})
}

// SeedCategories fills the store with the demo categories.
func SeedCategories(s *CategoryStore) {
	s.Replace([]model.Category{
		{ID: 1, Name: "Clothing"},
		{ID: 2, Name: "Footwear"},
		{ID: 3, Name: "Accessories"},
	})
}

// SeedUsers fills the store with the demo accounts. The first account is
// the administrator; adminHash is the bcrypt hash of the configured admin
// password so the seeded admin can actually sign in. The remaining demo
// rows carry no credentials and cannot authenticate.
func SeedUsers(s *UserStore, adminEmail, adminHash string) {
	s.Replace([]model.User{
		{ID: 1, Name: "John Doe", Email: adminEmail, Role: model.RoleAdmin, Status: model.UserStatusActive, LastLogin: "2 hours ago", PasswordHash: adminHash},
		{ID: 2, Name: "Jane Smith", Email: "jane@example.com", Role: model.RoleManager, Status: model.UserStatusActive, LastLogin: "1 day ago"},
		{ID: 3, Name: "Bob Johnson", Email: "bob@example.com", Role: model.RoleUser, Status: model.UserStatusActive, LastLogin: "3 days ago"},
		{ID: 4, Name: "Alice Brown", Email: "alice@example.com", Role: model.RoleUser, Status: model.UserStatusInactive, LastLogin: "2 weeks ago"},
		{ID: 5, Name: "Charlie Green", Email: "charlie@example.com", Role: model.RoleUser, Status: model.UserStatusPending, LastLogin: "Never"},
	})
}
