package mockapi

import "time"

// MockUser is the user shape returned by generators; it deliberately has no
// password field, so seeded passwords never leak into payloads.
type MockUser struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type seedUser struct {
	MockUser
	Password string
}

func seedUsers() []seedUser {
	created := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	return []seedUser{
		{
			MockUser: MockUser{ID: 1, Name: "Admin", Email: "admin@example.com", Phone: "0900000001", Role: "admin", CreatedAt: created},
			Password: "admin123",
		},
		{
			MockUser: MockUser{ID: 2, Name: "Demo User", Email: "user@example.com", Phone: "0900000002", Role: "user", CreatedAt: created},
			Password: "user123",
		},
	}
}

func seedServices() []map[string]any {
	return []map[string]any{
		{
			"id": 1, "name": "Shared Hosting", "service_type": "hosting",
			"monthly_price": 4.99, "yearly_price": 49.90, "hot": true, "active": true,
			"spec": map[string]any{"attributes": map[string]any{
				"storage": "10 GB SSD", "bandwidth": "Unlimited", "domains": 1, "email_accounts": 10,
			}},
		},
		{
			"id": 2, "name": "Business Hosting", "service_type": "hosting",
			"monthly_price": 9.99, "yearly_price": 99.90, "hot": false, "active": true,
			"discount": map[string]any{"code": "BIZ10", "percent": 10, "description": "10% off first year", "max_cycle": 12},
			"spec": map[string]any{"attributes": map[string]any{
				"storage": "50 GB SSD", "bandwidth": "Unlimited", "domains": 5, "email_accounts": 50,
			}},
		},
		{
			"id": 3, "name": "Managed VPS", "service_type": "vps",
			"monthly_price": 24.99, "yearly_price": 249.90, "hot": false, "active": true,
			"spec": map[string]any{"attributes": map[string]any{
				"cpu": "4 vCPU", "ram": "8 GB", "storage": "160 GB NVMe",
			}},
		},
	}
}

func seedPricing() []map[string]any {
	plans := make([]map[string]any, 0, len(seedServices()))
	for _, s := range seedServices() {
		if s["service_type"] == "hosting" {
			plans = append(plans, s)
		}
	}
	return plans
}

func seedDashboard() map[string]any {
	return map[string]any{
		"total_orders":   3,
		"active_orders":  2,
		"pending_orders": 1,
		"total_spent":    159.80,
	}
}
