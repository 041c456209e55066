package crm

import "time"

func day(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

// NewSeededMock returns a store filled with sample data.
func NewSeededMock(latency time.Duration) *Mock {
	s := NewMock()
	s.Latency = latency

	vendors := []Vendor{
		{ID: SeedID("vendor/northwind"), Name: "Northwind Traders", Contact: "Ana Ruiz", Email: "ana@northwind.example", City: "Seattle", Category: "Hardware", Active: true, Since: day(2019, 3, 4)},
		{ID: SeedID("vendor/contoso"), Name: "Contoso", Contact: "Liam Chen", Email: "liam@contoso.example", City: "Redmond", Category: "Software", Active: true, Since: day(2020, 11, 17)},
		{ID: SeedID("vendor/fabrikam"), Name: "fabrikam", Contact: "Maya Patel", Email: "maya@fabrikam.example", City: "Austin", Category: "Furniture", Active: false, Since: day(2018, 6, 1)},
		{ID: SeedID("vendor/tailspin"), Name: "Tailspin Toys", Contact: "Omar Haddad", City: "Denver", Category: "Hardware", Active: true, Since: day(2022, 1, 9)},
		{ID: SeedID("vendor/adatum"), Name: "A. Datum", Contact: "Eva Novak", Email: "eva@adatum.example", City: "Boston", Category: "Services", Active: true, Since: day(2021, 8, 23)},
	}
	for _, v := range vendors {
		s.Add(v)
	}

	assets := []Asset{
		{ID: SeedID("asset/LT-0009"), Tag: "LT-0009", Name: "ThinkPad X1", Category: "Laptop", Status: "in use", PurchasedAt: day(2023, 2, 14), Cost: 1899},
		{ID: SeedID("asset/LT-0010"), Tag: "LT-0010", Name: "MacBook Pro 14", Category: "Laptop", Status: "in use", PurchasedAt: day(2023, 5, 2), Cost: 2499},
		{ID: SeedID("asset/MN-0101"), Tag: "MN-0101", Name: "Dell U2723QE", Category: "Monitor", Status: "storage", PurchasedAt: day(2022, 9, 30), Cost: 579},
		{ID: SeedID("asset/DK-0042"), Tag: "DK-0042", Name: "Standing desk", Category: "Furniture", Status: "in use", PurchasedAt: day(2021, 4, 12), Cost: 640},
		{ID: SeedID("asset/PH-0007"), Tag: "PH-0007", Name: "iPhone 15", Category: "Phone", Status: "repair", Cost: 999},
	}
	assets[0].VendorID, assets[0].VendorName = vendors[0].Key(), vendors[0].Name
	assets[2].VendorID, assets[2].VendorName = vendors[3].Key(), vendors[3].Name
	assets[3].VendorID, assets[3].VendorName = vendors[2].Key(), vendors[2].Name
	for _, a := range assets {
		s.Add(a)
	}

	s.Add(
		Campaign{ID: SeedID("campaign/spring"), Name: "Spring Launch", Channel: "email", Status: "active", Budget: 12000, StartsAt: day(2024, 3, 1), EndsAt: day(2024, 5, 31)},
		Campaign{ID: SeedID("campaign/webinar"), Name: "Partner webinar", Channel: "events", Status: "planned", Budget: 4500, StartsAt: day(2024, 9, 10)},
		Campaign{ID: SeedID("campaign/retarget"), Name: "Retargeting Q4", Channel: "ads", Status: "paused", Budget: 30000, StartsAt: day(2023, 10, 1), EndsAt: day(2023, 12, 31)},
		Campaign{ID: SeedID("campaign/newsletter"), Name: "newsletter", Channel: "email", Status: "active", Budget: 800, StartsAt: day(2022, 1, 1)},
	)

	s.Add(
		Deal{ID: SeedID("deal/1"), Title: "Fleet refresh", Company: "Globex", Stage: "proposal", Amount: 48000, Owner: "Ana", CloseDate: day(2024, 7, 1)},
		Deal{ID: SeedID("deal/2"), Title: "Support renewal", Company: "Initech", Stage: "won", Amount: 9000, Owner: "Liam", CloseDate: day(2024, 2, 15)},
		Deal{ID: SeedID("deal/3"), Title: "Office fit-out", Company: "Umbrella", Stage: "negotiation", Amount: 125000, Owner: "Maya"},
		Deal{ID: SeedID("deal/4"), Title: "Pilot", Company: "Hooli", Stage: "qualification", Amount: 10000, Owner: "Ana", CloseDate: day(2024, 10, 20)},
	)

	s.Add(
		Lead{ID: SeedID("lead/bob"), Name: "Bob Stone", Company: "Globex", Email: "bob@globex.example", Source: "web", Status: "new", Score: 9, CreatedAt: day(2024, 4, 2)},
		Lead{ID: SeedID("lead/alice"), Name: "alice Moreau", Company: "Initech", Email: "alice@initech.example", Source: "referral", Status: "qualified", Score: 72, CreatedAt: day(2024, 1, 19)},
		Lead{ID: SeedID("lead/carlos"), Name: "Carlos Diaz", Company: "Hooli", Source: "event", Status: "contacted", Score: 40, CreatedAt: day(2023, 12, 5)},
		Lead{ID: SeedID("lead/dana"), Name: "Dana Kim", Company: "Umbrella", Email: "dana@umbrella.example", Source: "web", Status: "lost", Score: 100, CreatedAt: day(2023, 8, 30)},
		Lead{ID: SeedID("lead/erin"), Name: "Erin Walsh", Source: "import", Status: "new", Score: 15, CreatedAt: day(2024, 5, 11)},
	)
	return s
}
