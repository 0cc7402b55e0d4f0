/*
seed.go - Demo roster for local runs

PURPOSE:
  Seeds a small roster covering every category, sixty days of daily metrics
  ending at the given date, and a full target table. Enough to exercise
  every settlement formula from a fresh database without warehouse access.
*/
package sqlite

import (
	"context"
	"fmt"
	"time"
)

// Seed populates demo data: one or two couriers per category, daily metrics
// for the 60 days up to and including asOf, and targets for every
// day-of-month. Idempotent - rows are inserted with REPLACE semantics.
func (s *Store) Seed(ctx context.Context, asOf time.Time) error {
	couriers := []Courier{
		{BarqID: 1001, Name: "Fahad Al-Otaibi", IBAN: "SA4420000001234567891234", IDNumber: "2431556677",
			JoiningDate: asOf.AddDate(-1, -2, 0), Sponsorship: "Inhouse", Project: "Motorcycle", Supervisor: "Khalid"},
		{BarqID: 1002, Name: "Yousef Hassan", IBAN: "SA0380000000608010167519", IDNumber: "2387001122",
			JoiningDate: asOf.AddDate(0, 0, -12), Sponsorship: "Inhouse", Project: "Motorcycle", Supervisor: "Khalid"},
		{BarqID: 2001, Name: "Imran Siddiqui", IBAN: "SA9150000000034567112233", IDNumber: "2544009871",
			JoiningDate: asOf.AddDate(0, -1, 0), Sponsorship: "Trial", Project: "Food", Supervisor: "Majed"},
		{BarqID: 2002, Name: "Rashid Mahmood", IBAN: "SA2910000001100550099887", IDNumber: "2400112233",
			JoiningDate: mustDate(2024, 3, 18), Sponsorship: "Inhouse", Project: "Food", Supervisor: "Majed"},
		{BarqID: 2003, Name: "Noor Al-Din", IBAN: "SA7760000009988776655443", IDNumber: "2299887766",
			JoiningDate: mustDate(2022, 11, 2), Sponsorship: "Inhouse", Project: "Food", Supervisor: "Majed"},
		{BarqID: 3001, Name: "Tariq Aziz", IBAN: "SA5530000005544332211009", IDNumber: "2511223344",
			JoiningDate: asOf.AddDate(-2, 0, 0), Sponsorship: "Inhouse", Project: "Ecommerce WH", Supervisor: "Saleh"},
		{BarqID: 3002, Name: "Omar Farouq", IBAN: "SA1140000007766554433221", IDNumber: "2466778899",
			JoiningDate: asOf.AddDate(0, -8, 0), Sponsorship: "Inhouse", Project: "Ecommerce", Supervisor: "Saleh"},
		{BarqID: 4001, Name: "Bilal Ahmed", IBAN: "SA6670000002233445566778", IDNumber: "2355443322",
			JoiningDate: asOf.AddDate(-1, 0, 0), Sponsorship: "Ajeer", Project: "Food", Supervisor: "Majed"},
	}
	for _, c := range couriers {
		if err := s.SaveCourier(ctx, c); err != nil {
			return fmt.Errorf("seed courier %d: %w", c.BarqID, err)
		}
	}

	// Daily activity profiles, roughly sized to land near each category's
	// monthly target.
	profiles := map[int64]MetricEntry{
		1001: {Orders: 11, Revenue: 0, GasUsage: 6.5},
		1002: {Orders: 9, Revenue: 0, GasUsage: 5.2},
		2001: {Orders: 14, Revenue: 0, GasUsage: 24},
		2002: {Orders: 17, Revenue: 0, GasUsage: 26},
		2003: {Orders: 21, Revenue: 0, GasUsage: 27},
		3001: {Orders: 18, Revenue: 0, GasUsage: 14},
		3002: {Orders: 6, Revenue: 260, GasUsage: 13},
		4001: {Orders: 16, Revenue: 0, GasUsage: 25},
	}
	for day := 0; day < 60; day++ {
		date := asOf.AddDate(0, 0, -day)
		for id, p := range profiles {
			entry := MetricEntry{BarqID: id, Date: date,
				Orders: p.Orders, Revenue: p.Revenue, GasUsage: p.GasUsage}
			if err := s.RecordMetric(ctx, entry); err != nil {
				return fmt.Errorf("seed metrics for %d: %w", id, err)
			}
		}
	}

	for day := 1; day <= 31; day++ {
		t := TargetRow{
			Day:         day,
			Motorcycle:  260,
			FoodTrial:   390,
			FoodInhouse: 475,
			EcommerceWH: 500,
			Ecommerce:   6630,
			Ajeer:       400,
		}
		if err := s.SetTargets(ctx, t); err != nil {
			return fmt.Errorf("seed targets day %d: %w", day, err)
		}
	}

	return nil
}

func mustDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}
