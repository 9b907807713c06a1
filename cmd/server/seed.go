package main

import (
	"fmt"
	"time"

	"github.com/rezkam/rentdesk/internal/domain"
)

// Demo data for the in-memory source. Items are newest first, matching the
// order the collections keep.

func record(prefix string, i int, now time.Time) domain.Record {
	at := now.Add(-time.Duration(i) * time.Hour)
	return domain.Record{ID: fmt.Sprintf("%s-%03d", prefix, i+1), CreatedAt: at, UpdatedAt: at}
}

func demoAgencies(now time.Time) []domain.Agency {
	cities := []string{"Stockholm", "Gothenburg", "Malmo"}
	out := make([]domain.Agency, len(cities))
	for i, city := range cities {
		out[i] = domain.Agency{
			Record: record("agency", i, now),
			Name:   city + " Central",
			City:   city,
			Email:  fmt.Sprintf("desk%d@rentdesk.example", i+1),
			Status: domain.StatusActive,
		}
	}
	return out
}

func demoCars(now time.Time) []domain.Car {
	models := []struct{ make, model, class string }{
		{"Volvo", "XC60", "suv"},
		{"Volvo", "V60", "compact"},
		{"Fiat", "500", "economy"},
		{"Saab", "9-3", "compact"},
		{"Tesla", "Model Y", "luxury"},
		{"Volkswagen", "Transporter", "van"},
	}
	statuses := []string{domain.CarAvailable, domain.CarAvailable, domain.CarRented, domain.CarMaintenance}
	out := make([]domain.Car, 36)
	for i := range out {
		m := models[i%len(models)]
		out[i] = domain.Car{
			Record:    record("car", i, now),
			Make:      m.make,
			Model:     m.model,
			Plate:     fmt.Sprintf("ABC %03d", i+1),
			CarClass:  m.class,
			AgencyID:  fmt.Sprintf("agency-%03d", i%3+1),
			DailyRate: float64(40 + (i%len(models))*25),
			Status:    statuses[i%len(statuses)],
		}
	}
	return out
}

func demoCustomers(now time.Time) []domain.Customer {
	first := []string{"Astrid", "Erik", "Maja", "Oskar", "Elsa", "Lars"}
	last := []string{"Lindqvist", "Berg", "Holm", "Nyberg"}
	statuses := []string{domain.StatusActive, domain.StatusActive, domain.StatusInactive, domain.CustomerBlocked}
	out := make([]domain.Customer, 24)
	for i := range out {
		out[i] = domain.Customer{
			Record:    record("customer", i, now),
			FirstName: first[i%len(first)],
			LastName:  last[i%len(last)],
			Email:     fmt.Sprintf("customer%d@example.com", i+1),
			Status:    statuses[i%len(statuses)],
		}
	}
	return out
}

func demoFAQs(now time.Time) []domain.FAQ {
	return []domain.FAQ{
		{Record: record("faq", 0, now), Question: "Can I return a car to another branch?", Answer: "Yes, for a one-way fee.", Category: "returns", Status: domain.FAQPublished},
		{Record: record("faq", 1, now), Question: "Which documents do I need?", Answer: "A valid licence and a payment card.", Category: "booking", Status: domain.FAQPublished},
		{Record: record("faq", 2, now), Question: "Is insurance included?", Answer: "Basic cover is included.", Category: "insurance", Status: domain.FAQDraft},
	}
}

func demoLeads(now time.Time) []domain.Lead {
	channels := []string{"web", "referral", "phone", "event"}
	statuses := []string{domain.LeadNew, domain.LeadContacted, domain.LeadQualified, domain.LeadLost, domain.LeadNew}
	out := make([]domain.Lead, 15)
	for i := range out {
		out[i] = domain.Lead{
			Record: record("lead", i, now),
			Name:   fmt.Sprintf("Prospect %d", i+1),
			Email:  fmt.Sprintf("lead%d@example.com", i+1),
			Source: channels[i%len(channels)],
			Status: statuses[i%len(statuses)],
		}
	}
	return out
}

func demoTransactions(now time.Time) []domain.Transaction {
	methods := []string{"card", "cash", "transfer"}
	statuses := []string{domain.TransactionCompleted, domain.TransactionCompleted, domain.TransactionPending, domain.TransactionFailed, domain.TransactionRefunded}
	out := make([]domain.Transaction, 30)
	for i := range out {
		out[i] = domain.Transaction{
			Record:       record("txn", i, now),
			Reference:    fmt.Sprintf("INV-%05d", 1000+i),
			CustomerName: fmt.Sprintf("Customer %d", i%12+1),
			Amount:       float64(50 + i*37%900),
			Currency:     "SEK",
			Method:       methods[i%len(methods)],
			Status:       statuses[i%len(statuses)],
		}
	}
	return out
}
