package catalog

import (
	"cmp"
	"math"
	"strconv"

	"github.com/rezkam/rentdesk/internal/domain"
	"github.com/rezkam/rentdesk/internal/liststate"
)

// Cars describes the fleet list.
func Cars() Entry[domain.Car] {
	e := newEntry[domain.Car](domain.KindCars, []string{
		domain.CarAvailable, domain.CarRented, domain.CarMaintenance, domain.StatusInactive,
	})
	e.Schema.Search = func(c domain.Car) []string { return []string{c.Make, c.Model, c.Plate} }
	e.Schema.Categories = map[string]func(domain.Car) string{
		"status":   func(c domain.Car) string { return c.Status },
		"carClass": func(c domain.Car) string { return c.CarClass },
		"agency":   func(c domain.Car) string { return c.AgencyID },
	}
	e.Schema.SetStatus = func(c domain.Car, s string) domain.Car { c.Status = s; return c }
	e.Options["carClass"] = []string{"economy", "compact", "suv", "luxury", "van"}
	e.Sorts["make"] = func(a, b domain.Car) int { return byText(a.Make, b.Make) }
	e.Sorts["dailyRate"] = func(a, b domain.Car) int { return cmp.Compare(a.DailyRate, b.DailyRate) }
	return e
}

// Agencies describes rental branches.
func Agencies() Entry[domain.Agency] {
	e := newEntry[domain.Agency](domain.KindAgencies, []string{domain.StatusActive, domain.StatusInactive})
	e.Schema.Search = func(a domain.Agency) []string { return []string{a.Name, a.City, a.Email} }
	e.Schema.Categories = map[string]func(domain.Agency) string{
		"status": func(a domain.Agency) string { return a.Status },
		"city":   func(a domain.Agency) string { return a.City },
	}
	e.Schema.SetStatus = func(a domain.Agency, s string) domain.Agency { a.Status = s; return a }
	e.Sorts["name"] = func(a, b domain.Agency) int { return byText(a.Name, b.Name) }
	return e
}

// Clients describes business accounts.
func Clients() Entry[domain.Client] {
	e := newEntry[domain.Client](domain.KindClients, []string{domain.StatusActive, domain.StatusInactive})
	e.Schema.Search = func(c domain.Client) []string { return []string{c.Name, c.Email, c.Company} }
	e.Schema.Categories = map[string]func(domain.Client) string{
		"status": func(c domain.Client) string { return c.Status },
	}
	e.Schema.SetStatus = func(c domain.Client, s string) domain.Client { c.Status = s; return c }
	e.Sorts["name"] = func(a, b domain.Client) int { return byText(a.Name, b.Name) }
	return e
}

// Customers describes individual renters.
func Customers() Entry[domain.Customer] {
	e := newEntry[domain.Customer](domain.KindCustomers, []string{
		domain.StatusActive, domain.StatusInactive, domain.CustomerBlocked,
	})
	e.Schema.Search = func(c domain.Customer) []string {
		return []string{c.FirstName, c.LastName, c.FirstName + " " + c.LastName, c.Email, c.Phone}
	}
	e.Schema.Categories = map[string]func(domain.Customer) string{
		"status": func(c domain.Customer) string { return c.Status },
	}
	e.Schema.SetStatus = func(c domain.Customer, s string) domain.Customer { c.Status = s; return c }
	e.Sorts["lastName"] = func(a, b domain.Customer) int { return byText(a.LastName, b.LastName) }
	return e
}

// Products describes sellable add-ons.
func Products() Entry[domain.Product] {
	e := newEntry[domain.Product](domain.KindProducts, []string{domain.StatusActive, domain.StatusInactive})
	e.Schema.Search = func(p domain.Product) []string { return []string{p.Name, p.SKU} }
	e.Schema.Categories = map[string]func(domain.Product) string{
		"status":   func(p domain.Product) string { return p.Status },
		"category": func(p domain.Product) string { return p.CategoryID },
	}
	e.Schema.SetStatus = func(p domain.Product, s string) domain.Product { p.Status = s; return p }
	e.Sorts["name"] = func(a, b domain.Product) int { return byText(a.Name, b.Name) }
	e.Sorts["price"] = func(a, b domain.Product) int { return cmp.Compare(a.Price, b.Price) }
	return e
}

// Categories describes product categories.
func Categories() Entry[domain.Category] {
	e := newEntry[domain.Category](domain.KindCategories, []string{domain.StatusActive, domain.StatusInactive})
	e.Schema.Search = func(c domain.Category) []string { return []string{c.Name, c.Slug} }
	e.Schema.Categories = map[string]func(domain.Category) string{
		"status": func(c domain.Category) string { return c.Status },
	}
	e.Schema.SetStatus = func(c domain.Category, s string) domain.Category { c.Status = s; return c }
	e.Sorts["name"] = func(a, b domain.Category) int { return byText(a.Name, b.Name) }
	return e
}

// FAQs describes the help-centre questions.
func FAQs() Entry[domain.FAQ] {
	e := newEntry[domain.FAQ](domain.KindFAQs, []string{domain.FAQPublished, domain.FAQDraft})
	e.Schema.Search = func(f domain.FAQ) []string { return []string{f.Question, f.Answer} }
	e.Schema.Categories = map[string]func(domain.FAQ) string{
		"status":   func(f domain.FAQ) string { return f.Status },
		"category": func(f domain.FAQ) string { return f.Category },
	}
	e.Schema.SetStatus = func(f domain.FAQ, s string) domain.FAQ { f.Status = s; return f }
	return e
}

// Leads describes marketing leads.
func Leads() Entry[domain.Lead] {
	e := newEntry[domain.Lead](domain.KindLeads, []string{
		domain.LeadNew, domain.LeadContacted, domain.LeadQualified, domain.LeadLost,
	})
	e.Schema.Search = func(l domain.Lead) []string { return []string{l.Name, l.Email, l.Phone} }
	e.Schema.Categories = map[string]func(domain.Lead) string{
		"status": func(l domain.Lead) string { return l.Status },
		"source": func(l domain.Lead) string { return l.Source },
	}
	e.Schema.SetStatus = func(l domain.Lead, s string) domain.Lead { l.Status = s; return l }
	e.Options["source"] = []string{"web", "referral", "phone", "event"}
	e.Sorts["name"] = func(a, b domain.Lead) int { return byText(a.Name, b.Name) }
	return e
}

// TradePersons describes service providers pending or holding approval.
func TradePersons() Entry[domain.TradePerson] {
	e := newEntry[domain.TradePerson](domain.KindTradePersons, []string{
		domain.TradePersonPending, domain.TradePersonApproved, domain.TradePersonRejected,
	})
	e.Schema.Search = func(p domain.TradePerson) []string { return []string{p.Name, p.Email, p.Trade} }
	e.Schema.Categories = map[string]func(domain.TradePerson) string{
		"status":   func(p domain.TradePerson) string { return p.Status },
		"position": func(p domain.TradePerson) string { return p.Position },
		"city":     func(p domain.TradePerson) string { return p.City },
	}
	e.Schema.SetStatus = func(p domain.TradePerson, s string) domain.TradePerson { p.Status = s; return p }
	e.Options["position"] = []string{"junior", "senior", "lead"}
	e.Sorts["name"] = func(a, b domain.TradePerson) int { return byText(a.Name, b.Name) }
	return e
}

// Transactions describes payments. Besides the categorical filters it
// accepts minAmount and maxAmount as an inclusive range.
func Transactions() Entry[domain.Transaction] {
	e := newEntry[domain.Transaction](domain.KindTransactions, []string{
		domain.TransactionPending, domain.TransactionCompleted, domain.TransactionFailed, domain.TransactionRefunded,
	})
	e.Schema.Search = func(t domain.Transaction) []string { return []string{t.Reference, t.CustomerName} }
	e.Schema.Categories = map[string]func(domain.Transaction) string{
		"status": func(t domain.Transaction) string { return t.Status },
		"method": func(t domain.Transaction) string { return t.Method },
	}
	e.Schema.Match = func(t domain.Transaction, f liststate.Filters) bool {
		if lo, ok := amount(f["minAmount"]); ok && t.Amount < lo {
			return false
		}
		if hi, ok := amount(f["maxAmount"]); ok && t.Amount > hi {
			return false
		}
		return true
	}
	e.Schema.SetStatus = func(t domain.Transaction, s string) domain.Transaction { t.Status = s; return t }
	e.Extras = []string{"minAmount", "maxAmount"}
	e.Options["method"] = []string{"card", "cash", "transfer"}
	e.Sorts["amount"] = func(a, b domain.Transaction) int { return cmp.Compare(a.Amount, b.Amount) }
	return e
}

// Users describes dashboard operators.
func Users() Entry[domain.User] {
	e := newEntry[domain.User](domain.KindUsers, []string{domain.StatusActive, domain.StatusInactive})
	e.Schema.Search = func(u domain.User) []string { return []string{u.Name, u.Email} }
	e.Schema.Categories = map[string]func(domain.User) string{
		"status": func(u domain.User) string { return u.Status },
		"role":   func(u domain.User) string { return u.Role },
	}
	e.Schema.SetStatus = func(u domain.User, s string) domain.User { u.Status = s; return u }
	e.Options["role"] = []string{"admin", "manager", "agent"}
	e.Sorts["name"] = func(a, b domain.User) int { return byText(a.Name, b.Name) }
	return e
}

// ServiceQuestions describes booking questionnaires.
func ServiceQuestions() Entry[domain.ServiceQuestion] {
	e := newEntry[domain.ServiceQuestion](domain.KindServiceQuestions, []string{domain.StatusActive, domain.StatusInactive})
	e.Schema.Search = func(q domain.ServiceQuestion) []string { return []string{q.Question, q.Service} }
	e.Schema.Categories = map[string]func(domain.ServiceQuestion) string{
		"status":   func(q domain.ServiceQuestion) string { return q.Status },
		"category": func(q domain.ServiceQuestion) string { return q.Category },
	}
	e.Schema.SetStatus = func(q domain.ServiceQuestion, s string) domain.ServiceQuestion { q.Status = s; return q }
	return e
}

// amount parses a range bound. Unparseable or empty bounds are ignored.
func amount(raw string) (float64, bool) {
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}
