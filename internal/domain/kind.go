package domain

import "fmt"

// Kind names an entity type. It doubles as the URL path segment and the
// storage discriminator.
type Kind string

const (
	KindCars             Kind = "cars"
	KindAgencies         Kind = "agencies"
	KindClients          Kind = "clients"
	KindCustomers        Kind = "customers"
	KindProducts         Kind = "products"
	KindCategories       Kind = "categories"
	KindFAQs             Kind = "faqs"
	KindLeads            Kind = "leads"
	KindTradePersons     Kind = "trade-persons"
	KindTransactions     Kind = "transactions"
	KindUsers            Kind = "users"
	KindServiceQuestions Kind = "service-questions"
)

// Kinds lists every managed entity kind in menu order.
func Kinds() []Kind {
	return []Kind{
		KindCars,
		KindAgencies,
		KindClients,
		KindCustomers,
		KindProducts,
		KindCategories,
		KindFAQs,
		KindLeads,
		KindTradePersons,
		KindTransactions,
		KindUsers,
		KindServiceQuestions,
	}
}

// ParseKind validates a URL segment against the managed kinds.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownKind, s)
}
