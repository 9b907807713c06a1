// Package liststate holds the client-side state of a filterable, paginated
// entity list.
//
// A Container keeps four views of the same data consistent: the canonical
// list, the filtered projection, the pagination counters and the filter
// values. Every operation is synchronous and total: nothing here performs
// I/O, returns an error or panics. Callers that fetch data (see Source in
// the dashboard application) push complete collections in with SetList and
// report failures with SetError.
//
// Invariants after every call:
//
//   - Filtered() is List() passed through the current filters, in list order.
//     Update and SetStatus are the exception: they replace entities in place
//     and leave them visible until the next SetFilters or SetList.
//   - Pagination().Total == len(Filtered()) and TotalPages == ceil(Total/Limit).
//   - SetFilters and ClearFilters reset the page to 1. SetList, Add and
//     Remove never touch the page; callers detect Page > TotalPages and
//     call SetPage themselves.
package liststate
