// Package memory provides in-memory implementations of the store
// interfaces. Data is process-resident and lost on restart.
//
// Each store guards its collections with a single RWMutex: mutations take
// the write lock, reads may run concurrently. Stores hand out copies of
// their records so callers can never mutate shared state outside the
// owning store.
package memory
