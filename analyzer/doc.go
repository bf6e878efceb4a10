// Package analyzer memoizes member lookups of Go types.
//
// An Analyzer owns a cache from reflect.Type to *Result. Each Result holds,
// per member category, either nothing yet or an immutable list of members.
// Analyze fills only the categories that were requested and are still
// missing, so a Result can be completed bit by bit across many calls:
//
//	a := analyzer.New()
//	r, _ := a.Analyze(reflect.TypeFor[Order](), options.CategoryMethods)
//	methods, _ := r.Methods()           // populated
//	_, ok := r.Fields()                 // ok == false: never requested
//	r, _ = a.Analyze(reflect.TypeFor[Order]()) // same *Result, now complete
//
// Once a category is populated its *Members value never changes until
// ClearCache, which makes pointer comparison a valid "nothing changed" check.
//
// # Concurrency model
//
// All methods are safe for concurrent use. The entry map is guarded by a
// read/write mutex. Each Result serializes its own population, so the
// provider runs at most once per type and category. Populated lists are
// published atomically and read without locks.
//
// ClearCache waits for in-flight Analyze calls to finish before it drops the
// entries. Providers must not call back into the Analyzer that invokes them.
package analyzer
