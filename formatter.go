package archmap

// Formatter renders an entry sequence into one output format.
// Implementations must not retain or modify entries, and must keep any
// per-run state (such as id counters) local to a single Format call.
type Formatter interface {
	Format(entries []Entry) (string, error)
}
