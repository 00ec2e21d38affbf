package aggregates

// Contract records which tables an aggregate owns and how it may be touched.
// Owned child tables (order lines) are written only through the aggregate root.
type Contract struct {
	Name  string
	Root  string
	Owned []string

	// OwnsWriteTx is true when every write method opens and commits its own
	// transaction; callers must not pass one in.
	OwnsWriteTx bool
	// ConsistentReads is true when Get loads the root and all owned rows in
	// one read, so a caller never sees an order without its lines.
	ConsistentReads bool
}

// Aggregate is implemented by every aggregate root.
type Aggregate interface {
	Contract() Contract
}

func (c Contract) RequiresAggregateOwnedTx() bool { return c.OwnsWriteTx }

// OwnsTable reports whether table is the root or one of its owned children.
func (c Contract) OwnsTable(table string) bool {
	if table == c.Root {
		return true
	}
	for _, t := range c.Owned {
		if t == table {
			return true
		}
	}
	return false
}
