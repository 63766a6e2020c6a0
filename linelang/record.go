package linelang

type Pair struct {
	Key   string
	Value Value
}

// Record is an ordered sequence of pairs. A nil Record means the line
// produced nothing; a non-nil Record always holds at least one pair.
type Record []Pair
