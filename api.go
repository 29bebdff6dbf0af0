package radix

import "log/slog"

type Set interface {
	Insert(word string) error
	Search(word string) bool
	Remove(word string) error
	Add(word string) (bool, error)
	Discard(word string) (bool, error)
	Words() []string
	WordsWithPrefix(prefix string) []string
	Walk(fn func(word string) bool)
	Iterator() Iterator
	Size() int
	String() string
}

type Iterator interface {
	HasNext() bool
	Next() (string, error)
}

// Option configures a Tree built by New.
type Option func(*Tree)

// WithLogger sets the logger that receives debug records about edge splits
// and pruning. Trees log nothing by default.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Tree) {
		if logger != nil {
			t.logger = logger
		}
	}
}

func New(opts ...Option) *Tree {
	t := &Tree{
		root:   newNode(""),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

var _ Set = (*Tree)(nil)
