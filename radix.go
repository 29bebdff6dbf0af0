package radix

import (
	"errors"
	"log/slog"
)

const (
	traverseStop traverseAction = iota
	traverseContinue
)

var (
	ErrDuplicateKey = errors.New("key already exists in the tree")
	ErrNotFound     = errors.New("key not found in the tree")
	ErrEmptyKey     = errors.New("empty key is not supported")
	ErrNoMoreWords  = errors.New("there are no more words in the tree")
)

type (
	// Tree is a compressed prefix tree holding a set of distinct non-empty
	// strings. It is not safe for concurrent use.
	Tree struct {
		size   int
		root   *node
		logger *slog.Logger
	}

	// node children are keyed by the first byte of the child label.
	node struct {
		label    string
		children map[byte]*node
		terminal bool
	}

	// step is one edge taken on the way down during removal.
	step struct {
		parent *node
		key    byte
	}

	traverseAction int

	iteratorLevel struct {
		node   *node
		prefix string
		keys   []byte
		next   int
	}

	iterator struct {
		depth    []*iteratorLevel
		nextWord string
		hasNext  bool
	}
)
