package radix

import (
	"cmp"
	"fmt"
	"strings"
)

func (t *Tree) Size() int {
	if t == nil || t.root == nil {
		return 0
	}
	return t.size
}

// Insert adds word to the tree. It fails with ErrDuplicateKey when word is
// already stored and with ErrEmptyKey for the empty string.
func (t *Tree) Insert(word string) error {
	if word == "" {
		return ErrEmptyKey
	}
	if !t.insert(word) {
		return fmt.Errorf("%w: %q", ErrDuplicateKey, word)
	}
	t.size++
	return nil
}

// insert reports whether word was added. It touches at most one edge: either
// a new leaf hangs off the last matched node or a single label gets split.
func (t *Tree) insert(word string) bool {
	curr := t.root
	for depth := 0; depth < len(word); {
		rest := word[depth:]
		child := curr.findChild(rest[0])
		if child == nil {
			curr.addChild(newLeaf(rest))
			return true
		}

		m := child.match(rest)
		if m == len(child.label) {
			curr = child
			depth += m
			continue
		}

		t.logger.Debug("split edge", "label", child.label, "at", m, "word", word)
		head := child.split(m)
		curr.addChild(head)
		if m == len(rest) {
			head.terminal = true
		} else {
			head.addChild(newLeaf(rest[m:]))
		}
		return true
	}

	if curr.terminal {
		return false
	}
	curr.terminal = true
	return true
}

// Search reports whether word is stored. A word that ends inside a label or
// on a non-terminal node is not a member.
func (t *Tree) Search(word string) bool {
	if word == "" {
		return false
	}
	n := t.lookup(word)
	return n != nil && n.terminal
}

// lookup returns the node whose path spells exactly key, or nil.
func (t *Tree) lookup(key string) *node {
	curr := t.root
	for depth := 0; depth < len(key); {
		rest := key[depth:]
		child := curr.findChild(rest[0])
		if child == nil || child.match(rest) != len(child.label) {
			return nil
		}
		curr = child
		depth += len(child.label)
	}
	return curr
}

// Remove deletes word from the tree, pruning nodes that no longer lead to a
// stored word. It fails with ErrNotFound when word is not stored, including
// when it is only a prefix of stored words.
func (t *Tree) Remove(word string) error {
	if word == "" {
		return ErrEmptyKey
	}
	if !t.remove(word) {
		return fmt.Errorf("%w: %q", ErrNotFound, word)
	}
	t.size--
	return nil
}

func (t *Tree) remove(word string) bool {
	curr := t.root
	path := make([]step, 0, 8)
	for depth := 0; depth < len(word); {
		rest := word[depth:]
		child := curr.findChild(rest[0])
		if child == nil || child.match(rest) != len(child.label) {
			return false
		}
		path = append(path, step{parent: curr, key: rest[0]})
		curr = child
		depth += len(child.label)
	}

	if !curr.terminal {
		return false
	}
	curr.terminal = false
	t.prune(path)
	return true
}

// prune replays path bottom-up, detaching non-terminal leaves until it meets
// a node that still carries a word or other children. That node is then
// merged with its only child if it became a pass-through.
func (t *Tree) prune(path []step) {
	last := t.root
	for i := len(path) - 1; i >= 0; i-- {
		s := path[i]
		child := s.parent.children[s.key]
		if child.terminal || !child.isLeaf() {
			last = child
			break
		}
		t.logger.Debug("prune node", "label", child.label)
		delete(s.parent.children, s.key)
		last = s.parent
	}

	if last != t.root && !last.terminal && len(last.children) == 1 {
		t.logger.Debug("merge pass-through node", "label", last.label)
		last.mergeChild()
	}
}

// Add inserts word unless it is already stored and reports whether the tree
// changed.
func (t *Tree) Add(word string) (bool, error) {
	if word == "" {
		return false, ErrEmptyKey
	}
	if !t.insert(word) {
		return false, nil
	}
	t.size++
	return true, nil
}

// Discard removes word if it is stored and reports whether the tree changed.
func (t *Tree) Discard(word string) (bool, error) {
	if word == "" {
		return false, ErrEmptyKey
	}
	if !t.remove(word) {
		return false, nil
	}
	t.size--
	return true, nil
}

// Merge adds every word of other, skipping words t already holds.
func (t *Tree) Merge(other *Tree) {
	if other == nil {
		return
	}
	added := 0
	for _, word := range other.Words() {
		if t.insert(word) {
			t.size++
			added++
		}
	}
	t.logger.Debug("merged tree", "added", added, "size", t.size)
}

// Subtract removes every word of other from t, skipping words t lacks.
func (t *Tree) Subtract(other *Tree) {
	if other == nil {
		return
	}
	removed := 0
	for _, word := range other.Words() {
		if t.remove(word) {
			t.size--
			removed++
		}
	}
	t.logger.Debug("subtracted tree", "removed", removed, "size", t.size)
}

// Words returns every stored word. Callers must not rely on the order.
func (t *Tree) Words() []string {
	words := make([]string, 0, t.Size())
	t.Walk(func(word string) bool {
		words = append(words, word)
		return true
	})
	return words
}

// WordsWithPrefix returns the stored words starting with prefix. The prefix
// may end in the middle of a label.
func (t *Tree) WordsWithPrefix(prefix string) []string {
	words := make([]string, 0)
	t.forEachPrefix(prefix, func(word string) bool {
		words = append(words, word)
		return true
	})
	return words
}

// Walk calls fn for each stored word until fn returns false.
func (t *Tree) Walk(fn func(word string) bool) {
	if t == nil || t.root == nil {
		return
	}
	t.recursiveForEach(t.root, "", fn)
}

func (t *Tree) forEachPrefix(key string, callback func(string) bool) traverseAction {
	curr := t.root
	for depth := 0; depth < len(key); {
		child := curr.findChild(key[depth])
		if child == nil {
			return traverseContinue
		}

		m := child.match(key[depth:])
		if depth+m == len(key) {
			return t.recursiveForEach(child, key[:depth], callback)
		}
		if m < len(child.label) {
			return traverseContinue
		}
		curr = child
		depth += m
	}
	return t.recursiveForEach(curr, "", callback)
}

func (t *Tree) recursiveForEach(curr *node, prefix string, callback func(string) bool) traverseAction {
	word := prefix + curr.label
	if curr.terminal && !callback(word) {
		return traverseStop
	}

	for _, k := range curr.sortedKeys() {
		if t.recursiveForEach(curr.children[k], word, callback) == traverseStop {
			return traverseStop
		}
	}
	return traverseContinue
}

// Iterator walks the stored words in the same order as Words. The tree must
// not be modified while an iterator is in use.
func (t *Tree) Iterator() Iterator {
	it := &iterator{}
	if t != nil && t.root != nil {
		it.depth = []*iteratorLevel{newIteratorLevel(t.root, "")}
	}
	it.next()
	return it
}

func newIteratorLevel(n *node, prefix string) *iteratorLevel {
	return &iteratorLevel{
		node:   n,
		prefix: prefix + n.label,
		keys:   n.sortedKeys(),
	}
}

func (it *iterator) HasNext() bool {
	return it != nil && it.hasNext
}

func (it *iterator) Next() (string, error) {
	if !it.HasNext() {
		return "", ErrNoMoreWords
	}
	word := it.nextWord
	it.next()
	return word, nil
}

func (it *iterator) next() {
	for len(it.depth) > 0 {
		level := it.depth[len(it.depth)-1]
		if level.next >= len(level.keys) {
			it.depth = it.depth[:len(it.depth)-1]
			continue
		}

		child := level.node.children[level.keys[level.next]]
		level.next++
		childLevel := newIteratorLevel(child, level.prefix)
		it.depth = append(it.depth, childLevel)
		if child.terminal {
			it.nextWord = childLevel.prefix
			it.hasNext = true
			return
		}
	}
	it.nextWord = ""
	it.hasNext = false
}

// Equal reports whether both trees have the same shape: labels, terminal
// flags and child keys match at every node.
func (t *Tree) Equal(other *Tree) bool {
	if t == other {
		return true
	}
	if t == nil || other == nil {
		return false
	}
	return t.root.equal(other.root)
}

// Compare orders trees by word count only, returning -1, 0 or +1. It says
// nothing about which words are stored.
func (t *Tree) Compare(other *Tree) int {
	return cmp.Compare(t.Size(), other.Size())
}

func (t *Tree) Less(other *Tree) bool           { return t.Compare(other) < 0 }
func (t *Tree) Greater(other *Tree) bool        { return t.Compare(other) > 0 }
func (t *Tree) LessOrEqual(other *Tree) bool    { return t.Compare(other) <= 0 }
func (t *Tree) GreaterOrEqual(other *Tree) bool { return t.Compare(other) >= 0 }

// Clone returns a deep copy of t sharing no nodes with it.
func (t *Tree) Clone() *Tree {
	return &Tree{
		size:   t.size,
		root:   t.root.clone(),
		logger: t.logger,
	}
}

// Clear drops every stored word.
func (t *Tree) Clear() {
	t.root = newNode("")
	t.size = 0
}

// String renders the stored words separated by single spaces.
func (t *Tree) String() string {
	return strings.Join(t.Words(), " ")
}
