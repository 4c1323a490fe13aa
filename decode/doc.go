// Package decode walks a bintree.Node bit by bit and emits the value of every
// leaf it lands on, restarting from the root after each leaf.
//
// A '0' moves the cursor to the left child, a '1' to the right child. Landing
// on a leaf ends one decode epoch: the leaf value is emitted and the cursor
// returns to the root. The decoded text is the concatenation of the emitted
// values in decimal, with no separator.
//
// When a bit asks for a child that does not exist the cursor has nowhere to go
// ("stuck"). What happens next is chosen with WithStuckPolicy:
//
//   - DiscardRemaining (default): every later bit is validated and dropped.
//   - FailOnStuck: decoding stops with ErrStuck.
//   - ResetToRoot: the epoch ends without output and the next bit starts at the root.
//
// A tree made of a single node is its own leaf: every bit is one epoch that
// emits the root value.
//
// Errors:
//
//   - ErrNilTree     the root is nil
//   - ErrInvalidBit  a character other than '0' or '1'
//   - ErrStuck       the cursor fell off the tree under FailOnStuck
package decode
