package tablego

import (
	"iter"
	"maps"
)

// labelRegistry maps column labels to column indexes. Labels are globally
// unique within a table and at most one label refers to any column.
//
// Index-to-label lookup is a linear scan over the map. Expected column
// counts are tens, so a secondary index map is not worth keeping in sync.
type labelRegistry struct {
	byLabel map[string]int
}

func (lr *labelRegistry) init() {
	if lr.byLabel == nil {
		lr.byLabel = make(map[string]int)
	}
}

func (lr *labelRegistry) len() int { return len(lr.byLabel) }

func (lr *labelRegistry) indexOf(label string) (int, bool) {
	idx, ok := lr.byLabel[label]
	return idx, ok
}

func (lr *labelRegistry) labelOf(index int) (string, bool) {
	for l, idx := range lr.byLabel {
		if idx == index {
			return l, true
		}
	}
	return "", false
}

// set records label for index. Both uniqueness directions must already
// have been checked by the caller.
func (lr *labelRegistry) set(label string, index int) {
	lr.init()
	lr.byLabel[label] = index
}

func (lr *labelRegistry) remove(label string) bool {
	_, ok := lr.byLabel[label]
	delete(lr.byLabel, label)
	return ok
}

func (lr *labelRegistry) removeIndex(index int) bool {
	if l, ok := lr.labelOf(index); ok {
		delete(lr.byLabel, l)
		return true
	}
	return false
}

// dropFrom removes every label whose column index is >= cols. Used when a
// shrink invalidates trailing columns.
func (lr *labelRegistry) dropFrom(cols int) {
	for l, idx := range lr.byLabel {
		if idx >= cols {
			delete(lr.byLabel, l)
		}
	}
}

func (lr *labelRegistry) clear() {
	clear(lr.byLabel)
}

func (lr *labelRegistry) clone() labelRegistry {
	if len(lr.byLabel) == 0 {
		return labelRegistry{}
	}
	return labelRegistry{byLabel: maps.Clone(lr.byLabel)}
}

func (lr *labelRegistry) all() iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		for l, idx := range lr.byLabel {
			if !yield(l, idx) {
				return
			}
		}
	}
}

// SetColumnLabel labels the column at index. The column must exist, must
// not already have a label, and the label must not be in use elsewhere.
func (dt *Table[T]) SetColumnLabel(index int, label string) error {
	if err := dt.checkColumn(index); err != nil {
		return err
	}
	if _, ok := dt.labels.labelOf(index); ok {
		return &ErrLabelConflict{Label: label, Index: index, Reason: "column already has a label"}
	}
	if _, ok := dt.labels.indexOf(label); ok {
		return &ErrLabelConflict{Label: label, Index: index, Reason: "label already in use"}
	}
	dt.labels.set(label, index)
	return nil
}

// SetColumnLabels labels a set of columns from a sequence of
// (label, index) pairs. Pairs are applied one at a time in sequence order
// and the first failure aborts the call; pairs applied before the failure
// stay applied.
func (dt *Table[T]) SetColumnLabels(pairs iter.Seq2[string, int]) error {
	for label, index := range pairs {
		if err := dt.SetColumnLabel(index, label); err != nil {
			return err
		}
	}
	return nil
}

// ColumnLabel returns the label of the column at index.
func (dt *Table[T]) ColumnLabel(index int) (string, error) {
	if err := dt.checkColumn(index); err != nil {
		return "", err
	}
	l, ok := dt.labels.labelOf(index)
	if !ok {
		return "", &ErrLabelMissing{Index: index}
	}
	return l, nil
}

// ColumnIndex returns the index of the column with the given label.
func (dt *Table[T]) ColumnIndex(label string) (int, error) {
	idx, ok := dt.labels.indexOf(label)
	if !ok {
		return 0, &ErrLabelMissing{Label: label, Index: -1}
	}
	return idx, nil
}

// ColumnHasLabel reports whether the column at index has a label.
func (dt *Table[T]) ColumnHasLabel(index int) (bool, error) {
	if err := dt.checkColumn(index); err != nil {
		return false, err
	}
	_, ok := dt.labels.labelOf(index)
	return ok, nil
}

// HasColumnLabel reports whether any column carries the given label.
func (dt *Table[T]) HasColumnLabel(label string) bool {
	_, ok := dt.labels.indexOf(label)
	return ok
}

// RenameColumnLabel replaces oldLabel with newLabel on the same column.
// The old label must exist and the new label must not be in use.
func (dt *Table[T]) RenameColumnLabel(oldLabel, newLabel string) error {
	idx, ok := dt.labels.indexOf(oldLabel)
	if !ok {
		return &ErrLabelMissing{Label: oldLabel, Index: -1}
	}
	if _, ok := dt.labels.indexOf(newLabel); ok {
		return &ErrLabelConflict{Label: newLabel, Index: idx, Reason: "label already in use"}
	}
	dt.labels.remove(oldLabel)
	dt.labels.set(newLabel, idx)
	return nil
}

// RenameColumnLabelAt replaces the label of the column at index with
// newLabel. The column must already have a label and newLabel must not be
// in use.
func (dt *Table[T]) RenameColumnLabelAt(index int, newLabel string) error {
	old, err := dt.ColumnLabel(index)
	if err != nil {
		return err
	}
	return dt.RenameColumnLabel(old, newLabel)
}

// RenameColumnLabels renames labels from a sequence of
// (newLabel, oldLabel) pairs, applied one at a time; the first failure
// aborts the call without rolling back earlier renames.
func (dt *Table[T]) RenameColumnLabels(pairs iter.Seq2[string, string]) error {
	for newLabel, oldLabel := range pairs {
		if err := dt.RenameColumnLabel(oldLabel, newLabel); err != nil {
			return err
		}
	}
	return nil
}

// RemoveColumnLabel removes the given label and reports whether it
// existed.
func (dt *Table[T]) RemoveColumnLabel(label string) bool {
	return dt.labels.remove(label)
}

// RemoveColumnLabelAt removes the label of the column at index and
// reports whether the column had one.
func (dt *Table[T]) RemoveColumnLabelAt(index int) (bool, error) {
	if err := dt.checkColumn(index); err != nil {
		return false, err
	}
	return dt.labels.removeIndex(index), nil
}

// ClearColumnLabels removes all labels. Data is not touched.
func (dt *Table[T]) ClearColumnLabels() {
	dt.labels.clear()
}

// NumColumnLabels returns the number of labeled columns.
func (dt *Table[T]) NumColumnLabels() int { return dt.labels.len() }

// ColumnLabels returns a restartable iterator over (label, index) pairs in
// unspecified order.
func (dt *Table[T]) ColumnLabels() iter.Seq2[string, int] {
	return dt.labels.all()
}
