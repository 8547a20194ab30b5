// Package header decides whether the collapsible header is expanded or
// collapsed.
//
// Two classifiers feed one observable Store. OffsetClassifier compares each
// scroll offset with the previous one and ignores samples that arrive while
// the last transition is still animating. IndexClassifier receives the index
// of every row that becomes visible, keeps only the latest index per throttle
// window, and collapses when the retained index grew. Controller selects one
// of them by strategy and drives the height animation.
//
// Nothing in this package is safe for concurrent use; the host calls it from
// its single update loop.
package header
