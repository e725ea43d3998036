// Package scene holds the mutable state behind a spacetime diagram:
// an ordered [Registry] of objects defined in the lab frame and a
// [FrameSelector] choosing the observer frame. [Scene] bundles one of
// each and is the single mutation point, notifying subscribed
// [Observer] values after every change. Construct one Scene per
// diagram; instances share nothing.
//
// Everything here is single-threaded: mutations happen on discrete
// input events and each completes before the next arrives. None of
// the types carry locks; callers that share a Scene across goroutines
// must serialize access themselves.
package scene
