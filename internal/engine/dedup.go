package engine

import domain "github.com/mong0520/kapaipai-api/pkg/types"

// ShouldNotify reports whether candidate warrants a new notification given
// the watch's most recent one. It is suppressed only when last exists and
// both the triggered price and the target ceiling are unchanged; delivery
// status of last is not considered.
func ShouldNotify(candidate *domain.NotificationCandidate, last *domain.NotificationRecord) bool {
	if candidate == nil {
		return false
	}
	if last == nil {
		return true
	}
	return last.TriggeredPrice != candidate.TriggeredPrice ||
		last.TargetPriceMax != candidate.TargetPriceMax
}
