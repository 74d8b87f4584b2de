package usecase

// NotificationKind classifies user-visible outcome events.
type NotificationKind int

const (
	NotifyError NotificationKind = iota + 1
	NotifyNoResults
	NotifyNoMoreResults
)

const (
	noResultsMessage     = "Sorry, there are no images matching your search query."
	noMoreResultsMessage = "Sorry, there are no more images matching your search query."
)

// Notification is a fire-and-forget outcome event.
type Notification struct {
	Kind    NotificationKind
	Message string
}

// NotificationSink receives outcome events.
type NotificationSink interface {
	Notify(n Notification)
}

// NotifyFunc adapts a function to NotificationSink.
type NotifyFunc func(Notification)

// Notify implements NotificationSink.
func (f NotifyFunc) Notify(n Notification) { f(n) }

// ErrorNotification builds the event for a provider failure.
func ErrorNotification(description string) Notification {
	return Notification{Kind: NotifyError, Message: "Something went wrong! " + description}
}

// NoResultsNotification builds the event for an empty result set.
func NoResultsNotification() Notification {
	return Notification{Kind: NotifyNoResults, Message: noResultsMessage}
}

// NoMoreResultsNotification builds the event for exhausted pagination.
func NoMoreResultsNotification() Notification {
	return Notification{Kind: NotifyNoMoreResults, Message: noMoreResultsMessage}
}

// NotificationQueue buffers notifications until drained.
type NotificationQueue struct {
	pending []Notification
}

// Notify implements NotificationSink.
func (q *NotificationQueue) Notify(n Notification) {
	q.pending = append(q.pending, n)
}

// Drain returns and clears the buffered notifications.
func (q *NotificationQueue) Drain() []Notification {
	out := q.pending
	q.pending = nil
	return out
}
