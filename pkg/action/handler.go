package action

// Handler performs requests on the application's behalf. It is called on
// the adapter's goroutine and must not block on the UI thread.
type Handler interface {
	DoAction(req Request)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(req Request)

// DoAction calls f(req).
func (f HandlerFunc) DoAction(req Request) { f(req) }

// Discard ignores every request.
var Discard Handler = HandlerFunc(func(Request) {})
