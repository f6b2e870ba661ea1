// Package router owns the navigation state of a card stack.
//
// The router is the single writer of route lists and transition sets. A
// stackview.Coordinator subscribes to it, renders what it sees, and sends
// actions back through Dispatch when transitions finish or the user asks to
// go back.
//
// # Basic Usage
//
//	r := router.New()
//
//	r.Register("list", func(params any) any {
//	    return listScreen(params.([]Item))
//	}, stackview.Options{Title: "Games"})
//
//	r.Register("detail", func(params any) any {
//	    return detailScreen(params.(Item))
//	}, stackview.Options{Title: "Detail"})
//
//	coordinator, err := stackview.NewCoordinator(stackview.Config{Dispatcher: r})
//	if err != nil {
//	    return err
//	}
//	r.Subscribe(coordinator.Update)
//
//	r.Reset("list", items)
//	r.Push("detail", items[2])
//
// # Pops
//
// A soft pop (stackview.PopAction with Immediate false) removes the route from
// the live stack and marks it popping; the coordinator keeps drawing it until
// its close animation ends. The root route can never be popped. An immediate
// pop removes a route without marking it, and completeTransition clears a key
// from both transition sets.
package router
