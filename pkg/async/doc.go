// Package async runs functions in goroutines and collects their results as
// futures.
//
//	planF := async.Async(ctx, id, plans.Get)
//	msgsF := async.Async(ctx, id, chat.History)
//
//	p, err := planF.Await()
//	msgs, err := msgsF.Await()
//
// A context already cancelled when Async is called short-circuits with
// ctx.Err() without running fn.
package async
