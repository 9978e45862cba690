// Package async provides a small Future abstraction for running a function
// on its own goroutine and awaiting the result, optionally with a timeout.
//
//	future := async.Run(ctx, func(ctx context.Context) (Report, error) {
//		return buildReport(ctx)
//	})
//
//	report, err := future.AwaitWithTimeout(2 * time.Second)
//	if errors.Is(err, async.ErrTimeout) {
//		// computation still running; result available via future.Await()
//	}
package async
