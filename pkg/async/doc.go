// Package async provides small generic primitives for sharing the result of a
// computation between goroutines.
//
// Future represents the eventual result of a function started with Go. Any
// number of goroutines may Await the same Future and all observe the same
// result. AwaitContext bounds an individual caller's wait without affecting
// the computation or other waiters.
//
// Memo layers lazy, invalidatable memoization on top of Future. The first Get
// starts the computation, concurrent Gets attach to the in-flight run
// (single-flight de-duplication), and subsequent Gets return the cached value
// or error until Reset is called.
//
//	load := async.NewMemo(func(ctx context.Context) ([]byte, error) {
//	    return os.ReadFile("build/client/assets.json")
//	})
//
//	data, err := load.Get(ctx) // reads the file
//	data, err = load.Get(ctx)  // served from cache
//	load.Reset()               // next Get reads again
package async
