// Command paycheck validates payment amounts.
//
//	paycheck 5555 99999.999 100000
//	paycheck --format text -- -1 42
//	printf '10\n250000\n' | paycheck
//
// Each amount produces one line of output. The exit status is 0 when every
// amount is valid, 1 when any is invalid and 2 on usage or configuration
// errors.
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
