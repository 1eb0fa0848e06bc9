//go:build linux || darwin

package main

import (
	"context"
	"runtime/debug"
	"strconv"

	"golang.org/x/sys/unix"

	"github.com/bnema/viewshell/internal/logging"
)

// enableCrashForensics raises the soft core limit to the hard one and asks
// the runtime to dump every goroutine on a fatal signal from WebKit.
func enableCrashForensics() {
	debug.SetTraceback("crash")

	limit, err := coreLimit()
	if err != nil || limit.Cur >= limit.Max {
		return
	}
	limit.Cur = limit.Max
	_ = unix.Setrlimit(unix.RLIMIT_CORE, &limit)
}

func logCoreDumpLimits(ctx context.Context) {
	log := logging.FromContext(ctx)
	limit, err := coreLimit()
	if err != nil {
		log.Debug().Err(err).Msg("RLIMIT_CORE unavailable")
		return
	}
	log.Debug().
		Str("soft", rlimitString(limit.Cur)).
		Str("hard", rlimitString(limit.Max)).
		Msg("core dump limits")
}

func coreLimit() (unix.Rlimit, error) {
	var limit unix.Rlimit
	err := unix.Getrlimit(unix.RLIMIT_CORE, &limit)
	return limit, err
}

func rlimitString(v uint64) string {
	if v == unix.RLIM_INFINITY {
		return "unlimited"
	}
	return strconv.FormatUint(v, 10)
}
