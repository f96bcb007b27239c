package debug

import (
	"os"
	"strconv"
	"sync/atomic"
)

type debug struct {
	Parse bool
	Merge bool
	Load  bool
	Patch bool
	Eval  bool
}

var (
	d       *debug
	enabled atomic.Bool
)

func init() {
	d = &debug{}
	d.Parse = boolEnv("VERSA_DEBUG_PARSE")
	d.Merge = boolEnv("VERSA_DEBUG_MERGE")
	d.Load = boolEnv("VERSA_DEBUG_LOAD")
	d.Patch = boolEnv("VERSA_DEBUG_PATCH")
	d.Eval = boolEnv("VERSA_DEBUG_EVAL")
	enabled.Store(true)
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// SetEnabled turns all diagnostic output of the process on or off.
func SetEnabled(v bool) {
	enabled.Store(v)
}

func Enabled() bool {
	return enabled.Load()
}

func Parse() bool {
	return d.Parse && Enabled()
}
func Merge() bool {
	return d.Merge && Enabled()
}
func Load() bool {
	return d.Load && Enabled()
}
func Patch() bool {
	return d.Patch && Enabled()
}
func Eval() bool {
	return d.Eval && Enabled()
}
