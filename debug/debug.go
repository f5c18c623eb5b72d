package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Path    bool
	Merge   bool
	Compile bool
	Refresh bool
}

var d *debug

func init() {
	d = &debug{}
	d.Path = boolEnv("ESPATCH_DEBUG_PATH")
	d.Merge = boolEnv("ESPATCH_DEBUG_MERGE")
	d.Compile = boolEnv("ESPATCH_DEBUG_COMPILE")
	d.Refresh = boolEnv("ESPATCH_DEBUG_REFRESH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Path() bool {
	return d.Path
}
func Merge() bool {
	return d.Merge
}
func Compile() bool {
	return d.Compile
}
func Refresh() bool {
	return d.Refresh
}
