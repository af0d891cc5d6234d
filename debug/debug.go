package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Decode   bool
	Encode   bool
	Navigate bool
	Registry bool
}

var d *debug

func init() {
	d = &debug{}
	d.Decode = boolEnv("DOCMAP_DEBUG_DECODE")
	d.Encode = boolEnv("DOCMAP_DEBUG_ENCODE")
	d.Navigate = boolEnv("DOCMAP_DEBUG_NAVIGATE")
	d.Registry = boolEnv("DOCMAP_DEBUG_REGISTRY")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Decode() bool {
	return d.Decode
}
func Encode() bool {
	return d.Encode
}
func Navigate() bool {
	return d.Navigate
}
func Registry() bool {
	return d.Registry
}
