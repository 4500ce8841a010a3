package cli

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/pflag"
	"k8s.io/utils/ptr"
)

// ParseID parses a positional numeric identifier.
func ParseID(name, arg string) (uint64, error) {
	id, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: must be a non-negative integer", name, arg)
	}
	return id, nil
}

// OptionalBool returns nil unless the flag was set on the command line.
func OptionalBool(fs *pflag.FlagSet, name string, value bool) *bool {
	if !fs.Changed(name) {
		return nil
	}
	return ptr.To(value)
}

// OptionalUint32 returns nil unless the flag was set on the command line.
func OptionalUint32(fs *pflag.FlagSet, name string, value uint32) *uint32 {
	if !fs.Changed(name) {
		return nil
	}
	return ptr.To(value)
}

// PageFlags are the paging flags of list commands.
type PageFlags struct {
	Offset  uint32
	Limit   uint32
	Keyword string
}

// AddFlags registers --offset and --limit, plus --keyword when withKeyword is set.
func (p *PageFlags) AddFlags(fs *pflag.FlagSet, withKeyword bool) {
	fs.Uint32Var(&p.Offset, "offset", 0, "Number of items to skip")
	fs.Uint32Var(&p.Limit, "limit", 100, "Maximum number of items to return")
	if withKeyword {
		fs.StringVar(&p.Keyword, "keyword", "", "Only return items matching this keyword")
	}
}

// Uint32s narrows flag values to 32-bit ids.
func Uint32s(name string, values []uint) ([]uint32, error) {
	out := make([]uint32, 0, len(values))
	for _, v := range values {
		if uint64(v) > math.MaxUint32 {
			return nil, fmt.Errorf("invalid %s %d: out of range", name, v)
		}
		out = append(out, uint32(v))
	}
	return out, nil
}

// Uint64s widens flag values to 64-bit ids.
func Uint64s(values []uint) []uint64 {
	out := make([]uint64, 0, len(values))
	for _, v := range values {
		out = append(out, uint64(v))
	}
	return out
}
