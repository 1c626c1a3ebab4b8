package encryption

import (
	"errors"
	"regexp"
	"strconv"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// ErrMalformedKey is returned by ParseKey for anything other than the three
// accepted key forms.
var ErrMalformedKey = errors.New("malformed key")

var hexKeyPattern = regexp.MustCompile(`^[0-9a-fA-F]{16}$`)

// ParseKey converts a key argument into its 64-bit value. Three forms are
// accepted: 16 hex digits interpreted big-endian, exactly 8 ASCII characters
// packed most significant first, or 10 characters whose first and last are
// stripped (a quoted 8-character key whose outer double quotes were consumed
// by the shell).
func ParseKey(arg string) (uint64, error) {
	switch {
	case len(arg) == 16 && hexKeyPattern.MatchString(arg):
		return strconv.ParseUint(arg, 16, 64)
	case len(arg) == 8:
		return packASCIIKey(arg), nil
	case len(arg) == 10:
		return packASCIIKey(arg[1:9]), nil
	default:
		return 0, ErrMalformedKey
	}
}

// packASCIIKey packs 8 characters into a key, byte 0 most significant.
func packASCIIKey(s string) uint64 {
	var key uint64
	for i := 0; i < BlockSize; i++ {
		key |= uint64(s[i]) << (56 - 8*i)
	}
	return key
}

// Round key schedules are pure functions of the key, so derivations are
// memoized for the lifetime of the process. Entries never expire.
var schedules = gocache.New(gocache.NoExpiration, 10*time.Minute)

func scheduleFor(key uint64) [numRounds]uint64 {
	id := strconv.FormatUint(key, 16)
	if cached, found := schedules.Get(id); found {
		return cached.([numRounds]uint64)
	}

	keys := computeRoundKeys(key)
	schedules.Set(id, keys, gocache.NoExpiration)
	return keys
}
