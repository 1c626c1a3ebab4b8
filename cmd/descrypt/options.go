package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hallowell/descrypt/internal/encryption"
)

type action int

const (
	actionEncrypt action = iota
	actionDecrypt
)

func (a action) String() string {
	if a == actionDecrypt {
		return "decrypt"
	}
	return "encrypt"
}

const (
	modeECB = "ecb"
	modeCBC = "cbc"
)

var (
	errUsage         = errors.New("expected exactly five arguments")
	errUnknownAction = errors.New("unknown action")
	errUnknownMode   = errors.New("unrecognized mode")
)

type options struct {
	action action
	key    uint64
	mode   string
	input  string
	output string
}

// parseOptions validates the five positional arguments: action, key, mode,
// input path, output path.
func parseOptions(args []string) (*options, error) {
	if len(args) != 5 {
		return nil, errUsage
	}

	opts := &options{input: args[3], output: args[4]}

	switch strings.ToLower(args[0]) {
	case "-e":
		opts.action = actionEncrypt
	case "-d":
		opts.action = actionDecrypt
	default:
		return nil, fmt.Errorf("%w %s", errUnknownAction, args[0])
	}

	key, err := encryption.ParseKey(args[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, args[1])
	}
	opts.key = key

	switch strings.ToLower(args[2]) {
	case modeECB:
		opts.mode = modeECB
	case modeCBC:
		opts.mode = modeCBC
	default:
		return nil, fmt.Errorf("%w: %s", errUnknownMode, args[2])
	}

	return opts, nil
}
