package debug

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Enabled returns whether or not the tool was set to debug mode.
func Enabled() bool {
	return viper.GetBool("debugging.enabled")
}

// TraceBlocks returns whether cipher internals should be dumped to the log.
// Trace output includes key material, so it requires debug mode to be
// switched on explicitly as well.
func TraceBlocks() bool {
	return Enabled() && viper.GetBool("debugging.trace_blocks")
}

// DumpSchedule writes the derived round key schedule to the debug log.
func DumpSchedule(logger *logrus.Logger, schedule [16]uint64) {
	logger.Debug("derived round key schedule:\n", spew.Sdump(schedule))
}
