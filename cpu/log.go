package cpu

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Log receives diagnostics from the core: unmapped opcodes, stubs, breakpoints
// and ignored interrupts. Replace it or change its level as needed.
var Log = logrus.New()

func init() {
	Log.SetLevel(logrus.WarnLevel)
}

func (c *CPU) logFields() logrus.Fields {
	return logrus.Fields{
		"pc":     fmt.Sprintf("%06X", c.IRAddr),
		"opcode": fmt.Sprintf("%04X", c.IR),
	}
}
