package fcgo

import "github.com/sirupsen/logrus"

// SetLogLevel adjusts the verbosity of the package's diagnostic logging.
// Library discovery and lifecycle events are emitted at debug level.
func SetLogLevel(level logrus.Level) {
	logrus.SetLevel(level)
}
