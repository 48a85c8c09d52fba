package filters

import (
	"image"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	loggerMu sync.RWMutex
	logger   = logrus.NewEntry(logrus.StandardLogger())
)

// SetLogger sets the entry used by caches created afterwards.
func SetLogger(l *logrus.Entry) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	logger = l
}

func defaultLogger() *logrus.Entry {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}

// EvalFunc computes a filter output. An error means no output.
type EvalFunc func() (image.Image, error)

// OutputCache keeps the last output of a filter until its Base version
// changes. Failed evaluations are cached as "no output" and logged at debug.
type OutputCache struct {
	mu      sync.Mutex
	output  image.Image
	version uint64
	valid   bool
	logger  *logrus.Entry
}

// NewOutputCache creates a cache logging through l, or through the package
// logger when l is nil.
func NewOutputCache(l *logrus.Entry) *OutputCache {
	if l == nil {
		l = defaultLogger()
	}
	return &OutputCache{logger: l}
}

// Get returns the cached output for version, evaluating eval on a miss.
func (c *OutputCache) Get(name string, version uint64, eval EvalFunc) (image.Image, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.valid && c.version == version {
		return c.output, c.output != nil
	}

	output, err := eval()
	if err != nil {
		c.logger.WithFields(logrus.Fields{
			"filter": name,
			"error":  err,
		}).Debug("Filter produced no output")
		output = nil
	}

	c.output = output
	c.version = version
	c.valid = true

	return output, output != nil
}
