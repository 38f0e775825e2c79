package shapeset

import (
	"log/slog"
	"time"

	"github.com/hupe1980/shapeset/blobstore"
	"github.com/hupe1980/shapeset/codec"
)

type options struct {
	codec            codec.Codec
	metricsCollector MetricsCollector
	logger           *Logger
	store            blobstore.BlobStore
	modelFile        string
	seed             *int64
	fetchParallelism int
	fetchBytesPerSec int64
}

// Option configures Dataset construction.
type Option func(*options)

// WithCodec configures the codec used for decoding catalog manifests.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithStore configures the blob store used to read mesh files (and the
// catalog manifest, when opening from a store). Defaults to a LocalStore
// rooted at the dataset directory.
func WithStore(store blobstore.BlobStore) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithModelFile configures the fixed per-model file name appended to
// {synsetID}/{modelID}/ when resolving paths. Default "model.obj".
func WithModelFile(name string) Option {
	return func(o *options) {
		if name != "" {
			o.modelFile = name
		}
	}
}

// WithRandomSeed fixes the sampling seed so that random selections are
// reproducible. Without this option the seed is taken from the clock.
func WithRandomSeed(seed int64) Option {
	return func(o *options) {
		o.seed = &seed
	}
}

// WithFetchParallelism bounds concurrent mesh reads during render dispatch.
// If 0, a small default is used.
func WithFetchParallelism(n int) Option {
	return func(o *options) {
		o.fetchParallelism = n
	}
}

// WithFetchRateLimit limits aggregate mesh-read throughput in bytes per
// second. Mostly useful against shared remote mirrors. If 0, unlimited.
func WithFetchRateLimit(bytesPerSec int64) Option {
	return func(o *options) {
		o.fetchBytesPerSec = bytesPerSec
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		codec:            codec.Default,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		modelFile:        DefaultModelFile,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

func (o options) sampleSeed() int64 {
	if o.seed != nil {
		return *o.seed
	}
	return time.Now().UnixNano()
}
