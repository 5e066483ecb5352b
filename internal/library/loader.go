package library

import (
	"context"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/rshade/aboutlibs/internal/logging"
)

// Key returns a stable content key for a descriptor.
func Key(data string) string {
	return strconv.FormatUint(xxhash.Sum64String(data), 16)
}

// Loader runs Load for callers that may ask for the same descriptor
// concurrently. Concurrent requests for identical content share one parse;
// a shared result is only used when its input matches the caller's, so key
// collisions never hand out another descriptor's records. Results are not
// retained once every waiting caller has returned.
type Loader struct {
	group  singleflight.Group
	logger zerolog.Logger
	key    func(string) string
}

// loadResult remembers the input a shared parse was made from.
type loadResult struct {
	data string
	libs Libraries
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithLogger sets the logger used when the context carries none.
func WithLogger(l zerolog.Logger) LoaderOption {
	return func(ld *Loader) {
		ld.logger = l
	}
}

// NewLoader creates a Loader.
func NewLoader(opts ...LoaderOption) *Loader {
	ld := &Loader{logger: zerolog.Nop(), key: Key}
	for _, opt := range opts {
		opt(ld)
	}
	return ld
}

// Load parses data, sharing the work with concurrent calls for the same content.
// A cancelled context is honoured before the parse starts.
func (ld *Loader) Load(ctx context.Context, data string) (Libraries, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger := logging.FromContext(ctx)
	if logger.GetLevel() == zerolog.Disabled {
		logger = ld.logger
	}

	key := ld.key(data)
	logger.Debug().Ctx(ctx).Str("key", key).Int("bytes", len(data)).Msg("loading library descriptor")

	v, err, shared := ld.group.Do(key, func() (any, error) {
		libs, loadErr := Load(data)
		return loadResult{data: data, libs: libs}, loadErr
	})
	res, _ := v.(loadResult)
	if shared && res.data != data {
		// Distinct content with colliding keys; parse this input on its own.
		logger.Debug().Ctx(ctx).Str("key", key).Msg("load key collision")
		res, shared = loadResult{data: data}, false
		res.libs, err = Load(data)
	}
	if err != nil {
		logger.Warn().Ctx(ctx).Str("key", key).Err(err).Msg("library descriptor rejected")
		return nil, err
	}

	libs := res.libs
	logger.Debug().Ctx(ctx).
		Str("key", key).
		Int("libraries", len(libs)).
		Bool("shared", shared).
		Msg("library descriptor loaded")

	if shared {
		return libs.Clone(), nil
	}
	return libs, nil
}
