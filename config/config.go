package config

const (
	BuildVersion = "v0.3.0-BUILD_VERSION"

	DefaultScale        = 2
	DefaultMaxScale     = 64
	DefaultRounding     = "half-up"
	DefaultRangeMaxSize = 1 << 20
	DefaultLogLevel     = 2
	DefaultCacheSize    = 32
	DefaultRPCPort      = 6870

	RPCRequestMaximumSize = 1024 * 1024
)
