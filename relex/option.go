package relex

import "gorm.io/gorm"

type Option func(c *Config)

func WithSplitPaths(train, dev, test string) Option {
	return func(c *Config) {
		c.TrainPath = train
		c.DevPath = dev
		c.TestPath = test
	}
}

func WithMaxLen(maxLen int) Option {
	return func(c *Config) {
		c.MaxLen = maxLen
	}
}

func WithEpochs(epochs int) Option {
	return func(c *Config) {
		c.Epochs = epochs
	}
}

func WithBatchSize(size int) Option {
	return func(c *Config) {
		c.BatchSize = size
	}
}

func WithEmbeddingDim(dim int) Option {
	return func(c *Config) {
		c.EmbeddingDim = dim
	}
}

func WithFilters(filters int) Option {
	return func(c *Config) {
		c.Filters = filters
	}
}

func WithKernelSize(size int) Option {
	return func(c *Config) {
		c.KernelSize = size
	}
}

func WithHiddenDim(dim int) Option {
	return func(c *Config) {
		c.HiddenDim = dim
	}
}

func WithSeed(seed int64) Option {
	return func(c *Config) {
		c.Seed = seed
	}
}

func WithSampleFraction(fraction float64) Option {
	return func(c *Config) {
		c.SampleFraction = fraction
	}
}

func WithConcurrency(concurrency int) Option {
	return func(c *Config) {
		c.Concurrency = concurrency
	}
}

func WithDB(db *gorm.DB) Option {
	return func(c *Config) {
		c.DB = db
	}
}

func WithCacheDir(cacheDir string) Option {
	return func(c *Config) {
		c.CacheDir = cacheDir
	}
}

func WithReportPath(path string) Option {
	return func(c *Config) {
		c.ReportPath = path
	}
}
