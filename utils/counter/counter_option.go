package counter

type Options struct {
	total int
	desc  string
}

type Option func(*Options)

// WithTotal sets the expected number of Add calls, used for the ETA.
func WithTotal(total int) Option {
	return func(o *Options) {
		o.total = total
	}
}

// WithDesc labels the progress line, e.g. "predict".
func WithDesc(desc string) Option {
	return func(o *Options) {
		o.desc = desc
	}
}
