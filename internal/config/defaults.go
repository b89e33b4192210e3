package config

import "time"

// EnvPrefix prefixes every environment variable read by Load
const EnvPrefix = "DHCONV_"

const (
	SourceERAPI = "erapi"
	SourceCAE   = "cae"
)

const (
	DefaultSource          = SourceERAPI
	DefaultCurrency        = "USD"
	DefaultRefreshInterval = 5 * time.Minute
	DefaultDebounce        = 100 * time.Millisecond
	DefaultRequestTimeout  = 10 * time.Second
	DefaultRetryNum        = 0
	DefaultRetryDuration   = 5 * time.Second
	DefaultLogLevel        = "info"
)
