package httpclient

import (
	"github.com/kbukum/voicetext/provider"
)

// compile-time assertions
var _ provider.RequestResponse[Request, *Response] = (*Adapter)(nil)
var _ provider.Closeable = (*Adapter)(nil)
