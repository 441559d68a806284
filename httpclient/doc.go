// Package httpclient provides a small configurable HTTP adapter with
// authentication schemes and classified errors.
//
// A response with a non-2xx status is returned together with a classified
// *Error so callers can still inspect the body. The adapter never retries.
//
//	client, err := httpclient.New(httpclient.Config{
//	    Name:    "deepgram",
//	    BaseURL: "https://api.deepgram.com",
//	    Timeout: 30 * time.Second,
//	})
//
//	resp, err := client.Do(ctx, httpclient.Request{
//	    Method: http.MethodPost,
//	    Path:   "/v1/listen",
//	    Body:   audio,
//	    Auth:   httpclient.TokenAuth(key),
//	})
package httpclient
