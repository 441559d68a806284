package deepgram

import (
	"fmt"

	"github.com/kbukum/voicetext/docpath"
	"github.com/kbukum/voicetext/errors"
	"github.com/kbukum/voicetext/httpclient"
)

// ServiceName labels Deepgram in error messages.
const ServiceName = "Deepgram"

// TranscriptPath locates the transcript in a /v1/listen response.
var TranscriptPath = []docpath.Step{
	docpath.K("results"),
	docpath.K("channels"), docpath.I(0),
	docpath.K("alternatives"), docpath.I(0),
	docpath.K("transcript"),
}

// ParseResponse validates a raw response and extracts the transcript.
//
// A non-2xx status is a REMOTE_ERROR carrying the body text, which is never
// parsed. An undecodable body is a PARSE_ERROR. A missing, non-string or
// empty transcript is NO_TRANSCRIPT.
func ParseResponse(resp *httpclient.Response) (string, error) {
	// The sender reports a missing response as NETWORK_ERROR; reaching
	// here with nil is a caller bug.
	if resp == nil {
		return "", errors.Internal(fmt.Errorf("nil response"))
	}

	if !resp.IsSuccess() {
		body := string(resp.Body)
		if resp.BodyErr != nil {
			body = errors.UnknownBody
		}
		return "", errors.Remote(ServiceName, resp.StatusCode, body)
	}

	doc, err := docpath.Parse(resp.Body)
	if err != nil {
		return "", errors.Parse(err)
	}

	value, reached := doc.Trace(TranscriptPath...)
	text, ok := value.String()
	if !ok || text == "" {
		missing := docpath.FormatPath(TranscriptPath[:min(reached+1, len(TranscriptPath))]...)
		return "", errors.NoTranscript().WithDetail("path", missing)
	}
	return text, nil
}
