// Package testutil provides test doubles for the transcription stack.
//
// FakeDeepgram is an in-process stand-in for the Deepgram listen endpoint.
// It records every request and answers with a canned reply:
//
//	func TestTranscribe(t *testing.T) {
//	    fake := testutil.NewFakeDeepgram()
//	    testutil.T(t).Setup(fake)
//	    fake.Reply(http.StatusOK, testutil.TranscriptBody("hello world"))
//	    // point deepgram.Config.BaseURL at fake.URL()
//	}
//
// Components are started with Setup and stopped through t.Cleanup, so a
// test never leaks a listener.
package testutil
