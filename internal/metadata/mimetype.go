package metadata

import (
	"github.com/gabriel-vasile/mimetype"
)

// detectTextPayload sniffs a fetched payload and reports whether it is text that may hold a JSON document.
// Binary payloads (an image CID used as a metadata pointer) are rejected without decoding.
func detectTextPayload(body []byte) (string, bool) {
	mtype := mimetype.Detect(body)
	for m := mtype; m != nil; m = m.Parent() {
		if m.Is("text/plain") || m.Is("application/json") {
			return mtype.String(), true
		}
	}
	return mtype.String(), false
}
