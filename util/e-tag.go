package util

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// GenerateETag returns the SHA-1 hex digest of the given content, used as the
// ETag on list responses. Byte slices and strings hash as-is; anything else
// is JSON-marshaled first.
func GenerateETag(content any) string {
	var data []byte
	var err error

	switch v := content.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		data, err = json.Marshal(content)
		if err != nil {
			data = fmt.Appendf(nil, "%v", content)
		}
	}

	hash := sha1.Sum(data)
	return hex.EncodeToString(hash[:])
}
