package jsoncodec

import jsoniter "github.com/json-iterator/go"

var (
	// JSON is the codec used for every request and response body
	JSON = jsoniter.ConfigCompatibleWithStandardLibrary

	// Marshal is a shorthand for JSON.Marshal
	Marshal = JSON.Marshal

	// Unmarshal is a shorthand for JSON.Unmarshal
	Unmarshal = JSON.Unmarshal
)
