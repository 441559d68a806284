// Package docpath projects a decoded JSON document through a fixed path.
//
// A Value is either present (holding a decoded JSON value) or absent. Every
// step on an absent Value, a missing key, an out-of-range index, or a value
// of the wrong shape yields an absent Value; nothing panics. Steps compose
// left to right and stop being meaningful at the first absence:
//
//	doc, err := docpath.Parse(body)
//	text, ok := doc.Key("results").Key("channels").Index(0).String()
package docpath
