// Package ttsext generates starter projects for TTS Generation WebUI
// extensions.
package ttsext

// Version is the generator version reported by --version.
const Version = "0.2.0"
