package crypto

import "encoding/base64"

// b64 returns unpadded standard base64 without newlines.
func b64(b []byte) string { return base64.RawStdEncoding.EncodeToString(b) }

// unb64 reverses b64.
func unb64(s string) ([]byte, error) { return base64.RawStdEncoding.DecodeString(s) }
