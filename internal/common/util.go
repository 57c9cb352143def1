package common

// WipeByteArray zeroes the buffer in place. Used to scrub passwords after
// they have been handed to the API client. Safe on nil.
func WipeByteArray(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}
