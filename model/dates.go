package model

import "time"

// Timestamp is millis since epoch
type Timestamp int64

// MakeTimestamp creates a new Timestamp
func MakeTimestamp(ts int64) *Timestamp {
	timestamp := Timestamp(ts)
	return &timestamp
}

// MakeTimestampFromUnixSeconds creates a new Timestamp from a unix-seconds value
func MakeTimestampFromUnixSeconds(secs int64) *Timestamp {
	return MakeTimestamp(secs * 1000)
}

// MakeTimestampFromTime creates a new Timestamp from a time.Time
func MakeTimestampFromTime(t time.Time) *Timestamp {
	return MakeTimestamp(t.UnixMilli())
}

// AsInt64 is a convenience method
func (t Timestamp) AsInt64() int64 {
	return int64(t)
}

// AsTime converts to a time.Time in UTC
func (t Timestamp) AsTime() time.Time {
	return time.UnixMilli(int64(t)).UTC()
}
