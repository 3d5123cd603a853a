package formater

import (
	"fmt"
	"time"
)

func CreateStreamDuration(streamTime time.Time) string {

	streamDuration := time.Since(streamTime)
	hours := streamDuration / time.Hour
	streamDuration = streamDuration % time.Hour
	minutes := streamDuration / time.Minute
	streamDuration = streamDuration % time.Minute
	seconds := streamDuration / time.Second
	streamDurationStr := fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)

	return streamDurationStr
}

// CreateTokenLifetime renders the remaining token lifetime reported by the
// validation endpoint as hh:mm:ss.
func CreateTokenLifetime(expiresIn uint64) string {

	lifetime := time.Duration(expiresIn) * time.Second
	hours := lifetime / time.Hour
	lifetime = lifetime % time.Hour
	minutes := lifetime / time.Minute
	lifetime = lifetime % time.Minute
	seconds := lifetime / time.Second

	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}
