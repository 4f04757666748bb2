package syncer

import "time"

const (
	defaultWorkerCount = 8
	defaultWindow      = 64

	sleepDuration     = 5 * time.Second
	idleSleepDuration = 10 * time.Second
)
