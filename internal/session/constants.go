package session

// Error context strings used when wrapping repository failures
const (
	ErrContextFailedToGetRoulette   = "failed to get roulette"
	ErrContextFailedToGetSession    = "failed to get active session"
	ErrContextFailedToCreateSession = "failed to create session"
	ErrContextFailedToTouchSession  = "failed to touch session"
	ErrContextFailedToCloseSession  = "failed to close session"
	ErrContextFailedToCloseIdle     = "failed to close idle sessions"
)

// Log messages
const (
	LogMsgActivateCalled        = "Session activation requested"
	LogMsgSessionResumed        = "Existing session resumed"
	LogMsgStaleSessionReclaimed = "Stale session reclaimed"
	LogMsgSessionActivated      = "Session activated"
	LogMsgSessionClosed         = "Session closed"
	LogMsgIdleSessionsClosed    = "Idle sessions closed"
	LogMsgReaperStarted         = "Session reaper started"
	LogMsgReaperStopped         = "Session reaper stopped"
	LogMsgReaperSweepFailed     = "Session reaper sweep failed"
)
