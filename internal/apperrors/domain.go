package apperrors

// Domain errors shared by services and handlers.
var (
	ErrUserNotFound    = NotFound("user not found")
	ErrHandleTaken     = AlreadyExists("handle already taken")
	ErrBadCredentials  = Unauthorized("invalid handle or password")
	ErrNotProfileOwner = Forbidden("cannot edit another user's profile")
	ErrSelfTarget      = InvalidArg("cannot target yourself")
	ErrBlocked         = Forbidden("interaction blocked")
	ErrAlreadyFriends  = AlreadyExists("already friends")
	ErrRequestPending  = AlreadyExists("friend request already pending")
	ErrRequestNotFound = NotFound("friend request not found")
	ErrRequestDecided  = FailedPrecondition("friend request already decided")
	ErrNotFriends      = Forbidden("users are not friends")
	ErrAlreadyBlocked  = AlreadyExists("user already blocked")
	ErrBlockNotFound   = NotFound("block not found")
	ErrAlreadyMuted    = AlreadyExists("user already muted")
	ErrMuteNotFound    = NotFound("mute not found")
	ErrThreadNotFound  = NotFound("thread not found")
	ErrNotParticipant  = Forbidden("not a thread participant")
	ErrMessageNotFound = NotFound("message not found")
	ErrNotMessageOwner = Forbidden("not the message owner")
	ErrMessageDeleted  = FailedPrecondition("message already deleted")
	ErrEmptyMessage    = InvalidArg("message requires text or media")
	ErrPostNotFound    = NotFound("post not found")
	ErrReelNotFound    = NotFound("reel not found")
	ErrTribeNotFound   = NotFound("tribe not found")
	ErrVenueNotFound   = NotFound("venue not found")
	ErrEventNotFound   = NotFound("event not found")
	ErrCreatorNotFound = NotFound("creator not found")
	ErrNotifNotFound   = NotFound("notification not found")
	ErrBadAmount       = InvalidArg("amount must be positive")
)
