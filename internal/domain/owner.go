package domain

import "fmt"

// OwnerKind discriminates the two cart owner spaces.
type OwnerKind int

const (
	OwnerSession OwnerKind = iota + 1
	OwnerAccount
)

// Owner identifies whose cart a line belongs to: an anonymous browser session
// or an authenticated account. Exactly one of the two is ever populated; the
// zero Owner is invalid and rejected at every storage call site.
type Owner struct {
	kind      OwnerKind
	sessionID string
	userID    int64
}

// SessionOwner builds the owner for an anonymous cart session.
func SessionOwner(sessionID string) Owner {
	return Owner{kind: OwnerSession, sessionID: sessionID}
}

// AccountOwner builds the owner for an authenticated user.
func AccountOwner(userID int64) Owner {
	return Owner{kind: OwnerAccount, userID: userID}
}

func (o Owner) Kind() OwnerKind { return o.kind }

// SessionID is meaningful only when Kind is OwnerSession.
func (o Owner) SessionID() string { return o.sessionID }

// UserID is meaningful only when Kind is OwnerAccount.
func (o Owner) UserID() int64 { return o.userID }

func (o Owner) IsZero() bool { return o.kind == 0 }

func (o Owner) String() string {
	switch o.kind {
	case OwnerSession:
		return "session:" + o.sessionID
	case OwnerAccount:
		return fmt.Sprintf("user:%d", o.userID)
	default:
		return "owner:invalid"
	}
}
